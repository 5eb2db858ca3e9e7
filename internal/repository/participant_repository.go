package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hangout-api/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*domain.Participant, error)
	FindByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.Participant, error)
	CountByHangoutID(ctx context.Context, hangoutID uuid.UUID) (int64, error)
	Delete(ctx context.Context, hangoutID, userID uuid.UUID) error
}

// participantRepositoryImpl is the GORM implementation of ParticipantRepository
type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

// Create creates a new participant
func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return err
	}
	return nil
}

// FindByHangoutID finds all participants of a hangout
func (r *participantRepositoryImpl) FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	if err := r.db.WithContext(ctx).
		Where("hangout_id = ?", hangoutID).
		Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// FindByHangoutAndUser finds a participant by hangout and user
func (r *participantRepositoryImpl) FindByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Where("hangout_id = ? AND user_id = ?", hangoutID, userID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// CountByHangoutID counts the active participants of a hangout. This is the
// denominator of every consensus percentage.
func (r *participantRepositoryImpl) CountByHangoutID(ctx context.Context, hangoutID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("hangout_id = ?", hangoutID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a participant from a hangout
func (r *participantRepositoryImpl) Delete(ctx context.Context, hangoutID, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("hangout_id = ? AND user_id = ?", hangoutID, userID).
		Delete(&domain.Participant{}).Error; err != nil {
		return err
	}
	return nil
}
