package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hangout-api/internal/domain"
)

// HangoutRepository defines the interface for hangout data access
type HangoutRepository interface {
	Create(ctx context.Context, hangout *domain.Hangout) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Hangout, error)
	FindByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*domain.Hangout, error)
	Update(ctx context.Context, hangout *domain.Hangout) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.HangoutStatus) error
	FindEndedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Hangout, error)
}

// hangoutRepositoryImpl is the GORM implementation of HangoutRepository
type hangoutRepositoryImpl struct {
	db *gorm.DB
}

// NewHangoutRepository creates a new instance of HangoutRepository
func NewHangoutRepository(db *gorm.DB) HangoutRepository {
	return &hangoutRepositoryImpl{db: db}
}

// Create creates a new hangout
func (r *hangoutRepositoryImpl) Create(ctx context.Context, hangout *domain.Hangout) error {
	if err := r.db.WithContext(ctx).Create(hangout).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a hangout by its ID with participants preloaded
func (r *hangoutRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Hangout, error) {
	var hangout domain.Hangout
	if err := r.db.WithContext(ctx).
		Preload("Participants").
		First(&hangout, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &hangout, nil
}

// FindByCreatorID finds all hangouts created by a user
func (r *hangoutRepositoryImpl) FindByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*domain.Hangout, error) {
	var hangouts []*domain.Hangout
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&hangouts).Error; err != nil {
		return nil, err
	}
	return hangouts, nil
}

// Update saves changes to a hangout
func (r *hangoutRepositoryImpl) Update(ctx context.Context, hangout *domain.Hangout) error {
	if err := r.db.WithContext(ctx).Save(hangout).Error; err != nil {
		return err
	}
	return nil
}

// UpdateStatus updates only the lifecycle status of a hangout
func (r *hangoutRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.HangoutStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Hangout{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return err
	}
	return nil
}

// FindEndedBefore finds hangouts whose time window closed before the cutoff
// and which are still in a live status. Used by the lifecycle job.
func (r *hangoutRepositoryImpl) FindEndedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Hangout, error) {
	var hangouts []*domain.Hangout
	if err := r.db.WithContext(ctx).
		Where("end_time IS NOT NULL AND end_time < ?", cutoff).
		Where("status IN ?", []domain.HangoutStatus{domain.HangoutStatusPublished, domain.HangoutStatusActive}).
		Find(&hangouts).Error; err != nil {
		return nil, err
	}
	return hangouts, nil
}
