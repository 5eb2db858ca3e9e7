package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hangout-api/internal/domain"
)

// PollRepository defines the interface for poll data access
type PollRepository interface {
	Create(ctx context.Context, poll *domain.Poll) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) (*domain.Poll, error)
	Update(ctx context.Context, poll *domain.Poll) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PollStatus) error
	CloseByHangoutID(ctx context.Context, hangoutID uuid.UUID) error
}

// pollRepositoryImpl is the GORM implementation of PollRepository
type pollRepositoryImpl struct {
	db *gorm.DB
}

// NewPollRepository creates a new instance of PollRepository
func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepositoryImpl{db: db}
}

// Create creates a new poll
func (r *pollRepositoryImpl) Create(ctx context.Context, poll *domain.Poll) error {
	if err := r.db.WithContext(ctx).Create(poll).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a poll by its ID
func (r *pollRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	var poll domain.Poll
	if err := r.db.WithContext(ctx).First(&poll, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// FindByHangoutID finds the poll attached to a hangout. The current design
// supports one poll per hangout, so the first (oldest) poll wins.
func (r *pollRepositoryImpl) FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) (*domain.Poll, error) {
	var poll domain.Poll
	if err := r.db.WithContext(ctx).
		Where("hangout_id = ?", hangoutID).
		Order("created_at ASC").
		First(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// Update saves changes to a poll
func (r *pollRepositoryImpl) Update(ctx context.Context, poll *domain.Poll) error {
	if err := r.db.WithContext(ctx).Save(poll).Error; err != nil {
		return err
	}
	return nil
}

// UpdateStatus updates only the status of a poll
func (r *pollRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PollStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Poll{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return err
	}
	return nil
}

// CloseByHangoutID closes any still-active polls of a hangout. Used when a
// hangout is cancelled or completed.
func (r *pollRepositoryImpl) CloseByHangoutID(ctx context.Context, hangoutID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Poll{}).
		Where("hangout_id = ? AND status = ?", hangoutID, domain.PollStatusActive).
		Update("status", domain.PollStatusClosed).Error; err != nil {
		return err
	}
	return nil
}
