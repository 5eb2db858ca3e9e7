package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hangout-api/internal/domain"
)

// RSVPRepository defines the interface for RSVP data access
type RSVPRepository interface {
	Bootstrap(ctx context.Context, hangoutID uuid.UUID, userIDs []uuid.UUID) (int, error)
	FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*domain.RSVP, error)
	FindByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.RSVP, error)
	UpdateStatus(ctx context.Context, hangoutID, userID uuid.UUID, status domain.RSVPStatus) error
}

// rsvpRepositoryImpl is the GORM implementation of RSVPRepository
type rsvpRepositoryImpl struct {
	db *gorm.DB
}

// NewRSVPRepository creates a new instance of RSVPRepository
func NewRSVPRepository(db *gorm.DB) RSVPRepository {
	return &rsvpRepositoryImpl{db: db}
}

// Bootstrap bulk-inserts PENDING rows for every user that does not already
// have an RSVP for the hangout. Existing rows are never touched, so running
// bootstrap twice yields the same row set as running it once. Returns the
// number of rows created.
func (r *rsvpRepositoryImpl) Bootstrap(ctx context.Context, hangoutID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	return bootstrapRSVPs(r.db.WithContext(ctx), hangoutID, userIDs)
}

// bootstrapRSVPs is shared with the finalize transaction, which must run the
// same idempotent insert inside its own tx handle.
func bootstrapRSVPs(tx *gorm.DB, hangoutID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	var existing []domain.RSVP
	if err := tx.
		Where("hangout_id = ?", hangoutID).
		Find(&existing).Error; err != nil {
		return 0, err
	}

	seen := make(map[uuid.UUID]bool, len(existing))
	for _, rsvp := range existing {
		seen[rsvp.UserID] = true
	}

	rows := make([]domain.RSVP, 0, len(userIDs))
	for _, userID := range userIDs {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		rows = append(rows, domain.RSVP{
			HangoutID: hangoutID,
			UserID:    userID,
			Status:    domain.RSVPStatusPending,
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}

	if err := tx.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// FindByHangoutID finds all RSVPs of a hangout
func (r *rsvpRepositoryImpl) FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*domain.RSVP, error) {
	var rsvps []*domain.RSVP
	if err := r.db.WithContext(ctx).
		Where("hangout_id = ?", hangoutID).
		Order("created_at ASC").
		Find(&rsvps).Error; err != nil {
		return nil, err
	}
	return rsvps, nil
}

// FindByHangoutAndUser finds a user's RSVP for a hangout
func (r *rsvpRepositoryImpl) FindByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.RSVP, error) {
	var rsvp domain.RSVP
	if err := r.db.WithContext(ctx).
		Where("hangout_id = ? AND user_id = ?", hangoutID, userID).
		First(&rsvp).Error; err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// UpdateStatus records a user's attendance response
func (r *rsvpRepositoryImpl) UpdateStatus(ctx context.Context, hangoutID, userID uuid.UUID, status domain.RSVPStatus) error {
	now := time.Now().UTC()
	if err := r.db.WithContext(ctx).
		Model(&domain.RSVP{}).
		Where("hangout_id = ? AND user_id = ?", hangoutID, userID).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": &now,
		}).Error; err != nil {
		return err
	}
	return nil
}
