package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hangout-api/internal/domain"
)

// FinalizeResult reports what a finalize attempt actually did. Applied is
// false when another request already moved the poll out of ACTIVE, in which
// case nothing else was touched.
type FinalizeResult struct {
	Applied      bool
	RSVPsCreated int
}

// FinalizeRepository defines the interface for the consensus finalize
// transaction
type FinalizeRepository interface {
	FinalizePoll(ctx context.Context, pollID uuid.UUID, winner datatypes.JSON, hangoutID uuid.UUID, participantUserIDs []uuid.UUID) (*FinalizeResult, error)
}

// finalizeRepositoryImpl is the GORM implementation of FinalizeRepository
type finalizeRepositoryImpl struct {
	db *gorm.DB
}

// NewFinalizeRepository creates a new instance of FinalizeRepository
func NewFinalizeRepository(db *gorm.DB) FinalizeRepository {
	return &finalizeRepositoryImpl{db: db}
}

// FinalizePoll moves a poll from ACTIVE to CONSENSUS_REACHED, snapshots the
// winning option as the poll's only option, marks the hangout ACTIVE and
// bootstraps PENDING RSVPs for the given participants. Everything runs in
// one transaction.
//
// The status flip is a conditional update guarded on the current ACTIVE
// status, so two concurrent finalize attempts cannot both apply: the loser
// sees zero affected rows, and the transaction commits without creating any
// RSVPs. Callers treat Applied=false as "someone else won the race", not an
// error.
func (r *finalizeRepositoryImpl) FinalizePoll(ctx context.Context, pollID uuid.UUID, winner datatypes.JSON, hangoutID uuid.UUID, participantUserIDs []uuid.UUID) (*FinalizeResult, error) {
	result := &FinalizeResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&domain.Poll{}).
			Where("id = ? AND status = ?", pollID, domain.PollStatusActive).
			Updates(map[string]interface{}{
				"status":  domain.PollStatusConsensusReached,
				"options": winner,
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return nil
		}
		result.Applied = true

		if err := tx.Model(&domain.Hangout{}).
			Where("id = ?", hangoutID).
			Update("status", domain.HangoutStatusActive).Error; err != nil {
			return err
		}

		created, err := bootstrapRSVPs(tx, hangoutID, participantUserIDs)
		if err != nil {
			return err
		}
		result.RSVPsCreated = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
