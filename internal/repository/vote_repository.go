package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hangout-api/internal/domain"
)

// VoteRepository defines the interface for vote ledger data access
type VoteRepository interface {
	Create(ctx context.Context, vote *domain.Vote) error
	FindByPollUserOption(ctx context.Context, pollID, userID, optionID uuid.UUID) (*domain.Vote, error)
	FindByPollID(ctx context.Context, pollID uuid.UUID) ([]domain.Vote, error)
	Update(ctx context.Context, vote *domain.Vote) error
	Delete(ctx context.Context, pollID, userID, optionID uuid.UUID) error
	ClearPreferredExcept(ctx context.Context, pollID, userID, optionID uuid.UUID) error
}

// voteRepositoryImpl is the GORM implementation of VoteRepository
type voteRepositoryImpl struct {
	db *gorm.DB
}

// NewVoteRepository creates a new instance of VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepositoryImpl{db: db}
}

// Create creates a new vote row
func (r *voteRepositoryImpl) Create(ctx context.Context, vote *domain.Vote) error {
	if err := r.db.WithContext(ctx).Create(vote).Error; err != nil {
		return err
	}
	return nil
}

// FindByPollUserOption finds the vote row for a (poll, user, option) triple
func (r *voteRepositoryImpl) FindByPollUserOption(ctx context.Context, pollID, userID, optionID uuid.UUID) (*domain.Vote, error) {
	var vote domain.Vote
	if err := r.db.WithContext(ctx).
		Where("poll_id = ? AND user_id = ? AND option_id = ?", pollID, userID, optionID).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// FindByPollID returns every vote of a poll in recording order. The
// consensus evaluator relies on this ordering for its first-vote projection.
func (r *voteRepositoryImpl) FindByPollID(ctx context.Context, pollID uuid.UUID) ([]domain.Vote, error) {
	var votes []domain.Vote
	if err := r.db.WithContext(ctx).
		Where("poll_id = ?", pollID).
		Order("created_at ASC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// Update saves changes to a vote row
func (r *voteRepositoryImpl) Update(ctx context.Context, vote *domain.Vote) error {
	if err := r.db.WithContext(ctx).Save(vote).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes all vote rows matching the (poll, user, option) triple
func (r *voteRepositoryImpl) Delete(ctx context.Context, pollID, userID, optionID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("poll_id = ? AND user_id = ? AND option_id = ?", pollID, userID, optionID).
		Delete(&domain.Vote{}).Error; err != nil {
		return err
	}
	return nil
}

// ClearPreferredExcept clears the preferred flag on every vote the user
// holds in the poll except the given option. Keeps the at-most-one-preferred
// invariant.
func (r *voteRepositoryImpl) ClearPreferredExcept(ctx context.Context, pollID, userID, optionID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Vote{}).
		Where("poll_id = ? AND user_id = ? AND option_id <> ?", pollID, userID, optionID).
		Update("preferred", false).Error; err != nil {
		return err
	}
	return nil
}
