package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hangout-api/internal/client"
	"hangout-api/internal/consensus"
	"hangout-api/internal/database"
	"hangout-api/internal/domain"
	"hangout-api/internal/dto"
	"hangout-api/internal/metrics"
	"hangout-api/internal/repository"
	"hangout-api/internal/response"
)

// VoteService defines the interface for vote and consensus business logic
type VoteService interface {
	CastVote(ctx context.Context, hangoutID, userID uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error)
	GetPollSummary(ctx context.Context, hangoutID uuid.UUID) (*dto.PollSummaryResponse, error)
}

// voteServiceImpl is the implementation of VoteService
type voteServiceImpl struct {
	hangoutRepo        repository.HangoutRepository
	pollRepo           repository.PollRepository
	voteRepo           repository.VoteRepository
	participantRepo    repository.ParticipantRepository
	finalizeRepo       repository.FinalizeRepository
	participantService ParticipantService
	notificationClient client.NotificationClient
	metrics            *metrics.Metrics
	logger             *zap.Logger
}

// NewVoteService creates a new instance of VoteService
func NewVoteService(
	hangoutRepo repository.HangoutRepository,
	pollRepo repository.PollRepository,
	voteRepo repository.VoteRepository,
	participantRepo repository.ParticipantRepository,
	finalizeRepo repository.FinalizeRepository,
	participantService ParticipantService,
	notificationClient client.NotificationClient,
	m *metrics.Metrics,
	logger *zap.Logger,
) VoteService {
	return &voteServiceImpl{
		hangoutRepo:        hangoutRepo,
		pollRepo:           pollRepo,
		voteRepo:           voteRepo,
		participantRepo:    participantRepo,
		finalizeRepo:       finalizeRepo,
		participantService: participantService,
		notificationClient: notificationClient,
		metrics:            m,
		logger:             logger,
	}
}

// CastVote records a vote operation and evaluates consensus on the fresh
// ledger. Voting on a hangout the user has not joined makes them a MEMBER
// first. When the updated tally clears the threshold the poll is finalized
// in a single transaction and RSVP collection begins.
//
// The vote itself is persisted before consensus evaluation and is never
// rolled back: if finalization fails the vote stays recorded and a later
// vote re-triggers evaluation.
func (s *voteServiceImpl) CastVote(ctx context.Context, hangoutID, userID uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error) {
	hangout, err := s.hangoutRepo.FindByID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch hangout", err.Error())
	}

	poll, err := s.pollRepo.FindByHangoutID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout has no poll", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch poll", err.Error())
	}

	if poll.Status != domain.PollStatusActive {
		return nil, response.NewAppError(response.ErrCodeVotingClosed, "Voting has closed for this poll", "")
	}

	options, err := poll.DecodeOptions()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode poll options", err.Error())
	}
	if !optionExists(options, req.OptionID) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Option does not belong to this poll", "")
	}

	// Voting implies joining
	if err := s.participantService.EnsureParticipant(ctx, hangoutID, userID); err != nil {
		return nil, err
	}

	voteCast, err := s.applyVoteAction(ctx, poll.ID, userID, req)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementVotesCast()
	}

	resp := &dto.VoteResponse{
		PollID:   poll.ID,
		OptionID: req.OptionID,
		Action:   req.Action,
		VoteCast: voteCast,
	}

	// Evaluate consensus on a fresh read of the ledger
	votes, err := s.voteRepo.FindByPollID(ctx, poll.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read votes", err.Error())
	}
	activeParticipants, err := s.participantRepo.CountByHangoutID(ctx, hangoutID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count participants", err.Error())
	}

	decision := consensus.Evaluate(options, votes, int(activeParticipants), consensus.Settings{
		Threshold:       poll.Threshold,
		MinParticipants: poll.MinParticipants,
	})

	if decision.Ready {
		finalized, err := s.finalize(ctx, hangout, poll, decision.Winner)
		if err != nil {
			return nil, err
		}
		resp.Finalized = finalized
		resp.Winner = &dto.PollOptionResponse{
			ID:          decision.Winner.ID,
			Title:       decision.Winner.Title,
			Description: decision.Winner.Description,
			Location:    decision.Winner.Location,
			StartTime:   decision.Winner.StartTime,
			Price:       decision.Winner.Price,
		}
		poll.Status = domain.PollStatusConsensusReached
	}

	resp.Phase = string(domain.PhaseOf(poll))

	s.publishTally(ctx, hangoutID, poll, votes, int(activeParticipants), resp.Finalized)

	return resp, nil
}

// applyVoteAction mutates the vote ledger and reports whether the user holds
// a vote on the option afterwards
func (s *voteServiceImpl) applyVoteAction(ctx context.Context, pollID, userID uuid.UUID, req *dto.CastVoteRequest) (bool, error) {
	existing, err := s.voteRepo.FindByPollUserOption(ctx, pollID, userID, req.OptionID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to check existing vote", err.Error())
	}

	switch req.Action {
	case dto.VoteActionAdd:
		if existing != nil {
			return true, nil
		}
		return s.createVote(ctx, pollID, userID, req.OptionID, false)

	case dto.VoteActionRemove:
		if existing == nil {
			return false, nil
		}
		if err := s.voteRepo.Delete(ctx, pollID, userID, req.OptionID); err != nil {
			return false, response.NewAppError(response.ErrCodeInternal, "Failed to remove vote", err.Error())
		}
		return false, nil

	case dto.VoteActionToggle:
		if existing != nil {
			if err := s.voteRepo.Delete(ctx, pollID, userID, req.OptionID); err != nil {
				return false, response.NewAppError(response.ErrCodeInternal, "Failed to remove vote", err.Error())
			}
			return false, nil
		}
		return s.createVote(ctx, pollID, userID, req.OptionID, false)

	case dto.VoteActionPreferred:
		if existing == nil {
			if _, err := s.createVote(ctx, pollID, userID, req.OptionID, true); err != nil {
				return false, err
			}
		} else if !existing.Preferred {
			existing.Preferred = true
			if err := s.voteRepo.Update(ctx, existing); err != nil {
				return false, response.NewAppError(response.ErrCodeInternal, "Failed to update vote", err.Error())
			}
		}
		// At most one preferred option per user
		if err := s.voteRepo.ClearPreferredExcept(ctx, pollID, userID, req.OptionID); err != nil {
			return false, response.NewAppError(response.ErrCodeInternal, "Failed to clear preferred votes", err.Error())
		}
		return true, nil

	default:
		return false, response.NewAppError(response.ErrCodeValidation, "Unknown vote action", req.Action)
	}
}

func (s *voteServiceImpl) createVote(ctx context.Context, pollID, userID, optionID uuid.UUID, preferred bool) (bool, error) {
	vote := &domain.Vote{
		PollID:    pollID,
		UserID:    userID,
		OptionID:  optionID,
		Preferred: preferred,
	}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to record vote", err.Error())
	}
	return true, nil
}

// finalize runs the consensus transaction. Returns false without error when
// a concurrent request finalized the poll first.
func (s *voteServiceImpl) finalize(ctx context.Context, hangout *domain.Hangout, poll *domain.Poll, winner *domain.PollOption) (bool, error) {
	winnerJSON, err := domain.EncodeOptions([]domain.PollOption{*winner})
	if err != nil {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to encode winning option", err.Error())
	}

	participants, err := s.participantRepo.FindByHangoutID(ctx, hangout.ID)
	if err != nil {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to list participants", err.Error())
	}
	userIDs := make([]uuid.UUID, len(participants))
	for i, p := range participants {
		userIDs[i] = p.UserID
	}

	result, err := s.finalizeRepo.FinalizePoll(ctx, poll.ID, winnerJSON, hangout.ID, userIDs)
	if err != nil {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to finalize poll", err.Error())
	}
	if !result.Applied {
		s.logger.Info("Poll already finalized by a concurrent request",
			zap.String("poll_id", poll.ID.String()),
		)
		return false, nil
	}

	if s.metrics != nil {
		s.metrics.IncrementConsensusReached()
	}

	s.logger.Info("Consensus reached",
		zap.String("hangout_id", hangout.ID.String()),
		zap.String("poll_id", poll.ID.String()),
		zap.String("winning_option", winner.Title),
		zap.Int("rsvps_created", result.RSVPsCreated),
	)

	// Fire-and-forget: consensus outcome never depends on notification delivery
	events := make([]client.NotificationEvent, 0, len(userIDs))
	for _, userID := range userIDs {
		events = append(events, client.NotificationEvent{
			Type:         client.NotificationConsensusReached,
			TargetUserID: userID,
			HangoutID:    hangout.ID,
			ResourceType: "poll",
			ResourceID:   poll.ID,
			ResourceName: winner.Title,
		})
	}
	go func(events []client.NotificationEvent) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		_ = s.notificationClient.SendBulkNotifications(notifyCtx, events)
	}(events)

	return true, nil
}

// publishTally pushes the updated tally to the hangout's live feed.
// Best-effort only.
func (s *voteServiceImpl) publishTally(ctx context.Context, hangoutID uuid.UUID, poll *domain.Poll, votes []domain.Vote, activeParticipants int, finalized bool) {
	summary := consensus.Summarize(votes)
	tallies := make(map[string]int, len(summary.VotesByOption))
	for optionID, voters := range summary.VotesByOption {
		tallies[optionID.String()] = len(voters)
	}

	eventType := "vote_cast"
	if finalized {
		eventType = "consensus_reached"
	}

	database.PublishHangoutEvent(ctx, s.logger, database.HangoutEvent{
		Type:      eventType,
		HangoutID: hangoutID.String(),
		Payload: map[string]interface{}{
			"pollId":             poll.ID.String(),
			"status":             string(poll.Status),
			"activeParticipants": activeParticipants,
			"tallies":            tallies,
		},
	})
}

// GetPollSummary returns the live per-option tallies of a hangout's poll
func (s *voteServiceImpl) GetPollSummary(ctx context.Context, hangoutID uuid.UUID) (*dto.PollSummaryResponse, error) {
	poll, err := s.pollRepo.FindByHangoutID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout has no poll", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch poll", err.Error())
	}

	options, err := poll.DecodeOptions()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode poll options", err.Error())
	}

	votes, err := s.voteRepo.FindByPollID(ctx, poll.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read votes", err.Error())
	}
	activeParticipants, err := s.participantRepo.CountByHangoutID(ctx, hangoutID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count participants", err.Error())
	}

	summary := consensus.Summarize(votes)

	tallies := make([]dto.OptionTally, len(options))
	for i, opt := range options {
		voters := summary.VotesByOption[opt.ID]
		tally := dto.OptionTally{
			OptionID: opt.ID,
			Title:    opt.Title,
			Votes:    len(voters),
			VoterIDs: voters,
		}
		if activeParticipants > 0 {
			tally.Percentage = float64(len(voters)) / float64(activeParticipants) * 100
		}
		tallies[i] = tally
	}

	return &dto.PollSummaryResponse{
		PollID:             poll.ID,
		Status:             string(poll.Status),
		Threshold:          poll.Threshold,
		MinParticipants:    poll.MinParticipants,
		ActiveParticipants: int(activeParticipants),
		Tallies:            tallies,
	}, nil
}

// optionExists reports whether the option ID is part of the poll
func optionExists(options []domain.PollOption, optionID uuid.UUID) bool {
	for _, opt := range options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
