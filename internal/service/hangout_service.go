package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hangout-api/internal/consensus"
	"hangout-api/internal/domain"
	"hangout-api/internal/dto"
	"hangout-api/internal/metrics"
	"hangout-api/internal/repository"
	"hangout-api/internal/response"
)

// notificationTimeout bounds the background notification goroutines spawned
// by the services
const notificationTimeout = 5 * time.Second

// HangoutService defines the interface for hangout business logic
type HangoutService interface {
	CreateHangout(ctx context.Context, creatorID uuid.UUID, req *dto.CreateHangoutRequest) (*dto.HangoutResponse, error)
	GetHangout(ctx context.Context, id uuid.UUID) (*dto.HangoutResponse, error)
	GetMyHangouts(ctx context.Context, userID uuid.UUID) ([]*dto.HangoutResponse, error)
	UpdateHangout(ctx context.Context, id, actorID uuid.UUID, req *dto.UpdateHangoutRequest) (*dto.HangoutResponse, error)
	CancelHangout(ctx context.Context, id, actorID uuid.UUID) error
}

// hangoutServiceImpl is the implementation of HangoutService
type hangoutServiceImpl struct {
	hangoutRepo       repository.HangoutRepository
	pollRepo          repository.PollRepository
	participantRepo   repository.ParticipantRepository
	rsvpRepo          repository.RSVPRepository
	consensusSettings consensus.Settings
	metrics           *metrics.Metrics
	logger            *zap.Logger
}

// NewHangoutService creates a new instance of HangoutService
func NewHangoutService(
	hangoutRepo repository.HangoutRepository,
	pollRepo repository.PollRepository,
	participantRepo repository.ParticipantRepository,
	rsvpRepo repository.RSVPRepository,
	consensusSettings consensus.Settings,
	m *metrics.Metrics,
	logger *zap.Logger,
) HangoutService {
	return &hangoutServiceImpl{
		hangoutRepo:       hangoutRepo,
		pollRepo:          pollRepo,
		participantRepo:   participantRepo,
		rsvpRepo:          rsvpRepo,
		consensusSettings: consensusSettings,
		metrics:           m,
		logger:            logger,
	}
}

// CreateHangout creates a hangout and, depending on how many options were
// proposed, opens a poll or confirms the plan outright.
//
// Two or more options open an ACTIVE poll: the hangout is PUBLISHED and
// enters the voting phase. Exactly one option needs no vote: the poll is
// created already CONSENSUS_REACHED, the hangout is ACTIVE and RSVP
// collection starts with the creator. No options leave the hangout in DRAFT
// while plans are still being worked out.
func (s *hangoutServiceImpl) CreateHangout(ctx context.Context, creatorID uuid.UUID, req *dto.CreateHangoutRequest) (*dto.HangoutResponse, error) {
	hangout := &domain.Hangout{
		CreatorID:       creatorID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Privacy:         domain.PrivacyFriends,
		Status:          domain.HangoutStatusDraft,
		MaxParticipants: req.MaxParticipants,
	}
	if req.Privacy != "" {
		hangout.Privacy = domain.PrivacyLevel(req.Privacy)
	}

	switch {
	case len(req.Options) >= 2:
		hangout.Status = domain.HangoutStatusPublished
	case len(req.Options) == 1:
		hangout.Status = domain.HangoutStatusActive
	}

	if err := s.hangoutRepo.Create(ctx, hangout); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create hangout", err.Error())
	}

	// The creator is always the first participant
	creator := &domain.Participant{
		HangoutID: hangout.ID,
		UserID:    creatorID,
		Role:      domain.ParticipantRoleCreator,
	}
	if err := s.participantRepo.Create(ctx, creator); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register creator", err.Error())
	}

	var poll *domain.Poll
	if len(req.Options) > 0 {
		var err error
		poll, err = s.createPoll(ctx, hangout, creatorID, req)
		if err != nil {
			return nil, err
		}

		// A single option means the plan is already settled: open RSVP
		// collection right away.
		if poll.Status == domain.PollStatusConsensusReached {
			if _, err := s.rsvpRepo.Bootstrap(ctx, hangout.ID, []uuid.UUID{creatorID}); err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to initialize RSVPs", err.Error())
			}
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementHangoutCreated()
	}

	s.logger.Info("Hangout created",
		zap.String("hangout_id", hangout.ID.String()),
		zap.String("creator_id", creatorID.String()),
		zap.Int("options", len(req.Options)),
		zap.String("status", string(hangout.Status)),
	)

	return toHangoutResponse(hangout, poll), nil
}

// createPoll builds the poll for a new hangout
func (s *hangoutServiceImpl) createPoll(ctx context.Context, hangout *domain.Hangout, creatorID uuid.UUID, req *dto.CreateHangoutRequest) (*domain.Poll, error) {
	options := make([]domain.PollOption, 0, len(req.Options))
	for _, opt := range req.Options {
		options = append(options, domain.PollOption{
			ID:          uuid.New(),
			Title:       opt.Title,
			Description: opt.Description,
			Location:    opt.Location,
			StartTime:   opt.StartTime,
			Price:       opt.Price,
		})
	}

	encoded, err := domain.EncodeOptions(options)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode poll options", err.Error())
	}

	poll := &domain.Poll{
		HangoutID:       hangout.ID,
		CreatorID:       creatorID,
		Status:          domain.PollStatusActive,
		Threshold:       s.consensusSettings.Threshold,
		MinParticipants: s.consensusSettings.MinParticipants,
		Options:         encoded,
	}
	if req.Threshold > 0 {
		poll.Threshold = req.Threshold
	}
	if req.MinParticipants > 0 {
		poll.MinParticipants = req.MinParticipants
	}
	if len(options) == 1 {
		poll.Status = domain.PollStatusConsensusReached
	}

	if err := s.pollRepo.Create(ctx, poll); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create poll", err.Error())
	}
	return poll, nil
}

// GetHangout retrieves a hangout with its poll and planning phase
func (s *hangoutServiceImpl) GetHangout(ctx context.Context, id uuid.UUID) (*dto.HangoutResponse, error) {
	hangout, err := s.hangoutRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch hangout", err.Error())
	}

	poll, err := s.findPoll(ctx, id)
	if err != nil {
		return nil, err
	}

	return toHangoutResponse(hangout, poll), nil
}

// GetMyHangouts lists hangouts created by the user
func (s *hangoutServiceImpl) GetMyHangouts(ctx context.Context, userID uuid.UUID) ([]*dto.HangoutResponse, error) {
	hangouts, err := s.hangoutRepo.FindByCreatorID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch hangouts", err.Error())
	}

	responses := make([]*dto.HangoutResponse, len(hangouts))
	for i, hangout := range hangouts {
		poll, err := s.findPoll(ctx, hangout.ID)
		if err != nil {
			return nil, err
		}
		responses[i] = toHangoutResponse(hangout, poll)
	}
	return responses, nil
}

// UpdateHangout applies a partial update to hangout metadata
func (s *hangoutServiceImpl) UpdateHangout(ctx context.Context, id, actorID uuid.UUID, req *dto.UpdateHangoutRequest) (*dto.HangoutResponse, error) {
	hangout, err := s.hangoutRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch hangout", err.Error())
	}

	if err := s.requireManager(ctx, id, actorID); err != nil {
		return nil, err
	}

	if hangout.Status == domain.HangoutStatusCancelled || hangout.Status == domain.HangoutStatusCompleted {
		return nil, response.NewAppError(response.ErrCodeValidation, "Hangout can no longer be edited", "")
	}

	if req.Title != nil {
		hangout.Title = *req.Title
	}
	if req.Description != nil {
		hangout.Description = *req.Description
	}
	if req.Location != nil {
		hangout.Location = *req.Location
	}
	if req.StartTime != nil {
		hangout.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		hangout.EndTime = req.EndTime
	}
	if req.Privacy != nil {
		hangout.Privacy = domain.PrivacyLevel(*req.Privacy)
	}
	if req.MaxParticipants != nil {
		hangout.MaxParticipants = *req.MaxParticipants
	}

	if err := s.hangoutRepo.Update(ctx, hangout); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update hangout", err.Error())
	}

	poll, err := s.findPoll(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHangoutResponse(hangout, poll), nil
}

// CancelHangout cancels a hangout and closes any open poll
func (s *hangoutServiceImpl) CancelHangout(ctx context.Context, id, actorID uuid.UUID) error {
	hangout, err := s.hangoutRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch hangout", err.Error())
	}

	if hangout.CreatorID != actorID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the creator can cancel a hangout", "")
	}
	if hangout.Status == domain.HangoutStatusCancelled {
		return nil
	}

	if err := s.hangoutRepo.UpdateStatus(ctx, id, domain.HangoutStatusCancelled); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to cancel hangout", err.Error())
	}
	if err := s.pollRepo.CloseByHangoutID(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to close poll", err.Error())
	}

	s.logger.Info("Hangout cancelled",
		zap.String("hangout_id", id.String()),
		zap.String("actor_id", actorID.String()),
	)
	return nil
}

// requireManager ensures the actor can manage the hangout
func (s *hangoutServiceImpl) requireManager(ctx context.Context, hangoutID, actorID uuid.UUID) error {
	actor, err := s.participantRepo.FindByHangoutAndUser(ctx, hangoutID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeForbidden, "Only participants can modify a hangout", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify permissions", err.Error())
	}
	if !actor.CanManage() {
		return response.NewAppError(response.ErrCodeForbidden, "Insufficient permission to modify hangout", "")
	}
	return nil
}

// findPoll loads the hangout's poll, tolerating its absence
func (s *hangoutServiceImpl) findPoll(ctx context.Context, hangoutID uuid.UUID) (*domain.Poll, error) {
	poll, err := s.pollRepo.FindByHangoutID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch poll", err.Error())
	}
	return poll, nil
}

// toHangoutResponse converts a hangout and its poll to the response DTO
func toHangoutResponse(hangout *domain.Hangout, poll *domain.Poll) *dto.HangoutResponse {
	resp := &dto.HangoutResponse{
		ID:              hangout.ID,
		CreatorID:       hangout.CreatorID,
		Title:           hangout.Title,
		Description:     hangout.Description,
		Location:        hangout.Location,
		StartTime:       hangout.StartTime,
		EndTime:         hangout.EndTime,
		Privacy:         string(hangout.Privacy),
		Status:          string(hangout.Status),
		Phase:           string(domain.PhaseOf(poll)),
		MaxParticipants: hangout.MaxParticipants,
		CreatedAt:       hangout.CreatedAt,
		UpdatedAt:       hangout.UpdatedAt,
	}
	if poll != nil {
		resp.Poll = toPollResponse(poll)
	}
	return resp
}

// toPollResponse converts a poll to the response DTO. Options that fail to
// decode are reported as an empty list rather than an error.
func toPollResponse(poll *domain.Poll) *dto.PollResponse {
	options, err := poll.DecodeOptions()
	if err != nil {
		options = nil
	}

	optionResponses := make([]dto.PollOptionResponse, len(options))
	for i, opt := range options {
		optionResponses[i] = dto.PollOptionResponse{
			ID:          opt.ID,
			Title:       opt.Title,
			Description: opt.Description,
			Location:    opt.Location,
			StartTime:   opt.StartTime,
			Price:       opt.Price,
		}
	}

	return &dto.PollResponse{
		ID:              poll.ID,
		HangoutID:       poll.HangoutID,
		CreatorID:       poll.CreatorID,
		Status:          string(poll.Status),
		Threshold:       poll.Threshold,
		MinParticipants: poll.MinParticipants,
		Options:         optionResponses,
		CreatedAt:       poll.CreatedAt,
	}
}
