package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hangout-api/internal/database"
	"hangout-api/internal/domain"
	"hangout-api/internal/dto"
	"hangout-api/internal/metrics"
	"hangout-api/internal/repository"
	"hangout-api/internal/response"
)

// RSVPService defines the interface for attendance tracking
type RSVPService interface {
	GetRSVPs(ctx context.Context, hangoutID uuid.UUID) ([]*dto.RSVPResponse, error)
	Respond(ctx context.Context, hangoutID, userID uuid.UUID, req *dto.RespondRSVPRequest) (*dto.RSVPResponse, error)
}

// rsvpServiceImpl is the implementation of RSVPService
type rsvpServiceImpl struct {
	rsvpRepo    repository.RSVPRepository
	hangoutRepo repository.HangoutRepository
	pollRepo    repository.PollRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewRSVPService creates a new instance of RSVPService
func NewRSVPService(
	rsvpRepo repository.RSVPRepository,
	hangoutRepo repository.HangoutRepository,
	pollRepo repository.PollRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) RSVPService {
	return &rsvpServiceImpl{
		rsvpRepo:    rsvpRepo,
		hangoutRepo: hangoutRepo,
		pollRepo:    pollRepo,
		metrics:     m,
		logger:      logger,
	}
}

// GetRSVPs lists the attendance records of a hangout
func (s *rsvpServiceImpl) GetRSVPs(ctx context.Context, hangoutID uuid.UUID) ([]*dto.RSVPResponse, error) {
	_, err := s.hangoutRepo.FindByID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch hangout", err.Error())
	}

	rsvps, err := s.rsvpRepo.FindByHangoutID(ctx, hangoutID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch RSVPs", err.Error())
	}

	responses := make([]*dto.RSVPResponse, len(rsvps))
	for i, rsvp := range rsvps {
		responses[i] = toRSVPResponse(rsvp)
	}
	return responses, nil
}

// Respond records a participant's attendance answer. Responses are only
// accepted once the hangout's plan is confirmed, and the PENDING row created
// at finalization must exist.
func (s *rsvpServiceImpl) Respond(ctx context.Context, hangoutID, userID uuid.UUID, req *dto.RespondRSVPRequest) (*dto.RSVPResponse, error) {
	_, err := s.hangoutRepo.FindByID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch hangout", err.Error())
	}

	poll, err := s.pollRepo.FindByHangoutID(ctx, hangoutID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch poll", err.Error())
	}
	if domain.PhaseOf(poll) != domain.PhaseRSVP {
		return nil, response.NewAppError(response.ErrCodeValidation, "Hangout is not collecting RSVPs", "")
	}

	if _, err := s.rsvpRepo.FindByHangoutAndUser(ctx, hangoutID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "No RSVP requested for this user", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch RSVP", err.Error())
	}

	status := domain.RSVPStatus(req.Status)
	if err := s.rsvpRepo.UpdateStatus(ctx, hangoutID, userID, status); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record RSVP", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementRSVPResponse(req.Status)
	}

	s.logger.Info("RSVP recorded",
		zap.String("hangout_id", hangoutID.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", req.Status),
	)

	database.PublishHangoutEvent(ctx, s.logger, database.HangoutEvent{
		Type:      "rsvp_recorded",
		HangoutID: hangoutID.String(),
		Payload: map[string]interface{}{
			"userId": userID.String(),
			"status": req.Status,
		},
	})

	rsvp, err := s.rsvpRepo.FindByHangoutAndUser(ctx, hangoutID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch RSVP", err.Error())
	}
	return toRSVPResponse(rsvp), nil
}

// toRSVPResponse converts domain.RSVP to dto.RSVPResponse
func toRSVPResponse(rsvp *domain.RSVP) *dto.RSVPResponse {
	return &dto.RSVPResponse{
		ID:          rsvp.ID,
		HangoutID:   rsvp.HangoutID,
		UserID:      rsvp.UserID,
		Status:      string(rsvp.Status),
		RespondedAt: rsvp.RespondedAt,
		CreatedAt:   rsvp.CreatedAt,
	}
}
