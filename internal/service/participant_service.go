package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hangout-api/internal/client"
	"hangout-api/internal/domain"
	"hangout-api/internal/dto"
	"hangout-api/internal/repository"
	"hangout-api/internal/response"
)

// ParticipantService defines the interface for participant business logic
type ParticipantService interface {
	InviteParticipants(ctx context.Context, hangoutID, actorID uuid.UUID, req *dto.InviteParticipantsRequest) (*dto.InviteParticipantsResponse, error)
	GetParticipants(ctx context.Context, hangoutID uuid.UUID) ([]*dto.ParticipantResponse, error)
	RemoveParticipant(ctx context.Context, hangoutID, actorID, userID uuid.UUID) error
	EnsureParticipant(ctx context.Context, hangoutID, userID uuid.UUID) error
}

// participantServiceImpl is the implementation of ParticipantService
type participantServiceImpl struct {
	participantRepo    repository.ParticipantRepository
	hangoutRepo        repository.HangoutRepository
	notificationClient client.NotificationClient
}

// NewParticipantService creates a new instance of ParticipantService
func NewParticipantService(
	participantRepo repository.ParticipantRepository,
	hangoutRepo repository.HangoutRepository,
	notificationClient client.NotificationClient,
) ParticipantService {
	return &participantServiceImpl{
		participantRepo:    participantRepo,
		hangoutRepo:        hangoutRepo,
		notificationClient: notificationClient,
	}
}

// InviteParticipants adds one or more participants to a hangout (supports single and bulk operations)
func (s *participantServiceImpl) InviteParticipants(ctx context.Context, hangoutID, actorID uuid.UUID, req *dto.InviteParticipantsRequest) (*dto.InviteParticipantsResponse, error) {
	// Verify hangout exists
	hangout, err := s.hangoutRepo.FindByID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify hangout", err.Error())
	}

	// Only the creator or a co-host may invite
	actor, err := s.participantRepo.FindByHangoutAndUser(ctx, hangoutID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeForbidden, "Only participants can invite others", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify inviter", err.Error())
	}
	if !actor.CanManage() {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Insufficient permission to invite participants", "")
	}

	// Remove duplicates from the request
	uniqueUserIDs := removeDuplicateUUIDs(req.UserIDs)

	// Enforce the participant cap when one is set
	if hangout.MaxParticipants > 0 {
		current, err := s.participantRepo.CountByHangoutID(ctx, hangoutID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count participants", err.Error())
		}
		if int(current)+len(uniqueUserIDs) > hangout.MaxParticipants {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invitation exceeds the participant limit", "")
		}
	}

	// Initialize response
	resp := &dto.InviteParticipantsResponse{
		TotalRequested: len(uniqueUserIDs),
		TotalSuccess:   0,
		TotalFailed:    0,
		Results:        make([]dto.ParticipantResult, 0, len(uniqueUserIDs)),
	}

	events := make([]client.NotificationEvent, 0, len(uniqueUserIDs))

	for _, userID := range uniqueUserIDs {
		result := s.addSingleParticipant(ctx, hangoutID, userID)
		resp.Results = append(resp.Results, result)
		if result.Success {
			resp.TotalSuccess++
			events = append(events, client.NotificationEvent{
				Type:         client.NotificationParticipantAdded,
				ActorID:      actorID,
				TargetUserID: userID,
				HangoutID:    hangoutID,
				ResourceType: "hangout",
				ResourceID:   hangoutID,
				ResourceName: hangout.Title,
			})
		} else {
			resp.TotalFailed++
		}
	}

	// Fire-and-forget: invite outcome never depends on notification delivery
	if len(events) > 0 {
		go func(events []client.NotificationEvent) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
			defer cancel()
			_ = s.notificationClient.SendBulkNotifications(notifyCtx, events)
		}(events)
	}

	return resp, nil
}

// EnsureParticipant creates a MEMBER row for the user if one does not exist.
// Voting on a poll implies joining the hangout.
func (s *participantServiceImpl) EnsureParticipant(ctx context.Context, hangoutID, userID uuid.UUID) error {
	_, err := s.participantRepo.FindByHangoutAndUser(ctx, hangoutID, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check participant", err.Error())
	}

	participant := &domain.Participant{
		HangoutID: hangoutID,
		UserID:    userID,
		Role:      domain.ParticipantRoleMember,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		// A concurrent vote may have created the row already
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to add participant", err.Error())
	}
	return nil
}

// addSingleParticipant attempts to add a single participant and returns the result
func (s *participantServiceImpl) addSingleParticipant(ctx context.Context, hangoutID, userID uuid.UUID) dto.ParticipantResult {
	result := dto.ParticipantResult{
		UserID:  userID,
		Success: false,
	}

	// Check if participant already exists
	existing, err := s.participantRepo.FindByHangoutAndUser(ctx, hangoutID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		result.Error = "Failed to check existing participant"
		return result
	}
	if existing != nil {
		result.Error = "Participant already exists"
		return result
	}

	// Create domain model
	participant := &domain.Participant{
		HangoutID: hangoutID,
		UserID:    userID,
		Role:      domain.ParticipantRoleMember,
	}

	// Save to repository
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		// Check for unique constraint violation
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			result.Error = "Participant already exists"
		} else {
			result.Error = "Failed to add participant"
		}
		return result
	}

	result.Success = true
	return result
}

// removeDuplicateUUIDs removes duplicate UUIDs from a slice
func removeDuplicateUUIDs(uuids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	result := make([]uuid.UUID, 0, len(uuids))

	for _, id := range uuids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}

// GetParticipants retrieves all participants for a hangout
func (s *participantServiceImpl) GetParticipants(ctx context.Context, hangoutID uuid.UUID) ([]*dto.ParticipantResponse, error) {
	// Verify hangout exists
	_, err := s.hangoutRepo.FindByID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify hangout", err.Error())
	}

	// Fetch participants from repository
	participants, err := s.participantRepo.FindByHangoutID(ctx, hangoutID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch participants", err.Error())
	}

	// Convert to response DTOs
	responses := make([]*dto.ParticipantResponse, len(participants))
	for i, participant := range participants {
		responses[i] = toParticipantResponse(participant)
	}

	return responses, nil
}

// RemoveParticipant removes a participant from a hangout
func (s *participantServiceImpl) RemoveParticipant(ctx context.Context, hangoutID, actorID, userID uuid.UUID) error {
	// Verify hangout exists
	_, err := s.hangoutRepo.FindByID(ctx, hangoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Hangout not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify hangout", err.Error())
	}

	// Users may leave on their own; removing someone else requires management rights
	if actorID != userID {
		actor, err := s.participantRepo.FindByHangoutAndUser(ctx, hangoutID, actorID)
		if err != nil || !actor.CanManage() {
			return response.NewAppError(response.ErrCodeForbidden, "Insufficient permission to remove participant", "")
		}
	}

	// Check if participant exists
	target, err := s.participantRepo.FindByHangoutAndUser(ctx, hangoutID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Participant not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify participant", err.Error())
	}
	if target.Role == domain.ParticipantRoleCreator {
		return response.NewAppError(response.ErrCodeValidation, "The creator cannot be removed from a hangout", "")
	}

	// Delete participant
	if err := s.participantRepo.Delete(ctx, hangoutID, userID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove participant", err.Error())
	}

	return nil
}

// toParticipantResponse converts domain.Participant to dto.ParticipantResponse
func toParticipantResponse(participant *domain.Participant) *dto.ParticipantResponse {
	return &dto.ParticipantResponse{
		ID:        participant.ID,
		HangoutID: participant.HangoutID,
		UserID:    participant.UserID,
		Role:      string(participant.Role),
		IsCoHost:  participant.IsCoHost,
		CreatedAt: participant.CreatedAt,
	}
}
