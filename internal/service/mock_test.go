package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hangout-api/internal/client"
	"hangout-api/internal/domain"
	"hangout-api/internal/dto"
	"hangout-api/internal/repository"
)

// MockHangoutRepository is a mock implementation of HangoutRepository
type MockHangoutRepository struct {
	CreateFunc          func(ctx context.Context, hangout *domain.Hangout) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Hangout, error)
	FindByCreatorIDFunc func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Hangout, error)
	UpdateFunc          func(ctx context.Context, hangout *domain.Hangout) error
	UpdateStatusFunc    func(ctx context.Context, id uuid.UUID, status domain.HangoutStatus) error
	FindEndedBeforeFunc func(ctx context.Context, cutoff time.Time) ([]*domain.Hangout, error)
}

func (m *MockHangoutRepository) Create(ctx context.Context, hangout *domain.Hangout) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, hangout)
	}
	return nil
}

func (m *MockHangoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Hangout, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockHangoutRepository) FindByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*domain.Hangout, error) {
	if m.FindByCreatorIDFunc != nil {
		return m.FindByCreatorIDFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *MockHangoutRepository) Update(ctx context.Context, hangout *domain.Hangout) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, hangout)
	}
	return nil
}

func (m *MockHangoutRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.HangoutStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockHangoutRepository) FindEndedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Hangout, error) {
	if m.FindEndedBeforeFunc != nil {
		return m.FindEndedBeforeFunc(ctx, cutoff)
	}
	return nil, nil
}

// MockPollRepository is a mock implementation of PollRepository
type MockPollRepository struct {
	CreateFunc           func(ctx context.Context, poll *domain.Poll) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	FindByHangoutIDFunc  func(ctx context.Context, hangoutID uuid.UUID) (*domain.Poll, error)
	UpdateFunc           func(ctx context.Context, poll *domain.Poll) error
	UpdateStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.PollStatus) error
	CloseByHangoutIDFunc func(ctx context.Context, hangoutID uuid.UUID) error
}

func (m *MockPollRepository) Create(ctx context.Context, poll *domain.Poll) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, poll)
	}
	return nil
}

func (m *MockPollRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPollRepository) FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) (*domain.Poll, error) {
	if m.FindByHangoutIDFunc != nil {
		return m.FindByHangoutIDFunc(ctx, hangoutID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPollRepository) Update(ctx context.Context, poll *domain.Poll) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, poll)
	}
	return nil
}

func (m *MockPollRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PollStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockPollRepository) CloseByHangoutID(ctx context.Context, hangoutID uuid.UUID) error {
	if m.CloseByHangoutIDFunc != nil {
		return m.CloseByHangoutIDFunc(ctx, hangoutID)
	}
	return nil
}

// MockVoteRepository is a mock implementation of VoteRepository
type MockVoteRepository struct {
	CreateFunc               func(ctx context.Context, vote *domain.Vote) error
	FindByPollUserOptionFunc func(ctx context.Context, pollID, userID, optionID uuid.UUID) (*domain.Vote, error)
	FindByPollIDFunc         func(ctx context.Context, pollID uuid.UUID) ([]domain.Vote, error)
	UpdateFunc               func(ctx context.Context, vote *domain.Vote) error
	DeleteFunc               func(ctx context.Context, pollID, userID, optionID uuid.UUID) error
	ClearPreferredExceptFunc func(ctx context.Context, pollID, userID, optionID uuid.UUID) error
}

func (m *MockVoteRepository) Create(ctx context.Context, vote *domain.Vote) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vote)
	}
	return nil
}

func (m *MockVoteRepository) FindByPollUserOption(ctx context.Context, pollID, userID, optionID uuid.UUID) (*domain.Vote, error) {
	if m.FindByPollUserOptionFunc != nil {
		return m.FindByPollUserOptionFunc(ctx, pollID, userID, optionID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockVoteRepository) FindByPollID(ctx context.Context, pollID uuid.UUID) ([]domain.Vote, error) {
	if m.FindByPollIDFunc != nil {
		return m.FindByPollIDFunc(ctx, pollID)
	}
	return nil, nil
}

func (m *MockVoteRepository) Update(ctx context.Context, vote *domain.Vote) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vote)
	}
	return nil
}

func (m *MockVoteRepository) Delete(ctx context.Context, pollID, userID, optionID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, pollID, userID, optionID)
	}
	return nil
}

func (m *MockVoteRepository) ClearPreferredExcept(ctx context.Context, pollID, userID, optionID uuid.UUID) error {
	if m.ClearPreferredExceptFunc != nil {
		return m.ClearPreferredExceptFunc(ctx, pollID, userID, optionID)
	}
	return nil
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc               func(ctx context.Context, participant *domain.Participant) error
	FindByHangoutIDFunc      func(ctx context.Context, hangoutID uuid.UUID) ([]*domain.Participant, error)
	FindByHangoutAndUserFunc func(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.Participant, error)
	CountByHangoutIDFunc     func(ctx context.Context, hangoutID uuid.UUID) (int64, error)
	DeleteFunc               func(ctx context.Context, hangoutID, userID uuid.UUID) error
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*domain.Participant, error) {
	if m.FindByHangoutIDFunc != nil {
		return m.FindByHangoutIDFunc(ctx, hangoutID)
	}
	return nil, nil
}

func (m *MockParticipantRepository) FindByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.Participant, error) {
	if m.FindByHangoutAndUserFunc != nil {
		return m.FindByHangoutAndUserFunc(ctx, hangoutID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockParticipantRepository) CountByHangoutID(ctx context.Context, hangoutID uuid.UUID) (int64, error) {
	if m.CountByHangoutIDFunc != nil {
		return m.CountByHangoutIDFunc(ctx, hangoutID)
	}
	return 0, nil
}

func (m *MockParticipantRepository) Delete(ctx context.Context, hangoutID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, hangoutID, userID)
	}
	return nil
}

// MockRSVPRepository is a mock implementation of RSVPRepository
type MockRSVPRepository struct {
	BootstrapFunc            func(ctx context.Context, hangoutID uuid.UUID, userIDs []uuid.UUID) (int, error)
	FindByHangoutIDFunc      func(ctx context.Context, hangoutID uuid.UUID) ([]*domain.RSVP, error)
	FindByHangoutAndUserFunc func(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.RSVP, error)
	UpdateStatusFunc         func(ctx context.Context, hangoutID, userID uuid.UUID, status domain.RSVPStatus) error
}

func (m *MockRSVPRepository) Bootstrap(ctx context.Context, hangoutID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	if m.BootstrapFunc != nil {
		return m.BootstrapFunc(ctx, hangoutID, userIDs)
	}
	return 0, nil
}

func (m *MockRSVPRepository) FindByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*domain.RSVP, error) {
	if m.FindByHangoutIDFunc != nil {
		return m.FindByHangoutIDFunc(ctx, hangoutID)
	}
	return nil, nil
}

func (m *MockRSVPRepository) FindByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*domain.RSVP, error) {
	if m.FindByHangoutAndUserFunc != nil {
		return m.FindByHangoutAndUserFunc(ctx, hangoutID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockRSVPRepository) UpdateStatus(ctx context.Context, hangoutID, userID uuid.UUID, status domain.RSVPStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, hangoutID, userID, status)
	}
	return nil
}

// MockFinalizeRepository is a mock implementation of FinalizeRepository
type MockFinalizeRepository struct {
	FinalizePollFunc func(ctx context.Context, pollID uuid.UUID, winner datatypes.JSON, hangoutID uuid.UUID, participantUserIDs []uuid.UUID) (*repository.FinalizeResult, error)
}

func (m *MockFinalizeRepository) FinalizePoll(ctx context.Context, pollID uuid.UUID, winner datatypes.JSON, hangoutID uuid.UUID, participantUserIDs []uuid.UUID) (*repository.FinalizeResult, error) {
	if m.FinalizePollFunc != nil {
		return m.FinalizePollFunc(ctx, pollID, winner, hangoutID, participantUserIDs)
	}
	return &repository.FinalizeResult{Applied: true}, nil
}

// MockNotificationClient is a mock implementation of NotificationClient
type MockNotificationClient struct {
	SendNotificationFunc      func(ctx context.Context, event client.NotificationEvent) error
	SendBulkNotificationsFunc func(ctx context.Context, events []client.NotificationEvent) error
}

func (m *MockNotificationClient) SendNotification(ctx context.Context, event client.NotificationEvent) error {
	if m.SendNotificationFunc != nil {
		return m.SendNotificationFunc(ctx, event)
	}
	return nil
}

func (m *MockNotificationClient) SendBulkNotifications(ctx context.Context, events []client.NotificationEvent) error {
	if m.SendBulkNotificationsFunc != nil {
		return m.SendBulkNotificationsFunc(ctx, events)
	}
	return nil
}

// MockParticipantService is a mock implementation of ParticipantService
type MockParticipantService struct {
	InviteParticipantsFunc func(ctx context.Context, hangoutID, actorID uuid.UUID, req *dto.InviteParticipantsRequest) (*dto.InviteParticipantsResponse, error)
	GetParticipantsFunc    func(ctx context.Context, hangoutID uuid.UUID) ([]*dto.ParticipantResponse, error)
	RemoveParticipantFunc  func(ctx context.Context, hangoutID, actorID, userID uuid.UUID) error
	EnsureParticipantFunc  func(ctx context.Context, hangoutID, userID uuid.UUID) error
}

func (m *MockParticipantService) InviteParticipants(ctx context.Context, hangoutID, actorID uuid.UUID, req *dto.InviteParticipantsRequest) (*dto.InviteParticipantsResponse, error) {
	if m.InviteParticipantsFunc != nil {
		return m.InviteParticipantsFunc(ctx, hangoutID, actorID, req)
	}
	return nil, nil
}

func (m *MockParticipantService) GetParticipants(ctx context.Context, hangoutID uuid.UUID) ([]*dto.ParticipantResponse, error) {
	if m.GetParticipantsFunc != nil {
		return m.GetParticipantsFunc(ctx, hangoutID)
	}
	return nil, nil
}

func (m *MockParticipantService) RemoveParticipant(ctx context.Context, hangoutID, actorID, userID uuid.UUID) error {
	if m.RemoveParticipantFunc != nil {
		return m.RemoveParticipantFunc(ctx, hangoutID, actorID, userID)
	}
	return nil
}

func (m *MockParticipantService) EnsureParticipant(ctx context.Context, hangoutID, userID uuid.UUID) error {
	if m.EnsureParticipantFunc != nil {
		return m.EnsureParticipantFunc(ctx, hangoutID, userID)
	}
	return nil
}
