package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateHangoutRequest represents the request to create a hangout
// @Description Request to create a hangout. When two or more options are
// @Description provided a poll is opened and the hangout starts in the voting
// @Description phase. A single option skips voting entirely: the hangout is
// @Description confirmed immediately and RSVP collection begins.
type CreateHangoutRequest struct {
	Title           string              `json:"title" binding:"required,min=1,max=200" example:"Friday board games"`
	Description     string              `json:"description" binding:"max=2000" example:"Bring snacks"`
	Location        string              `json:"location" binding:"max=500" example:"Community hall"`
	StartTime       *time.Time          `json:"startTime" example:"2024-06-07T19:00:00Z"`
	EndTime         *time.Time          `json:"endTime" example:"2024-06-07T23:00:00Z"`
	Privacy         string              `json:"privacy" binding:"omitempty,oneof=PUBLIC FRIENDS PRIVATE" example:"FRIENDS"`
	MaxParticipants int                 `json:"maxParticipants" binding:"omitempty,min=0" example:"10"`
	Options         []PollOptionRequest `json:"options" binding:"omitempty,max=20,dive"`
	Threshold       int                 `json:"threshold" binding:"omitempty,min=1,max=100" example:"70"`
	MinParticipants int                 `json:"minParticipants" binding:"omitempty,min=1" example:"2"`
}

// UpdateHangoutRequest represents the request to update hangout details
// @Description Partial update of hangout metadata. Only non-nil fields are applied.
type UpdateHangoutRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=1,max=200" example:"Friday board games"`
	Description     *string    `json:"description" binding:"omitempty,max=2000" example:"Bring snacks"`
	Location        *string    `json:"location" binding:"omitempty,max=500" example:"Community hall"`
	StartTime       *time.Time `json:"startTime" example:"2024-06-07T19:00:00Z"`
	EndTime         *time.Time `json:"endTime" example:"2024-06-07T23:00:00Z"`
	Privacy         *string    `json:"privacy" binding:"omitempty,oneof=PUBLIC FRIENDS PRIVATE" example:"PRIVATE"`
	MaxParticipants *int       `json:"maxParticipants" binding:"omitempty,min=0" example:"12"`
}

// HangoutResponse represents the hangout response
// @Description Hangout details including its current planning phase and poll
type HangoutResponse struct {
	ID              uuid.UUID     `json:"id" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	CreatorID       uuid.UUID     `json:"creatorId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Title           string        `json:"title" example:"Friday board games"`
	Description     string        `json:"description,omitempty" example:"Bring snacks"`
	Location        string        `json:"location,omitempty" example:"Community hall"`
	StartTime       *time.Time    `json:"startTime,omitempty" example:"2024-06-07T19:00:00Z"`
	EndTime         *time.Time    `json:"endTime,omitempty" example:"2024-06-07T23:00:00Z"`
	Privacy         string        `json:"privacy" example:"FRIENDS"`
	Status          string        `json:"status" example:"PUBLISHED"`
	Phase           string        `json:"phase" example:"voting"`
	MaxParticipants int           `json:"maxParticipants,omitempty" example:"10"`
	Poll            *PollResponse `json:"poll,omitempty"`
	CreatedAt       time.Time     `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt       time.Time     `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
}
