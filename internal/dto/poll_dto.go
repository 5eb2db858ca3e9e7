package dto

import (
	"time"

	"github.com/google/uuid"
)

// PollOptionRequest represents a proposed option when creating a hangout
// @Description A candidate plan for the hangout poll
type PollOptionRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200" example:"Bowling night"`
	Description string     `json:"description" binding:"max=2000" example:"Lanes booked from 7pm"`
	Location    string     `json:"location" binding:"max=500" example:"Strike Alley"`
	StartTime   *time.Time `json:"startTime" example:"2024-06-07T19:00:00Z"`
	Price       float64    `json:"price" binding:"omitempty,min=0" example:"15.50"`
}

// PollOptionResponse represents a poll option
// @Description A candidate plan with its identifier
type PollOptionResponse struct {
	ID          uuid.UUID  `json:"id" example:"c3d4e5f6-a7b8-9012-cdef-123456789012"`
	Title       string     `json:"title" example:"Bowling night"`
	Description string     `json:"description,omitempty" example:"Lanes booked from 7pm"`
	Location    string     `json:"location,omitempty" example:"Strike Alley"`
	StartTime   *time.Time `json:"startTime,omitempty" example:"2024-06-07T19:00:00Z"`
	Price       float64    `json:"price,omitempty" example:"15.50"`
}

// PollResponse represents the poll response
// @Description Poll details. After consensus the options array holds only the winner.
type PollResponse struct {
	ID              uuid.UUID            `json:"id" example:"d4e5f6a7-b8c9-0123-def1-234567890123"`
	HangoutID       uuid.UUID            `json:"hangoutId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	CreatorID       uuid.UUID            `json:"creatorId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Status          string               `json:"status" example:"ACTIVE"`
	Threshold       int                  `json:"threshold" example:"70"`
	MinParticipants int                  `json:"minParticipants" example:"2"`
	Options         []PollOptionResponse `json:"options"`
	CreatedAt       time.Time            `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// OptionTally represents the vote tally of one poll option
// @Description Vote count and approval percentage for an option
type OptionTally struct {
	OptionID   uuid.UUID   `json:"optionId" example:"c3d4e5f6-a7b8-9012-cdef-123456789012"`
	Title      string      `json:"title" example:"Bowling night"`
	Votes      int         `json:"votes" example:"3"`
	Percentage float64     `json:"percentage" example:"75"`
	VoterIDs   []uuid.UUID `json:"voterIds"`
}

// PollSummaryResponse represents the live tally of a poll
// @Description Per-option vote tallies plus the consensus parameters in effect
type PollSummaryResponse struct {
	PollID             uuid.UUID     `json:"pollId" example:"d4e5f6a7-b8c9-0123-def1-234567890123"`
	Status             string        `json:"status" example:"ACTIVE"`
	Threshold          int           `json:"threshold" example:"70"`
	MinParticipants    int           `json:"minParticipants" example:"2"`
	ActiveParticipants int           `json:"activeParticipants" example:"4"`
	Tallies            []OptionTally `json:"tallies"`
}
