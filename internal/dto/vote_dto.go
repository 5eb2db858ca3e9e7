package dto

import (
	"github.com/google/uuid"
)

// Vote actions accepted by the cast-vote endpoint
const (
	VoteActionAdd       = "add"
	VoteActionRemove    = "remove"
	VoteActionToggle    = "toggle"
	VoteActionPreferred = "preferred"
)

// CastVoteRequest represents a vote operation on a poll option
// @Description Vote operation. "add" records approval (idempotent),
// @Description "remove" withdraws it, "toggle" flips it, and "preferred"
// @Description marks the option as the voter's single preferred choice.
type CastVoteRequest struct {
	OptionID uuid.UUID `json:"optionId" binding:"required" example:"c3d4e5f6-a7b8-9012-cdef-123456789012"`
	Action   string    `json:"action" binding:"required,oneof=add remove toggle preferred" example:"add"`
}

// VoteResponse represents the outcome of a vote operation
// @Description Outcome of a vote operation. When the vote pushed an option
// @Description over the consensus threshold, finalized is true and winner
// @Description holds the confirmed plan.
type VoteResponse struct {
	PollID    uuid.UUID           `json:"pollId" example:"d4e5f6a7-b8c9-0123-def1-234567890123"`
	OptionID  uuid.UUID           `json:"optionId" example:"c3d4e5f6-a7b8-9012-cdef-123456789012"`
	Action    string              `json:"action" example:"add"`
	VoteCast  bool                `json:"voteCast" example:"true"`
	Finalized bool                `json:"finalized" example:"false"`
	Winner    *PollOptionResponse `json:"winner,omitempty"`
	Phase     string              `json:"phase" example:"voting"`
}
