package dto

import (
	"time"

	"github.com/google/uuid"
)

// RespondRSVPRequest represents an attendance response
// @Description Attendance response for a confirmed hangout
type RespondRSVPRequest struct {
	Status string `json:"status" binding:"required,oneof=YES NO MAYBE" example:"YES"`
}

// RSVPResponse represents an RSVP entry
// @Description A participant's attendance record. Status starts as PENDING
// @Description when consensus is reached and changes once the user responds.
type RSVPResponse struct {
	ID          uuid.UUID  `json:"id" example:"e5f6a7b8-c9d0-1234-ef12-345678901234"`
	HangoutID   uuid.UUID  `json:"hangoutId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	UserID      uuid.UUID  `json:"userId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Status      string     `json:"status" example:"PENDING"`
	RespondedAt *time.Time `json:"respondedAt,omitempty" example:"2024-01-16T09:00:00Z"`
	CreatedAt   time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}
