package domain

import (
	"time"

	"github.com/google/uuid"
)

// RSVPStatus represents a participant's attendance response
type RSVPStatus string

const (
	RSVPStatusPending RSVPStatus = "PENDING"
	RSVPStatusYes     RSVPStatus = "YES"
	RSVPStatusNo      RSVPStatus = "NO"
	RSVPStatusMaybe   RSVPStatus = "MAYBE"
)

// RSVP holds a participant's attendance intent for a finalized hangout.
// Rows are bulk-created with status PENDING for all current participants
// at the moment consensus is reached.
type RSVP struct {
	BaseModel
	HangoutID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_rsvps_hangout_id;uniqueIndex:uq_rsvps_hangout_user" json:"hangout_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_rsvps_user_id;uniqueIndex:uq_rsvps_hangout_user" json:"user_id"`
	Status      RSVPStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	RespondedAt *time.Time `gorm:"type:timestamp" json:"responded_at"`
	Hangout     Hangout    `gorm:"foreignKey:HangoutID;constraint:OnDelete:CASCADE" json:"hangout,omitempty"`
}

// TableName specifies the table name for RSVP
func (RSVP) TableName() string {
	return "rsvps"
}
