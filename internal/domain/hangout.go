package domain

import (
	"time"

	"github.com/google/uuid"
)

// HangoutStatus represents the lifecycle status of a hangout
type HangoutStatus string

const (
	HangoutStatusDraft     HangoutStatus = "DRAFT"
	HangoutStatusPublished HangoutStatus = "PUBLISHED"
	HangoutStatusActive    HangoutStatus = "ACTIVE"
	HangoutStatusCompleted HangoutStatus = "COMPLETED"
	HangoutStatusCancelled HangoutStatus = "CANCELLED"
)

// PrivacyLevel represents who can see and join a hangout
type PrivacyLevel string

const (
	PrivacyPublic  PrivacyLevel = "PUBLIC"
	PrivacyFriends PrivacyLevel = "FRIENDS"
	PrivacyPrivate PrivacyLevel = "PRIVATE"
)

// Hangout represents a user-organized group plan with a time window,
// location and participant set. Hangouts are never hard-deleted during
// the consensus flow; lifecycle changes go through the status field.
type Hangout struct {
	BaseModel
	CreatorID       uuid.UUID     `gorm:"type:uuid;not null;index:idx_hangouts_creator_id" json:"creator_id"`
	Title           string        `gorm:"type:varchar(255);not null" json:"title"`
	Description     string        `gorm:"type:text" json:"description"`
	Location        string        `gorm:"type:varchar(255)" json:"location"`
	StartTime       *time.Time    `gorm:"type:timestamp;index:idx_hangouts_start_time" json:"start_time"`
	EndTime         *time.Time    `gorm:"type:timestamp;index:idx_hangouts_end_time" json:"end_time"`
	Privacy         PrivacyLevel  `gorm:"type:varchar(20);not null;default:'PRIVATE'" json:"privacy"`
	Status          HangoutStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_hangouts_status" json:"status"`
	MaxParticipants int           `gorm:"default:0" json:"max_participants"`
	Participants    []Participant `gorm:"foreignKey:HangoutID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Polls           []Poll        `gorm:"foreignKey:HangoutID;constraint:OnDelete:CASCADE" json:"polls,omitempty"`
}

// TableName specifies the table name for Hangout
func (Hangout) TableName() string {
	return "hangouts"
}
