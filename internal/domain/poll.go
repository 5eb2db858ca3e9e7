package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PollStatus represents the lifecycle status of a poll
type PollStatus string

const (
	PollStatusActive           PollStatus = "ACTIVE"
	PollStatusConsensusReached PollStatus = "CONSENSUS_REACHED"
	PollStatusClosed           PollStatus = "CLOSED"
)

// PollOption is one candidate plan (location/time/price bundle) within a poll.
// Options are stored as an ordered JSON list on the poll; their content is
// immutable once voting starts. When consensus is reached the list is
// overwritten with a single-element list holding only the winning option,
// which serves as a durable snapshot.
type PollOption struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	Price       float64    `json:"price,omitempty"`
}

// Poll is the voting mechanism attached to a hangout. The current design
// supports one poll per hangout (the first poll found).
type Poll struct {
	BaseModel
	HangoutID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_polls_hangout_id" json:"hangout_id"`
	CreatorID       uuid.UUID      `gorm:"type:uuid;not null" json:"creator_id"`
	Status          PollStatus     `gorm:"type:varchar(30);not null;default:'ACTIVE';index:idx_polls_status" json:"status"`
	Threshold       int            `gorm:"not null;default:70" json:"threshold"`
	MinParticipants int            `gorm:"not null;default:2" json:"min_participants"`
	Options         datatypes.JSON `gorm:"type:jsonb" json:"options"`
	Hangout         Hangout        `gorm:"foreignKey:HangoutID;constraint:OnDelete:CASCADE" json:"hangout,omitempty"`
	Votes           []Vote         `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"votes,omitempty"`
}

// TableName specifies the table name for Poll
func (Poll) TableName() string {
	return "polls"
}

// DecodeOptions deserializes the stored option list in its original order.
func (p *Poll) DecodeOptions() ([]PollOption, error) {
	if len(p.Options) == 0 {
		return []PollOption{}, nil
	}
	var options []PollOption
	if err := json.Unmarshal(p.Options, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// EncodeOptions serializes an option list for storage.
func EncodeOptions(options []PollOption) (datatypes.JSON, error) {
	data, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
