package domain

import "github.com/google/uuid"

// Vote is a single ledger row: one user backing one option of one poll.
// A user may hold votes for multiple options at the same time
// (multi-select voting); casting a vote for an option the user already
// voted for removes it (toggle semantics). At most one vote per user per
// poll carries the preferred flag.
type Vote struct {
	BaseModel
	PollID    uuid.UUID `gorm:"type:uuid;not null;index:idx_votes_poll_id;uniqueIndex:uq_votes_poll_user_option" json:"poll_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_votes_user_id;uniqueIndex:uq_votes_poll_user_option" json:"user_id"`
	OptionID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_votes_poll_user_option" json:"option_id"`
	Preferred bool      `gorm:"not null;default:false" json:"preferred"`
	Poll      Poll      `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"poll,omitempty"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
