package domain

import "github.com/google/uuid"

// ParticipantRole represents the role of a hangout participant
type ParticipantRole string

const (
	ParticipantRoleCreator ParticipantRole = "CREATOR"
	ParticipantRoleMember  ParticipantRole = "MEMBER"
)

// Participant links a user to a hangout. Rows are created on invitation,
// or automatically when a user votes on a hangout they were not yet a
// member of. Participants are never deleted by the consensus flow.
type Participant struct {
	BaseModel
	HangoutID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_participants_hangout_id;uniqueIndex:uq_participants_hangout_user" json:"hangout_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_participants_user_id;uniqueIndex:uq_participants_hangout_user" json:"user_id"`
	Role        ParticipantRole `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	IsCoHost    bool            `gorm:"not null;default:false" json:"is_co_host"`
	CanEdit     bool            `gorm:"not null;default:false" json:"can_edit"`
	IsMandatory bool            `gorm:"not null;default:false" json:"is_mandatory"`
	Hangout     Hangout         `gorm:"foreignKey:HangoutID;constraint:OnDelete:CASCADE" json:"hangout,omitempty"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// CanManage reports whether the participant may mutate the hangout itself.
func (p *Participant) CanManage() bool {
	return p.Role == ParticipantRoleCreator || p.IsCoHost || p.CanEdit
}
