package models

import (
	"time"
)

// ExchangeStatus represents the lifecycle state of an exchange.
type ExchangeStatus string

const (
	// ExchangeStatusPending indicates a proposal awaiting the recipient's decision.
	ExchangeStatusPending ExchangeStatus = "pending"
	// ExchangeStatusAccepted indicates an agreed swap that has not finished yet.
	ExchangeStatusAccepted ExchangeStatus = "accepted"
	// ExchangeStatusRejected indicates a declined proposal. Terminal.
	ExchangeStatusRejected ExchangeStatus = "rejected"
	// ExchangeStatusCompleted indicates a finished swap. Terminal.
	ExchangeStatusCompleted ExchangeStatus = "completed"
)

// SkillDeletedPlaceholder is shown in exchange history when a referenced
// skill row has been hard-deleted.
const SkillDeletedPlaceholder = "[Skill deleted]"

// Exchange models both a 1:1 skill swap proposal and a group exchange.
// For group exchanges RecipientID is nil and the roster lives in
// ExchangeParticipant rows.
type Exchange struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	InitiatorID      uint           `gorm:"not null;index" json:"initiator_id"`
	RecipientID      *uint          `gorm:"index" json:"recipient_id,omitempty"`
	InitiatorSkillID *uint          `json:"initiator_skill_id,omitempty"`
	RecipientSkillID *uint          `json:"recipient_skill_id,omitempty"`
	Status           ExchangeStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsGroup          bool           `gorm:"default:false" json:"is_group"`
	Title            string         `json:"title,omitempty"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	MaxParticipants  int            `gorm:"default:0" json:"max_participants,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`

	Initiator User `gorm:"foreignKey:InitiatorID;constraint:OnDelete:CASCADE" json:"initiator,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
	// Skill references degrade to SkillDeletedPlaceholder on deletion
	// instead of blocking it.
	InitiatorSkill *Skill `gorm:"foreignKey:InitiatorSkillID;constraint:OnDelete:SET NULL" json:"initiator_skill,omitempty"`
	RecipientSkill *Skill `gorm:"foreignKey:RecipientSkillID;constraint:OnDelete:SET NULL" json:"recipient_skill,omitempty"`
}

// TableName specifies the table name for GORM
func (Exchange) TableName() string {
	return "exchanges"
}

// IsParticipant reports whether the user is the initiator or recipient
// of a 1:1 exchange.
func (e *Exchange) IsParticipant(userID uint) bool {
	if e.InitiatorID == userID {
		return true
	}
	return e.RecipientID != nil && *e.RecipientID == userID
}

// ParticipantStatus represents a group-exchange member's standing.
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
	ParticipantStatusRejected ParticipantStatus = "rejected"
)

// ParticipantRole distinguishes roster members from the initiator.
type ParticipantRole string

const (
	RoleParticipant ParticipantRole = "participant"
)

// ExchangeParticipant is a roster entry for a group exchange,
// unique per (exchange, user).
type ExchangeParticipant struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	ExchangeID uint              `gorm:"not null;uniqueIndex:idx_exchange_user" json:"exchange_id"`
	UserID     uint              `gorm:"not null;uniqueIndex:idx_exchange_user" json:"user_id"`
	SkillID    *uint             `json:"skill_id,omitempty"`
	Role       ParticipantRole   `gorm:"type:varchar(20);default:'participant'" json:"role"`
	Status     ParticipantStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	JoinedAt   time.Time         `gorm:"autoCreateTime" json:"joined_at"`

	Exchange Exchange `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
	User     User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Skill    *Skill   `gorm:"foreignKey:SkillID;constraint:OnDelete:SET NULL" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (ExchangeParticipant) TableName() string {
	return "exchange_participants"
}

// ExchangeView is a 1:1 exchange row joined with display names; skill
// names fall back to SkillDeletedPlaceholder when the skill is gone.
type ExchangeView struct {
	ID                 uint           `json:"id"`
	InitiatorID        uint           `json:"initiator_id"`
	RecipientID        uint           `json:"recipient_id"`
	Status             ExchangeStatus `json:"status"`
	InitiatorName      string         `json:"initiator_name"`
	RecipientName      string         `json:"recipient_name"`
	InitiatorSkillName string         `json:"initiator_skill"`
	RecipientSkillName string         `json:"recipient_skill"`
	CreatedAt          time.Time      `json:"created_at"`
	CompletedAt        *time.Time     `json:"completed_at,omitempty"`
}

// GroupExchangeView is a group exchange summary with roster size.
// CurrentParticipants counts roster entries plus the initiator.
type GroupExchangeView struct {
	ID                  uint           `json:"id"`
	InitiatorID         uint           `json:"initiator_id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Status              ExchangeStatus `json:"status"`
	MaxParticipants     int            `json:"max_participants"`
	InitiatorName       string         `json:"initiator_name"`
	InitiatorSkillName  string         `json:"initiator_skill"`
	CurrentParticipants int            `json:"current_participants"`
	UserParticipating   bool           `json:"user_participating"`
	CreatedAt           time.Time      `json:"created_at"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
}

// ParticipantView is a roster entry joined with user and skill display info.
type ParticipantView struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"user_id"`
	SkillID   *uint             `json:"skill_id,omitempty"`
	Role      ParticipantRole   `json:"role"`
	Status    ParticipantStatus `json:"status"`
	FullName  string            `json:"full_name"`
	Email     string            `json:"email"`
	SkillName string            `json:"skill_name"`
	Category  SkillCategory     `json:"category"`
	JoinedAt  time.Time         `json:"joined_at"`
}
