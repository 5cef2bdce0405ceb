package models

import (
	"time"
)

// Message is a chat message inside an exchange. Attachments travel
// inline as a base64 payload next to the message body.
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ExchangeID     uint      `gorm:"not null;index" json:"exchange_id"`
	SenderID       uint      `gorm:"not null" json:"sender_id"`
	RecipientID    uint      `gorm:"not null;index" json:"recipient_id"`
	Body           string    `gorm:"column:message;type:text" json:"message"`
	IsRead         bool      `gorm:"default:false" json:"is_read"`
	AttachmentName string    `json:"attachment_name,omitempty"`
	AttachmentData string    `gorm:"type:text" json:"attachment_data,omitempty"`
	AttachmentType string    `json:"attachment_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	Exchange  Exchange `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
	Sender    User     `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Recipient User     `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// HasAttachment reports whether the message carries an inline attachment.
func (m *Message) HasAttachment() bool {
	return m.AttachmentData != ""
}

// MessageView is a message joined with the sender's display name.
type MessageView struct {
	ID             uint      `json:"id"`
	ExchangeID     uint      `json:"exchange_id"`
	SenderID       uint      `json:"sender_id"`
	RecipientID    uint      `json:"recipient_id"`
	Body           string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	AttachmentName string    `json:"attachment_name,omitempty"`
	AttachmentData string    `json:"attachment_data,omitempty"`
	AttachmentType string    `json:"attachment_type,omitempty"`
	SenderName     string    `json:"sender_name"`
	CreatedAt      time.Time `json:"created_at"`
}
