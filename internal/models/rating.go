package models

import (
	"time"
)

// Rating bounds. Values outside [RatingMin, RatingMax] are rejected.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating is a 1-5 star review of a counterpart after a completed
// exchange. The unique index enforces "rate once per exchange".
type Rating struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ExchangeID  uint      `gorm:"not null;uniqueIndex:idx_exchange_rater" json:"exchange_id"`
	RaterID     uint      `gorm:"not null;uniqueIndex:idx_exchange_rater" json:"rater_id"`
	RatedUserID uint      `gorm:"not null;index" json:"rated_user_id"`
	Value       int       `gorm:"column:rating;not null" json:"rating"`
	Review      string    `gorm:"type:text" json:"review,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Exchange  Exchange `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
	Rater     User     `gorm:"foreignKey:RaterID;constraint:OnDelete:CASCADE" json:"-"`
	RatedUser User     `gorm:"foreignKey:RatedUserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}
