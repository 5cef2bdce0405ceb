// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultRating is the rating assigned to users before they receive any ratings.
const DefaultRating = 5.0

// User represents a member of the campus skill exchange.
//
// Deleting a user is a hard cascade delete: owned skills, exchanges,
// messages, and ratings are removed through foreign-key constraints,
// not soft-deleted.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	FullName       string    `gorm:"not null" json:"full_name"`
	Bio            string    `json:"bio"`
	ProfileImage   string    `gorm:"type:text" json:"profile_image,omitempty"`
	Rating         float64   `gorm:"default:5.0" json:"rating"`
	TotalExchanges int       `gorm:"default:0" json:"total_exchanges"`
	LinkedinURL    string    `json:"linkedin_url,omitempty"`
	GithubURL      string    `json:"github_url,omitempty"`
	TwitterURL     string    `json:"twitter_url,omitempty"`
	PortfolioURL   string    `json:"portfolio_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Skills []Skill `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
}

// UserProfile is the extended profile view returned to clients,
// including how many ratings the average is based on.
type UserProfile struct {
	User
	RatingCount int64 `json:"rating_count"`
}

// SocialLinks groups the optional external profile URLs.
type SocialLinks struct {
	LinkedinURL  string `json:"linkedin_url"`
	GithubURL    string `json:"github_url"`
	TwitterURL   string `json:"twitter_url"`
	PortfolioURL string `json:"portfolio_url"`
}
