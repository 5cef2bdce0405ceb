package models

import (
	"time"
)

// SkillCategory is the closed set of categories a skill can be listed under.
type SkillCategory string

const (
	CategoryProgramming SkillCategory = "Programming"
	CategoryDesign      SkillCategory = "Design"
	CategoryPhotography SkillCategory = "Photography"
	CategoryMusic       SkillCategory = "Music"
	CategoryLanguages   SkillCategory = "Languages"
	CategoryWriting     SkillCategory = "Writing"
	CategoryMarketing   SkillCategory = "Marketing"
	CategoryTeaching    SkillCategory = "Teaching"
	CategoryBusiness    SkillCategory = "Business"
	CategoryOther       SkillCategory = "Other"
)

// SkillCategories lists every valid category, in display order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		CategoryProgramming,
		CategoryDesign,
		CategoryPhotography,
		CategoryMusic,
		CategoryLanguages,
		CategoryWriting,
		CategoryMarketing,
		CategoryTeaching,
		CategoryBusiness,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the known values.
func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// ProficiencyLevel represents how skilled the owner claims to be.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "Advanced"
	ProficiencyExpert       ProficiencyLevel = "Expert"
)

// Valid reports whether the proficiency level is one of the known values.
func (p ProficiencyLevel) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// Skill is a teachable skill listed by a user.
type Skill struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      uint             `gorm:"not null;index" json:"user_id"`
	Name        string           `gorm:"not null" json:"name"`
	Category    SkillCategory    `gorm:"type:varchar(50);not null" json:"category"`
	Proficiency ProficiencyLevel `gorm:"type:varchar(20);not null" json:"proficiency"`
	Description string           `gorm:"type:text" json:"description"`
	CreatedAt   time.Time        `json:"created_at"`

	Owner User `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}

// TableName specifies the table name for GORM
func (Skill) TableName() string {
	return "skills"
}

// SkillSearchResult is a search hit joined with owner display info.
type SkillSearchResult struct {
	SkillID     uint             `json:"skill_id"`
	Name        string           `json:"name"`
	Category    SkillCategory    `json:"category"`
	Proficiency ProficiencyLevel `json:"proficiency"`
	Description string           `json:"description"`
	OwnerID     uint             `json:"owner_id"`
	OwnerName   string           `json:"owner_name"`
	OwnerEmail  string           `json:"owner_email"`
	OwnerRating float64          `json:"owner_rating"`
}
