package models

import (
	"time"

	"gorm.io/gorm"
)

// SocialLinks is the embedded social sub-record of a profile. Every field is
// optional and merged field-by-field on each profile submission.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile holds the public developer profile of a user. There is at most one
// profile per user, enforced by the unique index on UserID.
type Profile struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User       User           `gorm:"foreignKey:UserID" json:"user"`
	Company    string         `json:"company,omitempty"`
	Website    string         `json:"website,omitempty"`
	Location   string         `json:"location,omitempty"`
	Bio        string         `json:"bio,omitempty"`
	Status     string         `gorm:"not null" json:"status"`
	GithubUser string         `json:"github_user,omitempty"`
	Skills     []string       `gorm:"serializer:json" json:"skills"`
	Social     SocialLinks    `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience []Experience   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education  []Education    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Experience is a work history entry on a profile. Entries are returned
// newest-first; the From/To fields are free-form date strings supplied by the
// client and are not validated against each other.
type Experience struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Company     string    `gorm:"not null" json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `gorm:"not null" json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Education is a schooling entry on a profile, analogous to Experience.
type Education struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"not null;index" json:"-"`
	School       string    `gorm:"not null" json:"school"`
	Degree       string    `gorm:"not null" json:"degree"`
	FieldOfStudy string    `gorm:"not null" json:"field_of_study"`
	From         string    `gorm:"not null" json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
