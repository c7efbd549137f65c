package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a feed entry. Name and Avatar are denormalized copies of the
// author's user record taken at creation time; they are not kept in sync if
// the user later changes.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"not null" json:"text"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Likes     []Like         `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments  []Comment      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time      `json:"date"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like is a presence marker: at most one per user per post. There is no
// stored counter; cardinality is the length of a post's likes list.
// Likes are hard-deleted so the unique index never blocks a re-like.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Comment is a sub-entry on a post, carrying the same denormalized author
// name/avatar convention as Post.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"not null" json:"text"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	UserID    uint           `gorm:"not null;index" json:"user"`
	PostID    uint           `gorm:"not null;index" json:"-"`
	CreatedAt time.Time      `json:"date"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
