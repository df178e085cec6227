package models

import (
	"time"
)

// MaxMessageLength is the upper bound on message text, matching the column size.
const MaxMessageLength = 140

// Message is a short text post owned by exactly one user.
// The user_id foreign key is enforced by the store: inserting a message with a
// missing or nonexistent owner fails at commit with a constraint violation.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"not null;size:140" json:"text"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this message (computed)
	Liked bool `gorm:"->" json:"liked"`
}
