// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Default profile images used when a user signs up without providing one.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents an account in the Warbler application.
// Username and Email are globally unique; Password always holds a bcrypt
// digest, never plaintext.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Messages are hard-deleted together with their owner.
	Messages []Message `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`

	// FollowingCount/FollowersCount are not persisted; computed at query time
	FollowingCount int `gorm:"-" json:"following_count"`
	FollowersCount int `gorm:"-" json:"followers_count"`
}
