package models

import (
	"time"
)

// Follow is a directed edge between two users: the follower follows the
// followed. The ordered pair forms the edge identity, so the same edge cannot
// exist twice, while A→B and B→A are distinct edges.
type Follow struct {
	UserBeingFollowedID uint      `gorm:"primaryKey;autoIncrement:false" json:"user_being_followed_id"`
	UserFollowingID     uint      `gorm:"primaryKey;autoIncrement:false" json:"user_following_id"`
	CreatedAt           time.Time `json:"created_at"`

	// Relationships
	Followed User `gorm:"foreignKey:UserBeingFollowedID;constraint:OnDelete:CASCADE" json:"followed,omitempty"`
	Follower User `gorm:"foreignKey:UserFollowingID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
