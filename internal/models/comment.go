package models

import "time"

// Comment is a reply attached to a post. PostID is validated at creation
// time only; UserID identifies the owner and is immutable after creation.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Message string `gorm:"not null" json:"message"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	// Author is resolved at read time; it is not a stored relationship.
	Author    *User     `gorm:"-" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the identity that may mutate this comment.
func (c *Comment) OwnerID() uint { return c.UserID }
