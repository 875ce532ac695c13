// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered identity. Usernames are unique and immutable
// after registration; users are never deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
