package models

import "time"

// Post is a piece of content published into a community board.
// UserID identifies the owner and is immutable after creation.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Topic     string    `gorm:"not null" json:"topic"`
	Content   string    `gorm:"not null" json:"content"`
	Community Community `gorm:"not null;index" json:"community"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	// Author is resolved at read time; it is not a stored relationship.
	Author *User `gorm:"-" json:"user,omitempty"`
	// CommentCount is not persisted; computed at query time.
	CommentCount int64 `gorm:"-" json:"comment_count"`
	// Comments is populated on the detail view only, newest first.
	Comments  []*Comment `gorm:"-" json:"comments,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// OwnerID returns the identity that may mutate this post.
func (p *Post) OwnerID() uint { return p.UserID }

// PostPage is one page of enriched posts plus pagination totals computed
// over the entire filtered set, not just this page.
type PostPage struct {
	Items      []*Post `json:"posts"`
	TotalItems int64   `json:"total_item"`
	TotalPages int     `json:"total_page"`
}
