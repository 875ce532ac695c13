package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache TTLs. Post pages churn faster than individual posts.
const (
	PostTTL     = 5 * time.Minute
	PostListTTL = 30 * time.Second
	UserTTL     = 10 * time.Minute
)

// PostKey returns the cache key for a single post by ID.
func PostKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

// PostsFirstPageKey returns the cache key for the unfiltered first page of
// posts at the given page size. Filtered or deeper pages are not cached.
func PostsFirstPageKey(size int) string {
	return fmt.Sprintf("posts:page:1:size:%d", size)
}

// UserKey returns the cache key for a user profile by ID.
func UserKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// InvalidatePost drops the cached post and all cached first pages. Called
// after any post or comment mutation touching the post.
func InvalidatePost(ctx context.Context, id uint) {
	if client == nil {
		return
	}
	keys := []string{PostKey(id)}
	iter := client.Scan(ctx, 0, "posts:page:1:size:*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	Delete(ctx, keys...)
}
