// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"agora/internal/models"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxComments int
	ShouldClean bool
}

// Run populates the database with demo users, posts and comments spread
// across every community.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 100
	}
	if opts.MaxComments <= 0 {
		opts.MaxComments = 8
	}

	if opts.ShouldClean {
		log.Println("Cleaning existing data...")
		for _, table := range []string{"comments", "posts", "users"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("cleaning %s: %w", table, err)
			}
		}
	}

	f := NewFactory(db)

	log.Printf("Seeding %d users...", opts.NumUsers)
	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}

	log.Printf("Seeding %d posts...", opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[i%len(users)]
		post, err := f.CreatePost(author)
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}

		for c := 0; c < f.rng.Intn(opts.MaxComments+1); c++ {
			commenter := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
		}
	}

	log.Println("Seeding complete")
	return nil
}
