package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"agora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser() *models.User {
	username := strings.ToLower(gofakeit.Username())
	// gofakeit occasionally repeats usernames; a numeric suffix keeps the
	// unique index happy.
	username = fmt.Sprintf("%s_%d", username, f.rng.Intn(100000))
	return &models.User{
		Username: username,
		Picture:  gofakeit.ImageURL(128, 128),
	}
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser() (*models.User, error) {
	user := f.BuildUser()
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the given author without persisting it.
// Created timestamps are spread over the last 90 days so lists look lived-in.
func (f *Factory) BuildPost(author *models.User) *models.Post {
	community := models.Communities[f.rng.Intn(len(models.Communities))]
	createdAt := time.Now().Add(-time.Duration(f.rng.Intn(90*24)) * time.Hour)
	return &models.Post{
		Topic:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		Community: community,
		UserID:    author.ID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// CreatePost persists a generated post.
func (f *Factory) CreatePost(author *models.User) (*models.Post, error) {
	post := f.BuildPost(author)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// BuildComment constructs a comment on the given post without persisting it.
func (f *Factory) BuildComment(author *models.User, post *models.Post) *models.Comment {
	// Comments land after the post they reply to.
	offset := time.Duration(f.rng.Intn(72)+1) * time.Hour
	createdAt := post.CreatedAt.Add(offset)
	if createdAt.After(time.Now()) {
		createdAt = time.Now()
	}
	return &models.Comment{
		Message:   gofakeit.Sentence(8),
		PostID:    post.ID,
		UserID:    author.ID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// CreateComment persists a generated comment.
func (f *Factory) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := f.BuildComment(author, post)
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
