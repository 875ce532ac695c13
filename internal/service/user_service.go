package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"
)

const (
	maxUsernameLen = 50
	maxPictureLen  = 2048
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Username string
	Picture  string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser registers a new user. The username unique index backs up the
// pre-check, so a concurrent duplicate registration still fails cleanly.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, models.NewValidationError("username is required")
	}
	if len(username) > maxUsernameLen {
		return nil, models.NewValidationError("username too long (max 50 characters)")
	}
	if len(in.Picture) > maxPictureLen {
		return nil, models.NewValidationError("picture URL too long")
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, models.NewValidationError("username already taken")
	}

	user := &models.User{
		Username: username,
		Picture:  in.Picture,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, limit, offset)
}
