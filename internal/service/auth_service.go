package service

import (
	"context"
	"errors"

	"agora/internal/models"
	"agora/internal/repository"
	"agora/internal/token"
)

type AuthService struct {
	userRepo repository.UserRepository
	codec    *token.Codec
}

func NewAuthService(userRepo repository.UserRepository, codec *token.Codec) *AuthService {
	return &AuthService{userRepo: userRepo, codec: codec}
}

// Login issues a token for an existing username. Unknown usernames fail with
// an unauthorized error rather than not-found, so login responses do not
// double as a username directory.
func (s *AuthService) Login(ctx context.Context, username string) (string, *models.User, error) {
	if username == "" {
		return "", nil, models.NewValidationError("username is required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return "", nil, models.NewUnauthorizedError("invalid credentials")
		}
		return "", nil, err
	}

	signed, err := s.codec.Sign(user.ID, user.Username)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}
	return signed, user, nil
}

// GetMe resolves the caller's profile from a raw bearer token. The subject
// claim is the user ID; the store stays authoritative for the profile
// itself.
func (s *AuthService) GetMe(ctx context.Context, raw string) (*models.User, error) {
	claims, err := s.codec.Decode(raw)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.SubjectID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewUnauthorizedError("token subject no longer exists")
		}
		return nil, err
	}
	return user, nil
}
