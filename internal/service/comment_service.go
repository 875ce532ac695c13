package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"
)

const maxMessageLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Message string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Message   string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return models.NewValidationError("message is required")
	}
	if len(message) > maxMessageLen {
		return models.NewValidationError("message too long (max 10000 characters)")
	}
	return nil
}

// CreateComment adds a comment to an existing post. The post lookup is a
// plain existence check, not an ownership check: anyone may comment.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validateMessage(in.Message); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Message: in.Message,
		PostID:  in.PostID,
		UserID:  in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := validateMessage(in.Message); err != nil {
		return nil, err
	}

	comment, err := fetchOwned("Comment", in.CommentID, in.UserID, func() (*models.Comment, error) {
		return s.commentRepo.GetByID(ctx, in.CommentID)
	})
	if err != nil {
		return nil, err
	}

	comment.Message = in.Message
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID, actingID uint) error {
	_, err := fetchOwned("Comment", commentID, actingID, func() (*models.Comment, error) {
		return s.commentRepo.GetByID(ctx, commentID)
	})
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}
