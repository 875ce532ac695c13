package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/pagination"
	"agora/internal/repository"
)

const (
	maxTopicLen   = 300
	maxContentLen = 50000
	maxPageSize   = 1000
)

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

type CreatePostInput struct {
	UserID    uint
	Topic     string
	Content   string
	Community models.Community
}

type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Topic     string
	Content   string
	Community models.Community
}

type ListPostsInput struct {
	Page      int
	Size      int
	Community models.Community
	Topic     string
	UserID    uint
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func validatePostFields(topic, content string, community models.Community) error {
	if strings.TrimSpace(topic) == "" {
		return models.NewValidationError("topic is required")
	}
	if len(topic) > maxTopicLen {
		return models.NewValidationError("topic too long (max 300 characters)")
	}
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("content too long (max 50000 characters)")
	}
	if !community.Valid() {
		return models.NewValidationError("community must be one of: History, Food, Pets, Health, Fashion, Exercise, Others")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Topic, in.Content, in.Community); err != nil {
		return nil, err
	}

	post := &models.Post{
		Topic:     in.Topic,
		Content:   in.Content,
		Community: in.Community,
		UserID:    in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns one page of posts with authors and comment counts
// attached. The repository supplies the raw page and the filtered total;
// authors and counts are batch-resolved here in two follow-up queries.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*models.PostPage, error) {
	if in.Page <= 0 {
		return nil, models.NewValidationError("page must be greater than 0")
	}
	if in.Size <= 0 || in.Size > maxPageSize {
		return nil, models.NewValidationError("size must be greater than 0 or less than 1001")
	}
	if in.Community != "" && !in.Community.Valid() {
		return nil, models.NewValidationError("community must be one of: History, Food, Pets, Health, Fashion, Exercise, Others")
	}

	filter := repository.PostFilter{
		Community: in.Community,
		Topic:     in.Topic,
		UserID:    in.UserID,
	}
	posts, total, err := s.postRepo.List(ctx, filter, in.Size, pagination.Offset(in.Page, in.Size))
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrichPosts(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &models.PostPage{
		Items:      enriched,
		TotalItems: total,
		TotalPages: pagination.TotalPages(in.Size, total),
	}, nil
}

// GetPostDetail returns a post with its author and full comment thread.
func (s *PostService) GetPostDetail(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	authors, err := s.userRepo.GetByIDs(ctx, []uint{post.UserID})
	if err != nil {
		return nil, err
	}
	author, ok := authors[post.UserID]
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	post.Author = author

	comments, err := s.commentRepo.ListByPostID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments, err = s.resolveCommentAuthors(ctx, comments)
	if err != nil {
		return nil, err
	}
	post.CommentCount = int64(len(post.Comments))
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Topic, in.Content, in.Community); err != nil {
		return nil, err
	}

	post, err := fetchOwned("Post", in.PostID, in.UserID, func() (*models.Post, error) {
		return s.postRepo.GetByID(ctx, in.PostID)
	})
	if err != nil {
		return nil, err
	}

	post.Topic = in.Topic
	post.Content = in.Content
	post.Community = in.Community
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and its comment thread. The comments go with
// the post inside the repository transaction.
func (s *PostService) DeletePost(ctx context.Context, postID, actingID uint) error {
	_, err := fetchOwned("Post", postID, actingID, func() (*models.Post, error) {
		return s.postRepo.GetByID(ctx, postID)
	})
	if err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, postID)
}

// enrichPosts attaches authors and comment counts to a page of posts. A post
// whose author row is missing is dropped from the page rather than returned
// half-joined.
func (s *PostService) enrichPosts(ctx context.Context, posts []*models.Post) ([]*models.Post, error) {
	if len(posts) == 0 {
		return []*models.Post{}, nil
	}

	userIDs := make([]uint, 0, len(posts))
	postIDs := make([]uint, 0, len(posts))
	seen := map[uint]struct{}{}
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if _, dup := seen[p.UserID]; !dup {
			seen[p.UserID] = struct{}{}
			userIDs = append(userIDs, p.UserID)
		}
	}

	authors, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	counts, err := s.commentRepo.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		author, ok := authors[p.UserID]
		if !ok {
			continue
		}
		p.Author = author
		p.CommentCount = counts[p.ID]
		enriched = append(enriched, p)
	}
	return enriched, nil
}

// resolveCommentAuthors attaches authors to comments, dropping comments
// whose author cannot be resolved.
func (s *PostService) resolveCommentAuthors(ctx context.Context, comments []*models.Comment) ([]*models.Comment, error) {
	if len(comments) == 0 {
		return []*models.Comment{}, nil
	}

	userIDs := make([]uint, 0, len(comments))
	seen := map[uint]struct{}{}
	for _, c := range comments {
		if _, dup := seen[c.UserID]; !dup {
			seen[c.UserID] = struct{}{}
			userIDs = append(userIDs, c.UserID)
		}
	}

	authors, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	resolved := make([]*models.Comment, 0, len(comments))
	for _, c := range comments {
		author, ok := authors[c.UserID]
		if !ok {
			continue
		}
		c.Author = author
		resolved = append(resolved, c)
	}
	return resolved, nil
}
