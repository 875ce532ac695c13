package repository

import (
	"context"
	"errors"

	"agora/internal/cache"
	"agora/internal/models"
	"agora/internal/observability"

	"gorm.io/gorm"
)

// PostFilter narrows a post listing. Zero values mean no filtering.
type PostFilter struct {
	Community models.Community
	Topic     string
	UserID    uint
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]*models.Post, int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	done := observability.TrackQuery("create", "posts")
	defer done()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return cache.Aside(ctx, cache.PostKey(id), cache.PostTTL, func() (*models.Post, error) {
		done := observability.TrackQuery("get", "posts")
		defer done()

		var post models.Post
		if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Post", id)
			}
			return nil, models.NewInternalError(err)
		}
		return &post, nil
	})
}

// postPage bundles a cached page of posts with its total.
type postPage struct {
	Posts []*models.Post `json:"posts"`
	Total int64          `json:"total"`
}

// List returns one page of posts, newest first, together with the total
// number of posts matching the filter. The count and the page run against
// the same WHERE clause so the totals stay consistent with the items.
// The unfiltered first page is served cache-aside.
func (r *postRepository) List(ctx context.Context, filter PostFilter, limit, offset int) ([]*models.Post, int64, error) {
	if filter == (PostFilter{}) && offset == 0 {
		page, err := cache.Aside(ctx, cache.PostsFirstPageKey(limit), cache.PostListTTL,
			func() (postPage, error) {
				posts, total, err := r.list(ctx, filter, limit, offset)
				return postPage{Posts: posts, Total: total}, err
			})
		return page.Posts, page.Total, err
	}
	return r.list(ctx, filter, limit, offset)
}

func (r *postRepository) list(ctx context.Context, filter PostFilter, limit, offset int) ([]*models.Post, int64, error) {
	done := observability.TrackQuery("list", "posts")
	defer done()

	base := r.db.WithContext(ctx).Model(&models.Post{})
	if filter.Community != "" {
		base = base.Where("community = ?", filter.Community)
	}
	if filter.Topic != "" {
		base = base.Where("topic LIKE ?", "%"+filter.Topic+"%")
	}
	if filter.UserID != 0 {
		base = base.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []*models.Post
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	done := observability.TrackQuery("update", "posts")
	defer done()

	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// Delete removes the post and all of its comments in one transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	done := observability.TrackQuery("delete", "posts")
	defer done()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}
