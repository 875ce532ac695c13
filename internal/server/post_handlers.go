package server

import (
	"github.com/gofiber/fiber/v2"

	"agora/internal/models"
	"agora/internal/notifications"
	"agora/internal/service"
)

// CreatePost handles POST /api/v1/posts
// @Summary Create post
// @Description Create a post in one of the fixed communities
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{topic=string,content=string,community=string} true "Post payload"
// @Success 201 {object} object{message=string,data=models.Post}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /v1/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Topic     string `json:"topic"`
		Content   string `json:"content"`
		Community string `json:"community"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:    userID,
		Topic:     req.Topic,
		Content:   req.Content,
		Community: models.Community(req.Community),
	})
	if err != nil {
		return respondError(c, err)
	}

	s.broadcastFeedEvent(c, notifications.FeedEvent{
		Type:      notifications.EventPostCreated,
		PostID:    post.ID,
		Community: string(post.Community),
		Topic:     post.Topic,
	})

	return respondData(c, fiber.StatusCreated, "Create post successfully", post)
}

// GetPosts handles GET /api/v1/posts
// @Summary List posts
// @Description One page of posts with authors and comment counts
// @Tags posts
// @Produce json
// @Param page query int true "Page number, starting at 1"
// @Param size query int true "Page size, 1 to 1000"
// @Param community query string false "Filter by community"
// @Param topic query string false "Filter by topic substring"
// @Param isOwner query bool false "Restrict to the caller's own posts (requires auth)"
// @Success 200 {object} object{message=string,data=models.PostPage}
// @Failure 400 {object} models.ErrorResponse
// @Router /v1/posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	in := service.ListPostsInput{
		Page:      c.QueryInt("page", 1),
		Size:      c.QueryInt("size", 10),
		Community: models.Community(c.Query("community")),
		Topic:     c.Query("topic"),
	}

	if c.QueryBool("isOwner", false) {
		userID, ok := s.optionalUserID(c)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}
		in.UserID = userID
	}

	page, err := s.postService.ListPosts(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Get posts successfully", page)
}

// GetPost handles GET /api/v1/posts/:id
// @Summary Post detail
// @Description A post with its author and full comment thread
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string,data=models.Post}
// @Failure 404 {object} models.ErrorResponse
// @Router /v1/posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPostDetail(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Get post successfully", post)
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Update post
// @Description Overwrite a post's topic, content and community
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{topic=string,content=string,community=string} true "Post payload"
// @Success 200 {object} object{message=string,data=models.Post}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /v1/posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Topic     string `json:"topic"`
		Content   string `json:"content"`
		Community string `json:"community"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:    userID,
		PostID:    postID,
		Topic:     req.Topic,
		Content:   req.Content,
		Community: models.Community(req.Community),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Update post successfully", post)
}

// DeletePost handles DELETE /api/v1/posts/:id
// @Summary Delete post
// @Description Delete a post and its comment thread
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /v1/posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), postID, userID); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Delete post successfully")
}
