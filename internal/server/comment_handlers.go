package server

import (
	"github.com/gofiber/fiber/v2"

	"agora/internal/models"
	"agora/internal/notifications"
	"agora/internal/service"
)

// CreateComment handles POST /api/v1/comments
// @Summary Create comment
// @Description Comment on an existing post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{post_id=int,message=string} true "Comment payload"
// @Success 201 {object} object{message=string,data=models.Comment}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /v1/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		PostID  uint   `json:"post_id"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  req.PostID,
		Message: req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}

	s.broadcastFeedEvent(c, notifications.FeedEvent{
		Type:      notifications.EventCommentCreated,
		PostID:    comment.PostID,
		CommentID: comment.ID,
	})

	return respondData(c, fiber.StatusCreated, "Create comment successfully", comment)
}

// UpdateComment handles PUT /api/v1/comments/:id
// @Summary Update comment
// @Description Rewrite a comment's message
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body object{message=string} true "Comment payload"
// @Success 200 {object} object{message=string,data=models.Comment}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /v1/comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    userID,
		CommentID: commentID,
		Message:   req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Update comment successfully", comment)
}

// DeleteComment handles DELETE /api/v1/comments/:id
// @Summary Delete comment
// @Description Remove a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /v1/comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), commentID, userID); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Delete comment successfully")
}
