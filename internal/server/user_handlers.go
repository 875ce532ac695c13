package server

import (
	"github.com/gofiber/fiber/v2"

	"agora/internal/models"
	"agora/internal/service"
)

// CreateUser handles POST /api/v1/users
// @Summary Register
// @Description Register a new user with a unique username
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{username=string,picture=string} true "Registration request"
// @Success 201 {object} object{message=string,data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /v1/users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Picture  string `json:"picture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Username: req.Username,
		Picture:  req.Picture,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "Register successfully", user)
}

// GetUserByUsername handles GET /api/v1/users/:username
// @Summary User lookup
// @Description Look up a user profile by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} object{message=string,data=models.User}
// @Failure 404 {object} models.ErrorResponse
// @Router /v1/users/{username} [get]
func (s *Server) GetUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userService.GetUserByUsername(c.Context(), username)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Get user successfully", user)
}

// ListUsers handles GET /api/v1/users
// @Summary List users
// @Description List registered users, newest first
// @Tags users
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} object{message=string,data=[]models.User}
// @Router /v1/users [get]
func (s *Server) ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	users, err := s.userService.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return respondData(c, fiber.StatusOK, "Get users successfully", users)
}
