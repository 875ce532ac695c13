package server

import (
	"github.com/gofiber/fiber/v2"

	"agora/internal/models"
)

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Issue a token for an existing username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string} true "Login request"
// @Success 200 {object} object{message=string,data=object{token=string,user=models.User}}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /v1/auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	signed, user, err := s.authService.Login(c.Context(), req.Username)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Login successfully", fiber.Map{
		"token": signed,
		"user":  user,
	})
}

// GetMe handles GET /api/v1/auth/me
// @Summary Current user
// @Description Return the profile behind the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,data=models.User}
// @Failure 401 {object} models.ErrorResponse
// @Router /v1/auth/me [get]
func (s *Server) GetMe(c *fiber.Ctx) error {
	raw, _ := c.Locals("rawToken").(string)

	user, err := s.authService.GetMe(c.Context(), raw)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Get user info successfully", user)
}
