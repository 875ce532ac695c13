package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeatureFlags handles GET /api/v1/flags
// @Summary Feature flags
// @Description Return configured feature flags and their evaluated state for the current user
// @Tags flags
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{raw=object,evaluated=object}
// @Failure 401 {object} models.ErrorResponse
// @Router /v1/flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if s.featureFlags == nil {
		return c.JSON(fiber.Map{
			"raw":       map[string]string{},
			"evaluated": map[string]bool{},
		})
	}

	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(userID),
	})
}
