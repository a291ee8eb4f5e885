package handler

import (
	"strings"

	"github.com/RIDSdiseno/RidsMovilBack/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// RequireAuth guards protected routes. It demands a Bearer access token,
// verifies it cryptographically (no store lookup) and stores the claims in
// the request locals.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing access token",
			})
		}

		claims, err := h.tokens.VerifyAccessToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(constant.AuthUserLocalKey, claims)

		return c.Next()
	}
}
