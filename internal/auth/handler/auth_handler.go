package handler

import (
	"errors"
	"strings"

	"github.com/RIDSdiseno/RidsMovilBack/config"
	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/dto"
	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/service"
	autherror "github.com/RIDSdiseno/RidsMovilBack/internal/errors"
	"github.com/RIDSdiseno/RidsMovilBack/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessions *service.SessionService
	tokens   service.TokenGenerator
	cfg      *config.Config
}

func NewAuthHandler(sessions *service.SessionService, tokens service.TokenGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{sessions: sessions, tokens: tokens, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and password are required"})
	}

	user, err := h.sessions.Register(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": dto.UserOutput{ID: user.ID, Name: user.Name, Email: user.Email, Active: user.Active},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	result, err := h.sessions.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	setRefreshCookie(c, h.cfg, result.RefreshToken, result.RefreshTTLDays)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": result.AccessToken,
		"user": dto.UserOutput{
			ID:     result.User.ID,
			Name:   result.User.Name,
			Email:  result.User.Email,
			Active: result.User.Active,
		},
		"remember": input.Remember,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	input := dto.RefreshInput{
		RefreshToken: c.Cookies(constant.RefreshCookieName),
		Remember:     parseRemember(c.Query("remember")),
		IPAddress:    c.IP(),
		UserAgent:    string(c.Request().Header.UserAgent()),
	}

	result, err := h.sessions.Refresh(c.UserContext(), input)
	if err != nil {
		// Every refresh failure clears the stale cookie.
		clearRefreshCookie(c, h.cfg)

		switch {
		case errors.Is(err, autherror.ErrRefreshTokenNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid refresh token"})
		case errors.Is(err, autherror.ErrRefreshTokenRevoked):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token revoked"})
		case errors.Is(err, autherror.ErrRefreshTokenExpired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token expired"})
		case errors.Is(err, autherror.ErrUserDisabled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "user disabled"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	setRefreshCookie(c, h.cfg, result.RefreshToken, result.RefreshTTLDays)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":    result.AccessToken,
		"remember": input.Remember,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	err := h.sessions.Logout(c.UserContext(), c.Cookies(constant.RefreshCookieName))

	// The cookie goes away no matter what.
	clearRefreshCookie(c, h.cfg)

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) UpdateTechnicianStatus(c *fiber.Ctx) error {
	var input dto.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil || input.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "active is required"})
	}

	user, err := h.sessions.SetTechnicianStatus(c.UserContext(), c.Params("id"), *input.Active)
	if err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "technician not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": dto.UserOutput{ID: user.ID, Name: user.Name, Email: user.Email, Active: user.Active},
	})
}

func parseRemember(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
