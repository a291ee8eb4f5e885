package handler

import (
	"strings"
	"time"

	"github.com/RIDSdiseno/RidsMovilBack/config"
	"github.com/RIDSdiseno/RidsMovilBack/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// Cookie transport for the refresh token. The cookie is HTTP-only and scoped
// to the auth route prefix so it never travels on unrelated requests; secure
// and same-site come from configuration so local development can run over
// plaintext.

func sameSiteMode(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return fiber.CookieSameSiteStrictMode
	case "none":
		return fiber.CookieSameSiteNoneMode
	default:
		return fiber.CookieSameSiteLaxMode
	}
}

func setRefreshCookie(c *fiber.Ctx, cfg *config.Config, rawToken string, ttlDays int) {
	maxAge := ttlDays * 24 * 60 * 60

	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshCookieName,
		Value:    rawToken,
		Path:     cfg.CookiePath,
		Domain:   cfg.CookieDomain,
		MaxAge:   maxAge,
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: sameSiteMode(cfg.CookieSameSite),
	})
}

func clearRefreshCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshCookieName,
		Value:    "",
		Path:     cfg.CookiePath,
		Domain:   cfg.CookieDomain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: sameSiteMode(cfg.CookieSameSite),
	})
}
