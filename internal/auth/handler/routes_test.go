package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/handler"
	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that all public routes are mounted.
func TestRegisterRoutes(t *testing.T) {
	f := newHandlerFixture(t)

	app := fiber.New()
	handler.RegisterRoutes(app, f.handler)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/health"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/refresh"},
		{http.MethodPost, "/api/v1/auth/logout"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// Only the route's existence matters here. The handlers may well
			// answer 400 or 401 for an empty request, which is fine.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// TestRequireAuthMiddleware covers the Bearer-token guard on the protected
// technician-status route.
func TestRequireAuthMiddleware(t *testing.T) {
	protectedRoute := "/api/v1/technicians/user-1/status"

	t.Run("fails without auth header", func(t *testing.T) {
		f := newHandlerFixture(t)
		app := fiber.New()
		handler.RegisterRoutes(app, f.handler)

		req := httptest.NewRequest(http.MethodPatch, protectedRoute, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with malformed header", func(t *testing.T) {
		f := newHandlerFixture(t)
		app := fiber.New()
		handler.RegisterRoutes(app, f.handler)

		req := httptest.NewRequest(http.MethodPatch, protectedRoute, nil)
		req.Header.Set("Authorization", "BearerInvalidToken")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with rejected token", func(t *testing.T) {
		f := newHandlerFixture(t)
		app := fiber.New()
		handler.RegisterRoutes(app, f.handler)

		f.tokens.EXPECT().VerifyAccessToken("bad-token").Return(nil, fmt.Errorf("invalid token"))

		req := httptest.NewRequest(http.MethodPatch, protectedRoute, nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("passes with a valid token", func(t *testing.T) {
		f := newHandlerFixture(t)
		app := fiber.New()
		handler.RegisterRoutes(app, f.handler)

		claims := &service.JWTCustomClaims{
			UserID: "admin-1",
			Email:  "admin@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		f.tokens.EXPECT().VerifyAccessToken("good-token").Return(claims, nil)

		// The guard passes and the handler rejects the empty body.
		req := httptest.NewRequest(http.MethodPatch, protectedRoute, nil)
		req.Header.Set("Authorization", "Bearer good-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
