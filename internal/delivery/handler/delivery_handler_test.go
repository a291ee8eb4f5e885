package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/domain"
	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/dto"
	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/handler"
	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/service"
	"github.com/RIDSdiseno/RidsMovilBack/internal/mocks"
	"github.com/RIDSdiseno/RidsMovilBack/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockDeliveryRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockDeliveryRepository(ctrl)
	signer := cloudinary.NewSigner("demo", "key", "secret", "entregas")
	deliveries := service.NewDeliveryService(repo, signer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	app := fiber.New()
	// A pass-through guard keeps these tests about the handlers.
	handler.RegisterRoutes(app, handler.NewDeliveryHandler(deliveries), func(c *fiber.Ctx) error {
		return c.Next()
	})

	return app, repo
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateDelivery(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, repo := newTestApp(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest("POST", "/api/v1/deliveries/",
			dto.CreateDeliveryInput{CompanyName: "Acme", RecipientName: "Jane"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, err := app.Test(jsonRequest("POST", "/api/v1/deliveries/",
			dto.CreateDeliveryInput{CompanyName: "Acme"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetDelivery(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, repo := newTestApp(t)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").
			Return(&domain.Delivery{ID: "d-1", CompanyName: "Acme"}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/deliveries/d-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		app, repo := newTestApp(t)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/deliveries/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAuthorizeUploadHandler(t *testing.T) {
	t.Run("photo", func(t *testing.T) {
		app, repo := newTestApp(t)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(&domain.Delivery{ID: "d-1"}, nil)
		repo.EXPECT().CountPhotos(gomock.Any(), "d-1").Return(0, nil)

		resp, err := app.Test(jsonRequest("POST", "/api/v1/deliveries/d-1/evidence/sign",
			dto.EvidenceInput{Type: "photo", Format: "png", Bytes: 1024}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var auth service.UploadAuthorization
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
		assert.True(t, auth.RequiresUpload)
		require.NotNil(t, auth.Signature)
		assert.NotEmpty(t, auth.Signature.Signature)
	})

	t.Run("invalid type", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, err := app.Test(jsonRequest("POST", "/api/v1/deliveries/d-1/evidence/sign",
			dto.EvidenceInput{Type: "video"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("photo limit reached", func(t *testing.T) {
		app, repo := newTestApp(t)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(&domain.Delivery{ID: "d-1"}, nil)
		repo.EXPECT().CountPhotos(gomock.Any(), "d-1").Return(service.MaxPhotosPerDelivery, nil)

		resp, err := app.Test(jsonRequest("POST", "/api/v1/deliveries/d-1/evidence/sign",
			dto.EvidenceInput{Type: "photo"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestConfirmEvidenceHandler(t *testing.T) {
	t.Run("signature", func(t *testing.T) {
		app, repo := newTestApp(t)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(&domain.Delivery{ID: "d-1"}, nil)
		repo.EXPECT().HasSignature(gomock.Any(), "d-1").Return(false, nil)
		repo.EXPECT().CreateEvidence(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest("POST", "/api/v1/deliveries/d-1/evidence",
			dto.EvidenceInput{Type: "firma", Vector: json.RawMessage(`[[1,2]]`)}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("second signature conflicts", func(t *testing.T) {
		app, repo := newTestApp(t)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(&domain.Delivery{ID: "d-1"}, nil)
		repo.EXPECT().HasSignature(gomock.Any(), "d-1").Return(true, nil)

		resp, err := app.Test(jsonRequest("POST", "/api/v1/deliveries/d-1/evidence",
			dto.EvidenceInput{Type: "firma", Vector: json.RawMessage(`[[1,2]]`)}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}
