package handler

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/domain"
	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/dto"
	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/service"
	apperror "github.com/RIDSdiseno/RidsMovilBack/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type DeliveryHandler struct {
	deliveries *service.DeliveryService
}

func NewDeliveryHandler(deliveries *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

// RegisterRoutes mounts the delivery surface behind the supplied auth guard.
func RegisterRoutes(app *fiber.App, h *DeliveryHandler, guard fiber.Handler) {
	deliveries := app.Group("/api/v1/deliveries", guard)
	deliveries.Post("/", h.Create)
	deliveries.Get("/:id", h.Get)
	deliveries.Post("/:id/evidence/sign", h.AuthorizeUpload)
	deliveries.Post("/:id/evidence", h.ConfirmEvidence)
}

func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateDeliveryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if strings.TrimSpace(input.CompanyName) == "" || strings.TrimSpace(input.RecipientName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "company_name and recipient_name are required"})
	}

	d, err := h.deliveries.Create(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidEvidence) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"delivery": deliveryOutput(d)})
}

func (h *DeliveryHandler) Get(c *fiber.Ctx) error {
	d, err := h.deliveries.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperror.ErrDeliveryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "delivery not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"delivery": deliveryOutput(d)})
}

func (h *DeliveryHandler) AuthorizeUpload(c *fiber.Ctx) error {
	var input dto.EvidenceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	auth, err := h.deliveries.AuthorizeUpload(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return h.evidenceError(c, err)
	}

	return c.JSON(auth)
}

func (h *DeliveryHandler) ConfirmEvidence(c *fiber.Ctx) error {
	var input dto.EvidenceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	ev, err := h.deliveries.ConfirmEvidence(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return h.evidenceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"evidence": evidenceOutput(ev)})
}

func (h *DeliveryHandler) evidenceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrInvalidEvidence):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperror.ErrDeliveryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "delivery not found"})
	case errors.Is(err, apperror.ErrSignatureAlreadySet):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "delivery already has a signature"})
	case errors.Is(err, apperror.ErrPhotoLimitReached):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "delivery reached the photo limit"})
	case errors.Is(err, apperror.ErrEvidenceAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "evidence with that public id already exists"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func evidenceOutput(ev *domain.Evidence) dto.EvidenceOutput {
	return dto.EvidenceOutput{
		ID:         ev.ID,
		DeliveryID: ev.DeliveryID,
		Type:       string(ev.Type),
		URL:        ev.URL,
		PublicID:   ev.PublicID,
		Format:     ev.Format,
		Bytes:      ev.Bytes,
		Vector:     json.RawMessage(ev.Vector),
		CreatedAt:  ev.CreatedAt,
	}
}

func deliveryOutput(d *domain.Delivery) dto.DeliveryOutput {
	out := dto.DeliveryOutput{
		ID:            d.ID,
		CompanyName:   d.CompanyName,
		RecipientName: d.RecipientName,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
		Evidence:      []dto.EvidenceOutput{},
	}
	for i := range d.Evidence {
		out.Evidence = append(out.Evidence, evidenceOutput(&d.Evidence[i]))
	}
	return out
}
