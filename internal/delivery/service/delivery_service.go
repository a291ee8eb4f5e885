package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/domain"
	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/dto"
	apperror "github.com/RIDSdiseno/RidsMovilBack/internal/errors"
	"github.com/RIDSdiseno/RidsMovilBack/pkg/cloudinary"
	"github.com/google/uuid"
)

const (
	// MaxPhotoBytes caps individual photo uploads.
	MaxPhotoBytes = 5 * 1024 * 1024
	// MaxPhotosPerDelivery caps how many photos one delivery can carry.
	MaxPhotosPerDelivery = 10
)

var allowedFormats = map[string]bool{"png": true, "jpg": true, "jpeg": true}

// AllowedFormats lists the accepted photo formats for API responses.
func AllowedFormats() []string {
	return []string{"png", "jpg", "jpeg"}
}

// UploadAuthorization is the response to a signed-upload request. Photos get
// a Cloudinary signature; signatures are stored inline and need no upload.
type UploadAuthorization struct {
	RequiresUpload bool                        `json:"requiresUpload"`
	Storage        string                      `json:"storage,omitempty"`
	Message        string                      `json:"message,omitempty"`
	Signature      *cloudinary.UploadSignature `json:"signature,omitempty"`
	AllowedFormats []string                    `json:"allowedFormats,omitempty"`
	MaxBytes       int64                       `json:"maxBytes,omitempty"`
	ResourceType   string                      `json:"resourceType,omitempty"`
}

type DeliveryService struct {
	repo   domain.DeliveryRepository
	signer *cloudinary.Signer
	log    *slog.Logger
}

func NewDeliveryService(repo domain.DeliveryRepository, signer *cloudinary.Signer, log *slog.Logger) *DeliveryService {
	return &DeliveryService{repo: repo, signer: signer, log: log}
}

func (s *DeliveryService) Create(ctx context.Context, input dto.CreateDeliveryInput) (*domain.Delivery, error) {
	date := time.Now()
	if strings.TrimSpace(input.Date) != "" {
		parsed, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date", apperror.ErrInvalidEvidence)
		}
		date = parsed
	}

	d := &domain.Delivery{
		ID:            uuid.NewString(),
		CompanyName:   strings.TrimSpace(input.CompanyName),
		RecipientName: strings.TrimSpace(input.RecipientName),
		Date:          date,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	return d, nil
}

func (s *DeliveryService) Get(ctx context.Context, id string) (*domain.Delivery, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if d == nil {
		return nil, apperror.ErrDeliveryNotFound
	}
	return d, nil
}

// normalizeEvidenceType maps client spellings onto the two evidence kinds.
func normalizeEvidenceType(v string) (domain.EvidenceType, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "photo", "foto", "image", "foto_producto", "foto_equipo":
		return domain.EvidencePhoto, true
	case "signature", "firma":
		return domain.EvidenceSignature, true
	}
	return "", false
}

// normalizeFormat strips mime prefixes ("image/png") and leading dots.
func normalizeFormat(v string) string {
	raw := strings.ToLower(strings.TrimSpace(v))
	if raw == "" {
		return ""
	}
	if idx := strings.LastIndex(raw, "/"); idx >= 0 {
		raw = raw[idx+1:]
	}
	return strings.TrimPrefix(raw, ".")
}

func buildPublicID(t domain.EvidenceType, deliveryID string) string {
	prefix := "foto"
	if t == domain.EvidenceSignature {
		prefix = "firma"
	}
	return fmt.Sprintf("%s-%s-%d-%06x", prefix, deliveryID, time.Now().UnixMilli(), rand.Intn(1<<24))
}

// checkLimits enforces the per-delivery evidence caps: one signature, at
// most MaxPhotosPerDelivery photos.
func (s *DeliveryService) checkLimits(ctx context.Context, deliveryID string, t domain.EvidenceType) error {
	if t == domain.EvidenceSignature {
		has, err := s.repo.HasSignature(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("failed to check signature: %w", err)
		}
		if has {
			return apperror.ErrSignatureAlreadySet
		}
		return nil
	}

	photos, err := s.repo.CountPhotos(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("failed to count photos: %w", err)
	}
	if photos >= MaxPhotosPerDelivery {
		return apperror.ErrPhotoLimitReached
	}
	return nil
}

// AuthorizeUpload validates the request and, for photos, returns a signed
// Cloudinary upload authorization scoped to the delivery's folder.
func (s *DeliveryService) AuthorizeUpload(ctx context.Context, deliveryID string, input dto.EvidenceInput) (*UploadAuthorization, error) {
	t, ok := normalizeEvidenceType(input.Type)
	if !ok {
		return nil, fmt.Errorf("%w: type must be 'photo' or 'signature'", apperror.ErrInvalidEvidence)
	}

	if t == domain.EvidencePhoto {
		if format := normalizeFormat(input.Format); format != "" && !allowedFormats[format] {
			return nil, fmt.Errorf("%w: format not allowed, use png or jpeg", apperror.ErrInvalidEvidence)
		}
		if input.Bytes < 0 || input.Bytes > MaxPhotoBytes {
			return nil, fmt.Errorf("%w: file exceeds the maximum allowed size", apperror.ErrInvalidEvidence)
		}
	}

	d, err := s.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := s.checkLimits(ctx, d.ID, t); err != nil {
		return nil, err
	}

	if t == domain.EvidenceSignature {
		return &UploadAuthorization{
			RequiresUpload: false,
			Storage:        "database",
			Message:        "send the signature vector to the confirmation endpoint",
		}, nil
	}

	folder := s.signer.DeliveryFolder(d.ID)
	signed := s.signer.CreateUploadSignature(folder, buildPublicID(t, d.ID), time.Now().Unix())

	s.log.Info("upload authorized", "delivery_id", d.ID, "folder", folder, "public_id", signed.PublicID)

	return &UploadAuthorization{
		RequiresUpload: true,
		Signature:      &signed,
		AllowedFormats: AllowedFormats(),
		MaxBytes:       MaxPhotoBytes,
		ResourceType:   "auto",
	}, nil
}

// ConfirmEvidence records an uploaded photo or an inline signature vector.
func (s *DeliveryService) ConfirmEvidence(ctx context.Context, deliveryID string, input dto.EvidenceInput) (*domain.Evidence, error) {
	t, ok := normalizeEvidenceType(input.Type)
	if !ok {
		return nil, fmt.Errorf("%w: type is required (photo or signature)", apperror.ErrInvalidEvidence)
	}

	ev := &domain.Evidence{
		ID:        uuid.NewString(),
		Type:      t,
		CreatedAt: time.Now(),
	}

	if t == domain.EvidencePhoto {
		format := normalizeFormat(input.Format)
		switch {
		case input.URL == "" || input.PublicID == "":
			return nil, fmt.Errorf("%w: url and public_id are required for photos", apperror.ErrInvalidEvidence)
		case !allowedFormats[format]:
			return nil, fmt.Errorf("%w: format not allowed, use png or jpeg", apperror.ErrInvalidEvidence)
		case input.Bytes <= 0 || input.Bytes > MaxPhotoBytes:
			return nil, fmt.Errorf("%w: bytes is required and must be within the allowed limit", apperror.ErrInvalidEvidence)
		}
		url, publicID, bytes := input.URL, input.PublicID, input.Bytes
		ev.URL, ev.PublicID, ev.Format, ev.Bytes = &url, &publicID, &format, &bytes
	} else {
		if len(input.Vector) == 0 || string(input.Vector) == `""` || string(input.Vector) == "null" {
			return nil, fmt.Errorf("%w: signature vector is required", apperror.ErrInvalidEvidence)
		}
		ev.Vector = input.Vector
	}

	d, err := s.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	ev.DeliveryID = d.ID

	if t == domain.EvidencePhoto {
		// The public id must live under the folder assigned to this delivery.
		if !strings.HasPrefix(*ev.PublicID, s.signer.DeliveryFolder(d.ID)+"/") {
			return nil, fmt.Errorf("%w: public_id does not belong to the delivery folder", apperror.ErrInvalidEvidence)
		}
	}

	if err := s.checkLimits(ctx, d.ID, t); err != nil {
		return nil, err
	}

	if err := s.repo.CreateEvidence(ctx, ev); err != nil {
		return nil, err
	}

	return ev, nil
}
