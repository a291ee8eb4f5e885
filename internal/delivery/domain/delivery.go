package domain

import (
	"context"
	"time"
)

type EvidenceType string

const (
	EvidencePhoto     EvidenceType = "photo"
	EvidenceSignature EvidenceType = "signature"
)

// Delivery is one recorded hand-over to a client company.
type Delivery struct {
	ID            string
	CompanyName   string
	RecipientName string
	Date          time.Time
	CreatedAt     time.Time
	Evidence      []Evidence
}

// Evidence is one piece of delivery proof. Photos live in cloud storage and
// only their URL/public id is stored; signature vectors are stored inline.
type Evidence struct {
	ID         string
	DeliveryID string
	Type       EvidenceType
	URL        *string
	PublicID   *string
	Format     *string
	Bytes      *int64
	Vector     []byte
	CreatedAt  time.Time
}

//go:generate mockgen -destination=../../mocks/mock_delivery_repository.go -package=mocks github.com/RIDSdiseno/RidsMovilBack/internal/delivery/domain DeliveryRepository
type DeliveryRepository interface {
	Create(ctx context.Context, d *Delivery) error
	GetByID(ctx context.Context, id string) (*Delivery, error)
	CountPhotos(ctx context.Context, deliveryID string) (int, error)
	HasSignature(ctx context.Context, deliveryID string) (bool, error)
	CreateEvidence(ctx context.Context, ev *Evidence) error
}
