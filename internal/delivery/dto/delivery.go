package dto

import (
	"encoding/json"
	"time"
)

type CreateDeliveryInput struct {
	CompanyName   string `json:"company_name"`
	RecipientName string `json:"recipient_name"`
	Date          string `json:"date"`
}

type EvidenceInput struct {
	Type     string          `json:"type"`
	Format   string          `json:"format"`
	Bytes    int64           `json:"bytes"`
	URL      string          `json:"url"`
	PublicID string          `json:"public_id"`
	Vector   json.RawMessage `json:"vector"`
}

type EvidenceOutput struct {
	ID         string          `json:"id"`
	DeliveryID string          `json:"delivery_id"`
	Type       string          `json:"type"`
	URL        *string         `json:"url,omitempty"`
	PublicID   *string         `json:"public_id,omitempty"`
	Format     *string         `json:"format,omitempty"`
	Bytes      *int64          `json:"bytes,omitempty"`
	Vector     json.RawMessage `json:"vector,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type DeliveryOutput struct {
	ID            string           `json:"id"`
	CompanyName   string           `json:"company_name"`
	RecipientName string           `json:"recipient_name"`
	Date          time.Time        `json:"date"`
	CreatedAt     time.Time        `json:"created_at"`
	Evidence      []EvidenceOutput `json:"evidence"`
}
