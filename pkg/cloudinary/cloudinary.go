package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// Signer produces signed upload authorizations for Cloudinary. The client
// uploads directly to Cloudinary with the returned parameters; the backend
// never proxies file bytes.
type Signer struct {
	CloudName  string
	APIKey     string
	APISecret  string
	BaseFolder string
}

// UploadSignature is the payload the client needs to perform a signed upload.
type UploadSignature struct {
	UploadURL string `json:"uploadUrl"`
	APIKey    string `json:"apiKey"`
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	PublicID  string `json:"publicId"`
	Signature string `json:"signature"`
	CloudName string `json:"cloudName"`
}

func NewSigner(cloudName, apiKey, apiSecret, baseFolder string) *Signer {
	return &Signer{
		CloudName:  cloudName,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseFolder: strings.TrimRight(baseFolder, "/"),
	}
}

// Enabled reports whether upload signing is configured.
func (s *Signer) Enabled() bool {
	return s.CloudName != "" && s.APIKey != "" && s.APISecret != ""
}

func (s *Signer) UploadURL() string {
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", s.CloudName)
}

// DeliveryFolder returns the folder a delivery's evidence must live under.
func (s *Signer) DeliveryFolder(deliveryID string) string {
	return fmt.Sprintf("%s/entrega-%s", s.BaseFolder, deliveryID)
}

// Sign computes the Cloudinary upload signature: SHA-1 over the sorted
// parameter string with the API secret appended.
func (s *Signer) Sign(folder, publicID string, timestamp int64) string {
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%d%s", folder, publicID, timestamp, s.APISecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

func (s *Signer) CreateUploadSignature(folder, publicID string, timestamp int64) UploadSignature {
	return UploadSignature{
		UploadURL: s.UploadURL(),
		APIKey:    s.APIKey,
		Timestamp: timestamp,
		Folder:    folder,
		PublicID:  publicID,
		Signature: s.Sign(folder, publicID, timestamp),
		CloudName: s.CloudName,
	}
}
