package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	assert.True(t, NewSigner("demo", "key", "secret", "entregas").Enabled())
	assert.False(t, NewSigner("", "key", "secret", "entregas").Enabled())
	assert.False(t, NewSigner("demo", "", "secret", "entregas").Enabled())
	assert.False(t, NewSigner("demo", "key", "", "entregas").Enabled())
}

func TestDeliveryFolder(t *testing.T) {
	s := NewSigner("demo", "key", "secret", "entregas")
	assert.Equal(t, "entregas/entrega-abc", s.DeliveryFolder("abc"))

	// A trailing slash on the base folder does not double up.
	s = NewSigner("demo", "key", "secret", "entregas/")
	assert.Equal(t, "entregas/entrega-abc", s.DeliveryFolder("abc"))
}

func TestSign(t *testing.T) {
	s := NewSigner("demo", "key", "secret", "entregas")

	folder := "entregas/entrega-abc"
	publicID := "foto-abc-123"
	var timestamp int64 = 1700000000

	expected := sha1.Sum([]byte(fmt.Sprintf(
		"folder=%s&public_id=%s&timestamp=%d%s", folder, publicID, timestamp, "secret")))

	assert.Equal(t, hex.EncodeToString(expected[:]), s.Sign(folder, publicID, timestamp))

	// A different secret yields a different signature.
	other := NewSigner("demo", "key", "other-secret", "entregas")
	assert.NotEqual(t, s.Sign(folder, publicID, timestamp), other.Sign(folder, publicID, timestamp))
}

func TestCreateUploadSignature(t *testing.T) {
	s := NewSigner("demo", "key", "secret", "entregas")

	signed := s.CreateUploadSignature("entregas/entrega-abc", "foto-abc-123", 1700000000)

	assert.Equal(t, "https://api.cloudinary.com/v1_1/demo/auto/upload", signed.UploadURL)
	assert.Equal(t, "key", signed.APIKey)
	assert.Equal(t, "demo", signed.CloudName)
	assert.Equal(t, int64(1700000000), signed.Timestamp)
	assert.Equal(t, "entregas/entrega-abc", signed.Folder)
	assert.Equal(t, "foto-abc-123", signed.PublicID)
	assert.Equal(t, s.Sign("entregas/entrega-abc", "foto-abc-123", 1700000000), signed.Signature)
}
