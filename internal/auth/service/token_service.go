package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/RIDSdiseno/RidsMovilBack/internal/auth/service TokenGenerator

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/domain"
	"github.com/RIDSdiseno/RidsMovilBack/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(user *domain.User) (string, time.Time, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	NewRefreshSecret() (raw string, hash string, err error)
	HashRefreshSecret(raw string) string
}

// TokenService issues and verifies short-lived HS256 access tokens and
// generates the opaque refresh-token secrets. Access-token validity is purely
// cryptographic; verification never touches the store, which means an access
// token cannot be revoked before its natural expiry. The TTL bounds the blast
// radius of that trade-off.
type TokenService struct {
	Secret         string
	AccessTokenTTL time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func NewTokenService(secret string, accessTTL time.Duration) *TokenService {
	return &TokenService{
		Secret:         secret,
		AccessTokenTTL: accessTTL,
	}
}

func (ts *TokenService) Generate(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.AccessTokenTTL)

	claims := JWTCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// NewRefreshSecret generates a high-entropy opaque refresh secret and its
// SHA-256 hex digest. The raw value goes to the cookie; only the digest is
// ever persisted.
func (ts *TokenService) NewRefreshSecret() (string, string, error) {
	b := make([]byte, constant.RefreshSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}

	raw := base64.RawURLEncoding.EncodeToString(b)

	return raw, ts.HashRefreshSecret(raw), nil
}

func (ts *TokenService) HashRefreshSecret(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
