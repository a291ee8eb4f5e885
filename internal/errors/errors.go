package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrUserDisabled         = errors.New("user disabled")
	ErrUserNotFound         = errors.New("user not found")

	ErrDeliveryNotFound      = errors.New("delivery not found")
	ErrSignatureAlreadySet   = errors.New("delivery already has a signature")
	ErrPhotoLimitReached     = errors.New("delivery reached the photo limit")
	ErrEvidenceAlreadyExists = errors.New("evidence with that public id already exists")
	ErrInvalidEvidence       = errors.New("invalid evidence payload")
)
