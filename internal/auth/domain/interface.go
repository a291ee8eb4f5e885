package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/RIDSdiseno/RidsMovilBack/internal/auth/domain UserRepository,RefreshTokenRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	SetActive(ctx context.Context, id string, active bool) (*User, error)
}

// RefreshTokenRepository is the persisted ledger of refresh tokens.
type RefreshTokenRepository interface {
	Store(ctx context.Context, rt *RefreshToken) error
	GetByTokenHash(ctx context.Context, hash string) (*RefreshToken, error)
	Revoke(ctx context.Context, id string) error

	// Rotate revokes the row identified by oldID, links it to next and
	// inserts next inside a single transaction. A failure anywhere leaves
	// neither change applied.
	Rotate(ctx context.Context, oldID string, next *RefreshToken) error

	RevokeAllActiveForUser(ctx context.Context, userID string) error
}
