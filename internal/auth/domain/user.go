package domain

import "time"

// User is a technician account. Accounts are disabled, never deleted.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is one row of the refresh-token ledger. Only the SHA-256 hex
// digest of the secret is ever stored; the raw value lives only in the
// response cookie. Rotation is append-only: the revoked row keeps a link to
// its successor so token lineages stay auditable.
type RefreshToken struct {
	ID                string
	UserID            string
	TokenHash         string
	UserAgent         *string
	IPAddress         *string
	ExpiresAt         time.Time
	CreatedAt         time.Time
	RevokedAt         *time.Time
	ReplacedByTokenID *string
}

// Active reports whether the token can still be rotated at the given instant.
// A token expiring exactly now counts as expired.
func (rt *RefreshToken) Active(now time.Time) bool {
	return rt.RevokedAt == nil && rt.ExpiresAt.After(now)
}
