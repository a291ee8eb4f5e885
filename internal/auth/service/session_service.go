package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/RIDSdiseno/RidsMovilBack/config"
	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/domain"
	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/dto"
	autherror "github.com/RIDSdiseno/RidsMovilBack/internal/errors"
	"github.com/RIDSdiseno/RidsMovilBack/internal/metrics"
	"github.com/RIDSdiseno/RidsMovilBack/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionService orchestrates the session lifecycle: login, refresh rotation
// and logout. It ties the credential store, the access-token issuer and the
// refresh-token ledger together and enforces the protocol invariants.
type SessionService struct {
	users  domain.UserRepository
	ledger domain.RefreshTokenRepository
	tokens TokenGenerator
	cfg    *config.Config
	log    *slog.Logger
}

func NewSessionService(
	users domain.UserRepository,
	ledger domain.RefreshTokenRepository,
	tokens TokenGenerator,
	cfg *config.Config,
	log *slog.Logger,
) *SessionService {
	return &SessionService{
		users:  users,
		ledger: ledger,
		tokens: tokens,
		cfg:    cfg,
		log:    log,
	}
}

// SessionResult is what a successful login or refresh hands back to the
// transport layer: the access token for the response body and the raw
// refresh secret destined for the cookie, with its lifetime in days.
type SessionResult struct {
	AccessToken    string
	AccessExpires  time.Time
	RefreshToken   string
	RefreshTTLDays int
	User           *domain.User
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *SessionService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// verifyCredentials looks the user up by normalized email and checks the
// password. Unknown and disabled accounts still pay for a bcrypt comparison
// against a fixed dummy hash so response latency does not reveal whether the
// email exists. All failure modes collapse into ErrInvalidCredentials.
func (s *SessionService) verifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user == nil || !user.Active {
		_ = bcrypt.CompareHashAndPassword([]byte(constant.DummyPasswordHash), []byte(password))
		return nil, autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return user, nil
}

func (s *SessionService) Login(ctx context.Context, input dto.LoginInput) (*SessionResult, error) {
	user, err := s.verifyCredentials(ctx, input.Email, input.Password)
	if err != nil {
		if err == autherror.ErrInvalidCredentials {
			metrics.Logins.WithLabelValues("invalid").Inc()
		} else {
			metrics.Logins.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	accessToken, accessExp, err := s.tokens.Generate(user)
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, err
	}

	raw, hash, err := s.tokens.NewRefreshSecret()
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, err
	}

	days := s.cfg.RefreshDays(input.Remember)
	now := time.Now()
	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hash,
		UserAgent: nilIfEmpty(input.UserAgent),
		IPAddress: nilIfEmpty(input.IPAddress),
		ExpiresAt: now.Add(time.Duration(days) * 24 * time.Hour),
		CreatedAt: now,
	}

	if err := s.ledger.Store(ctx, rt); err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	metrics.Logins.WithLabelValues("success").Inc()
	s.log.Info("login", "user_id", user.ID, "ip", input.IPAddress, "remember", input.Remember)

	return &SessionResult{
		AccessToken:    accessToken,
		AccessExpires:  accessExp,
		RefreshToken:   raw,
		RefreshTTLDays: days,
		User:           user,
	}, nil
}

// Refresh validates the presented cookie secret against the ledger and
// rotates it. Presenting a token that was already rotated away is treated as
// a compromise indicator: every active token of that user is revoked.
func (s *SessionService) Refresh(ctx context.Context, input dto.RefreshInput) (*SessionResult, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	row, err := s.ledger.GetByTokenHash(ctx, s.tokens.HashRefreshSecret(input.RefreshToken))
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if row == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	if row.RevokedAt != nil {
		metrics.ReplayDetections.Inc()
		s.log.Warn("revoked refresh token presented, revoking all active tokens",
			"user_id", row.UserID, "token_id", row.ID, "ip", input.IPAddress)

		if err := s.ledger.RevokeAllActiveForUser(ctx, row.UserID); err != nil {
			return nil, fmt.Errorf("failed to revoke user tokens: %w", err)
		}

		return nil, autherror.ErrRefreshTokenRevoked
	}

	now := time.Now()
	if !row.ExpiresAt.After(now) {
		return nil, autherror.ErrRefreshTokenExpired
	}

	user, err := s.users.GetByID(ctx, row.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user for refresh: %w", err)
	}
	if user == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}

	if !user.Active {
		if err := s.ledger.Revoke(ctx, row.ID); err != nil {
			return nil, fmt.Errorf("failed to revoke token of disabled user: %w", err)
		}
		return nil, autherror.ErrUserDisabled
	}

	raw, hash, err := s.tokens.NewRefreshSecret()
	if err != nil {
		return nil, err
	}

	// The remember flag of this call, not the original login, picks the TTL.
	days := s.cfg.RefreshDays(input.Remember)
	next := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    row.UserID,
		TokenHash: hash,
		UserAgent: nilIfEmpty(input.UserAgent),
		IPAddress: nilIfEmpty(input.IPAddress),
		ExpiresAt: now.Add(time.Duration(days) * 24 * time.Hour),
		CreatedAt: now,
	}

	if err := s.ledger.Rotate(ctx, row.ID, next); err != nil {
		if err == autherror.ErrRefreshTokenRevoked {
			// Lost a rotation race: another request rotated this row first.
			metrics.ReplayDetections.Inc()
			if revokeErr := s.ledger.RevokeAllActiveForUser(ctx, row.UserID); revokeErr != nil {
				return nil, fmt.Errorf("failed to revoke user tokens: %w", revokeErr)
			}
			return nil, err
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	accessToken, accessExp, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	metrics.RefreshRotations.Inc()
	s.log.Info("refresh rotated", "user_id", user.ID, "old_token_id", row.ID, "new_token_id", next.ID)

	return &SessionResult{
		AccessToken:    accessToken,
		AccessExpires:  accessExp,
		RefreshToken:   raw,
		RefreshTTLDays: days,
		User:           user,
	}, nil
}

// Logout revokes the presented token when it resolves to an unrevoked row.
// A missing or unknown cookie is not an error: logging out twice succeeds.
func (s *SessionService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	row, err := s.ledger.GetByTokenHash(ctx, s.tokens.HashRefreshSecret(rawToken))
	if err != nil {
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if row == nil || row.RevokedAt != nil {
		return nil
	}

	if err := s.ledger.Revoke(ctx, row.ID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.log.Info("logout", "user_id", row.UserID, "token_id", row.ID)

	return nil
}

// SetTechnicianStatus flips a technician's active flag. Disabling does not
// touch existing refresh rows; the next refresh attempt observes the flag,
// revokes the presented token and fails with ErrUserDisabled.
func (s *SessionService) SetTechnicianStatus(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	s.log.Info("technician status updated", "user_id", id, "active", active)

	return user, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
