package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RIDSdiseno/RidsMovilBack/internal/auth/domain"
	autherror "github.com/RIDSdiseno/RidsMovilBack/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository needs. Tests swap in
// a pgxmock pool through the same interface.
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxPool
}

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, active, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, active, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash, active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.Name, user.Email, user.PasswordHash, user.Active, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	query := `
		UPDATE users
		SET active = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, password_hash, active, created_at, updated_at;
	`
	row := r.db.QueryRow(ctx, query, id, active)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token_hash, user_agent, ip_address, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.TokenHash, rt.UserAgent, rt.IPAddress, rt.ExpiresAt, rt.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByTokenHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, user_agent, ip_address,
		       expires_at, created_at, revoked_at, replaced_by_token_id
		FROM refresh_tokens
		WHERE token_hash = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, hash)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.UserAgent, &rt.IPAddress,
		&rt.ExpiresAt, &rt.CreatedAt, &rt.RevokedAt, &rt.ReplacedByTokenID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token by hash: %w", err)
	}

	return &rt, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE id = $1 AND revoked_at IS NULL
	`, id)
	return err
}

// Rotate revokes the old row and inserts its successor inside one
// transaction. The old row is locked with FOR UPDATE and re-checked under
// the lock, so two concurrent rotations of the same token cannot both win:
// the loser observes revoked_at set and gets ErrRefreshTokenRevoked.
func (r *PostgresRepository) Rotate(ctx context.Context, oldID string, next *domain.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var revokedAt *time.Time
	err = tx.QueryRow(ctx, `
		SELECT revoked_at
		FROM refresh_tokens
		WHERE id = $1
		FOR UPDATE
	`, oldID).Scan(&revokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return autherror.ErrRefreshTokenNotFound
		}
		return fmt.Errorf("failed to lock refresh token: %w", err)
	}

	if revokedAt != nil {
		return autherror.ErrRefreshTokenRevoked
	}

	_, err = tx.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now(), replaced_by_token_id = $2
		WHERE id = $1
	`, oldID, next.ID)
	if err != nil {
		return fmt.Errorf("failed to revoke rotated token: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token_hash, user_agent, ip_address, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, next.ID, next.UserID, next.TokenHash, next.UserAgent, next.IPAddress, next.ExpiresAt, next.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert rotated token: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) RevokeAllActiveForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE user_id = $1 AND revoked_at IS NULL
	`, userID)
	return err
}
