package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/domain"
	apperror "github.com/RIDSdiseno/RidsMovilBack/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool mirrors the subset of pgxpool.Pool the repository uses; pgxmock
// satisfies it in tests.
type PgxPool interface {
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

func (r *PostgresRepository) Create(ctx context.Context, d *domain.Delivery) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO deliveries (id, company_name, recipient_name, date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, d.ID, d.CompanyName, d.RecipientName, d.Date, d.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, company_name, recipient_name, date, created_at
		FROM deliveries
		WHERE id = $1
		LIMIT 1;
	`, id)

	var d domain.Delivery
	err := row.Scan(&d.ID, &d.CompanyName, &d.RecipientName, &d.Date, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, delivery_id, type, url, public_id, format, bytes, vector, created_at
		FROM delivery_evidence
		WHERE delivery_id = $1
		ORDER BY created_at DESC;
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev domain.Evidence
		if err := rows.Scan(&ev.ID, &ev.DeliveryID, &ev.Type, &ev.URL, &ev.PublicID,
			&ev.Format, &ev.Bytes, &ev.Vector, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evidence: %w", err)
		}
		d.Evidence = append(d.Evidence, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evidence rows: %w", err)
	}

	return &d, nil
}

func (r *PostgresRepository) CountPhotos(ctx context.Context, deliveryID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM delivery_evidence
		WHERE delivery_id = $1 AND type = 'photo'
	`, deliveryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) HasSignature(ctx context.Context, deliveryID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM delivery_evidence
			WHERE delivery_id = $1 AND type = 'signature'
		)
	`, deliveryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check signature: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) CreateEvidence(ctx context.Context, ev *domain.Evidence) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO delivery_evidence (id, delivery_id, type, url, public_id, format, bytes, vector, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, ev.ID, ev.DeliveryID, ev.Type, ev.URL, ev.PublicID, ev.Format, ev.Bytes, ev.Vector, ev.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.ErrEvidenceAlreadyExists
		}
		return fmt.Errorf("failed to store evidence: %w", err)
	}
	return nil
}
