package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/RIDSdiseno/RidsMovilBack/internal/delivery/domain"
	repo "github.com/RIDSdiseno/RidsMovilBack/internal/delivery/repository/postgres"
	apperror "github.com/RIDSdiseno/RidsMovilBack/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deliveryColumns = []string{"id", "company_name", "recipient_name", "date", "created_at"}

var evidenceColumns = []string{
	"id", "delivery_id", "type", "url", "public_id", "format", "bytes", "vector", "created_at",
}

func TestCreateDelivery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	d := &domain.Delivery{
		ID:            "d-1",
		CompanyName:   "Acme",
		RecipientName: "Jane",
		Date:          time.Now(),
		CreatedAt:     time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO deliveries").
			WithArgs(d.ID, d.CompanyName, d.RecipientName, d.Date, d.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, d))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO deliveries").
			WithArgs(d.ID, d.CompanyName, d.RecipientName, d.Date, d.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Create(ctx, d))
	})
}

func TestGetDeliveryByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success with evidence", func(t *testing.T) {
		url := "https://res.cloudinary.com/demo/image/upload/x.png"
		publicID := "entregas/entrega-d-1/foto-1"
		format := "png"
		var bytes int64 = 2048

		mock.ExpectQuery("SELECT id, company_name").
			WithArgs("d-1").
			WillReturnRows(pgxmock.NewRows(deliveryColumns).
				AddRow("d-1", "Acme", "Jane", time.Now(), time.Now()))
		mock.ExpectQuery("SELECT id, delivery_id").
			WithArgs("d-1").
			WillReturnRows(pgxmock.NewRows(evidenceColumns).
				AddRow("ev-1", "d-1", domain.EvidencePhoto, &url, &publicID, &format, &bytes,
					[]byte(nil), time.Now()))

		d, err := r.GetByID(ctx, "d-1")
		require.NoError(t, err)
		assert.Equal(t, "Acme", d.CompanyName)
		require.Len(t, d.Evidence, 1)
		assert.Equal(t, domain.EvidencePhoto, d.Evidence[0].Type)
		assert.Equal(t, publicID, *d.Evidence[0].PublicID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, company_name").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		d, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, d)
	})
}

func TestCountPhotos(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("d-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	count, err := r.CountPhotos(context.Background(), "d-1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestHasSignature(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("d-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	has, err := r.HasSignature(context.Background(), "d-1")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCreateEvidence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	ev := &domain.Evidence{
		ID:         "ev-1",
		DeliveryID: "d-1",
		Type:       domain.EvidenceSignature,
		Vector:     []byte(`[[1,2]]`),
		CreatedAt:  time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO delivery_evidence").
			WithArgs(ev.ID, ev.DeliveryID, ev.Type, ev.URL, ev.PublicID, ev.Format, ev.Bytes, ev.Vector, ev.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.CreateEvidence(ctx, ev))
	})

	t.Run("duplicate public id maps to the sentinel", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO delivery_evidence").
			WithArgs(ev.ID, ev.DeliveryID, ev.Type, ev.URL, ev.PublicID, ev.Format, ev.Bytes, ev.Vector, ev.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		assert.ErrorIs(t, r.CreateEvidence(ctx, ev), apperror.ErrEvidenceAlreadyExists)
	})
}
