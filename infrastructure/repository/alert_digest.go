package repository

//go:generate mockgen -source=alert_digest.go -destination=mocks/alert_digest.go -package=mocks

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/centralia/sales-api/infrastructure/database/postgres"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	alertDigestsTable = "alert_digests"

	defaultDigestLimit = 30
)

type AlertDigestRepository interface {
	SaveOrUpdate(ctx context.Context, digest *domain.AlertDigest) error
	ListByOwner(ctx context.Context, ownerID int, limit int) ([]*domain.AlertDigest, error)
}

type alertDigestRepository struct {
	conn postgres.Queryer
}

func NewAlertDigestRepository(conn postgres.Queryer) AlertDigestRepository {
	return &alertDigestRepository{
		conn: conn,
	}
}

func (r *alertDigestRepository) SaveOrUpdate(ctx context.Context, digest *domain.AlertDigest) error {
	query, args, err := squirrel.
		Insert(alertDigestsTable).
		Columns("owner_id", "date", "total_count", "high_priority_count", "notification_ids").
		Values(
			digest.OwnerID,
			digest.Date.Format(time.DateOnly),
			digest.TotalCount,
			digest.HighPriorityCount,
			pq.Array(digest.NotificationIDs),
		).
		Suffix(`
			ON CONFLICT (owner_id, date) DO UPDATE SET
				total_count = EXCLUDED.total_count,
				high_priority_count = EXCLUDED.high_priority_count,
				notification_ids = EXCLUDED.notification_ids,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapPqError(err, "erro ao salvar resumo de alertas")
	}

	return nil
}

func (r *alertDigestRepository) ListByOwner(ctx context.Context, ownerID int, limit int) ([]*domain.AlertDigest, error) {
	if limit <= 0 {
		limit = defaultDigestLimit
	}

	query, args, err := squirrel.
		Select("id", "owner_id", "date", "total_count", "high_priority_count", "notification_ids", "created_at", "updated_at").
		From(alertDigestsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao buscar resumos de alertas")
	}
	defer rows.Close()

	digests := make([]*domain.AlertDigest, 0)
	for rows.Next() {
		var digest domain.AlertDigest
		if err := rows.Scan(
			&digest.ID,
			&digest.OwnerID,
			&digest.Date,
			&digest.TotalCount,
			&digest.HighPriorityCount,
			pq.Array(&digest.NotificationIDs),
			&digest.CreatedAt,
			&digest.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear resumo de alertas")
		}
		digests = append(digests, &digest)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return digests, nil
}
