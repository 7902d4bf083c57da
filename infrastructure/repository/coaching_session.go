package repository

//go:generate mockgen -source=coaching_session.go -destination=mocks/coaching_session.go -package=mocks

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
	coachingSessionsTable = "coaching_sessions"
)

var ErrCoachingSessionNotFound = errors.New("sessão de FIVI não encontrada")

var coachingSessionColumns = []string{
	"id",
	"owner_id",
	"salesperson_id",
	"salesperson_name",
	"date",
	"week_number",
	"weekly_commitment",
	"weekly_goal",
	"weekly_realized",
	"previous_commitment",
	"previous_realized",
	"status",
	"transcription",
	"summary",
	"sentiment",
	"commitments",
	"concerns",
	"confidence_score",
	"key_points",
	"created_at",
}

// CoachingSessionFilter restringe a busca de sessões. Campos zerados não filtram.
type CoachingSessionFilter struct {
	Year          int
	WeekNumber    int
	SalespersonID string
	Status        domain.CoachingSessionStatus
}

type CoachingSessionRepository interface {
	List(ctx context.Context, ownerID int, filter CoachingSessionFilter) ([]*domain.CoachingSession, error)
	Create(ctx context.Context, session *domain.CoachingSession) (*domain.CoachingSession, error)
	UpdateStatus(ctx context.Context, ownerID int, id string, status domain.CoachingSessionStatus) error
}

type coachingSessionRepository struct {
	conn postgres.Queryer
}

func NewCoachingSessionRepository(conn postgres.Queryer) CoachingSessionRepository {
	return &coachingSessionRepository{
		conn: conn,
	}
}

func listCoachingSessionsQuery(ownerID int, filter CoachingSessionFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(coachingSessionColumns...).
		From(coachingSessionsTable).
		Where(squirrel.Eq{"owner_id": ownerID})

	if filter.Year > 0 {
		start := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		builder = builder.
			Where(squirrel.GtOrEq{"date": start.Format(time.DateOnly)}).
			Where(squirrel.Lt{"date": start.AddDate(1, 0, 0).Format(time.DateOnly)})
	}

	if filter.WeekNumber > 0 {
		builder = builder.Where(squirrel.Eq{"week_number": filter.WeekNumber})
	}

	if filter.SalespersonID != "" {
		builder = builder.Where(squirrel.Eq{"salesperson_id": filter.SalespersonID})
	}

	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	return builder.
		OrderBy("date DESC", "salesperson_name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *coachingSessionRepository) List(ctx context.Context, ownerID int, filter CoachingSessionFilter) ([]*domain.CoachingSession, error) {
	query, args, err := listCoachingSessionsQuery(ownerID, filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao buscar sessões de FIVI")
	}
	defer rows.Close()

	sessions := make([]*domain.CoachingSession, 0)
	for rows.Next() {
		session, err := scanCoachingSession(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear sessão de FIVI")
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sessions, nil
}

func (r *coachingSessionRepository) Create(ctx context.Context, session *domain.CoachingSession) (*domain.CoachingSession, error) {
	query, args, err := squirrel.
		Insert(coachingSessionsTable).
		Columns(coachingSessionColumns...).
		Values(
			session.ID,
			session.OwnerID,
			session.SalespersonID,
			session.SalespersonName,
			session.Date.Format(time.DateOnly),
			session.WeekNumber,
			session.WeeklyCommitment,
			session.WeeklyGoal,
			session.WeeklyRealized,
			session.PreviousCommitment,
			session.PreviousRealized,
			string(session.Status),
			session.Transcription,
			session.Summary,
			session.Sentiment,
			pq.Array(session.Commitments),
			pq.Array(session.Concerns),
			session.ConfidenceScore,
			pq.Array(session.KeyPoints),
			session.CreatedAt,
		).
		Suffix("RETURNING " + joinColumns(coachingSessionColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	created, err := scanCoachingSession(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapPqError(err, "erro ao inserir sessão de FIVI")
	}

	return created, nil
}

func (r *coachingSessionRepository) UpdateStatus(ctx context.Context, ownerID int, id string, status domain.CoachingSessionStatus) error {
	query, args, err := squirrel.
		Update(coachingSessionsTable).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPqError(err, "erro ao atualizar status da sessão de FIVI")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter linhas afetadas")
	}

	if affected == 0 {
		return ErrCoachingSessionNotFound
	}

	return nil
}

func scanCoachingSession(row rowScanner) (*domain.CoachingSession, error) {
	var session domain.CoachingSession
	var status string

	err := row.Scan(
		&session.ID,
		&session.OwnerID,
		&session.SalespersonID,
		&session.SalespersonName,
		&session.Date,
		&session.WeekNumber,
		&session.WeeklyCommitment,
		&session.WeeklyGoal,
		&session.WeeklyRealized,
		&session.PreviousCommitment,
		&session.PreviousRealized,
		&status,
		&session.Transcription,
		&session.Summary,
		&session.Sentiment,
		pq.Array(&session.Commitments),
		pq.Array(&session.Concerns),
		&session.ConfidenceScore,
		pq.Array(&session.KeyPoints),
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.Status = domain.CoachingSessionStatus(status)
	return &session, nil
}
