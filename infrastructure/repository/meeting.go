package repository

//go:generate mockgen -source=meeting.go -destination=mocks/meeting.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/centralia/sales-api/infrastructure/database/postgres"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	meetingsTable = "meetings"

	uniqueViolation = "23505"
)

var (
	ErrMeetingNotFound      = errors.New("reunião não encontrada")
	ErrMeetingAlreadyExists = errors.New("já existe uma RMR para este mês")
)

var meetingColumns = []string{
	"id",
	"owner_id",
	"month",
	"year",
	"status",
	"monthly_goal",
	"previous_month_revenue",
	"motivational_theme",
	"strategies",
	"notes",
	"highlighted_member",
	"created_at",
}

type MeetingRepository interface {
	ListByYear(ctx context.Context, ownerID int, year int) ([]*domain.Meeting, error)
	GetByMonth(ctx context.Context, ownerID int, month, year int) (*domain.Meeting, error)
	Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error)
	UpdateStatus(ctx context.Context, ownerID int, id string, status domain.MeetingStatus) error
}

type meetingRepository struct {
	conn postgres.Queryer
}

func NewMeetingRepository(conn postgres.Queryer) MeetingRepository {
	return &meetingRepository{
		conn: conn,
	}
}

func (r *meetingRepository) ListByYear(ctx context.Context, ownerID int, year int) ([]*domain.Meeting, error) {
	query, args, err := squirrel.
		Select(meetingColumns...).
		From(meetingsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "year": year}).
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao buscar reuniões")
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear reunião")
		}
		meetings = append(meetings, meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return meetings, nil
}

func (r *meetingRepository) GetByMonth(ctx context.Context, ownerID int, month, year int) (*domain.Meeting, error) {
	query, args, err := squirrel.
		Select(meetingColumns...).
		From(meetingsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	meeting, err := scanMeeting(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapPqError(err, "erro ao buscar reunião do mês")
	}

	return meeting, nil
}

func (r *meetingRepository) Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	query, args, err := squirrel.
		Insert(meetingsTable).
		Columns(meetingColumns...).
		Values(
			meeting.ID,
			meeting.OwnerID,
			meeting.Month,
			meeting.Year,
			string(meeting.Status),
			meeting.MonthlyGoal,
			meeting.PreviousMonthRevenue,
			meeting.MotivationalTheme,
			meeting.Strategies,
			meeting.Notes,
			meeting.HighlightedMember,
			meeting.CreatedAt,
		).
		Suffix("RETURNING " + joinColumns(meetingColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	created, err := scanMeeting(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrMeetingAlreadyExists
		}
		return nil, wrapPqError(err, "erro ao inserir reunião")
	}

	return created, nil
}

func (r *meetingRepository) UpdateStatus(ctx context.Context, ownerID int, id string, status domain.MeetingStatus) error {
	query, args, err := squirrel.
		Update(meetingsTable).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPqError(err, "erro ao atualizar status da reunião")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter linhas afetadas")
	}

	if affected == 0 {
		return ErrMeetingNotFound
	}

	return nil
}

func scanMeeting(row rowScanner) (*domain.Meeting, error) {
	var meeting domain.Meeting
	var status string

	err := row.Scan(
		&meeting.ID,
		&meeting.OwnerID,
		&meeting.Month,
		&meeting.Year,
		&status,
		&meeting.MonthlyGoal,
		&meeting.PreviousMonthRevenue,
		&meeting.MotivationalTheme,
		&meeting.Strategies,
		&meeting.Notes,
		&meeting.HighlightedMember,
		&meeting.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	meeting.Status = domain.MeetingStatus(status)
	return &meeting, nil
}
