package repository

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard.go -package=mocks

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/centralia/sales-api/infrastructure/database/postgres"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/pkg/errors"
)

const (
	salesTable        = "sales"
	monthlyGoalsTable = "monthly_goals"
	teamMembersTable  = "team_members"
)

// DashboardRepository agrega vendas, metas e equipe usadas no painel
type DashboardRepository interface {
	MonthlySales(ctx context.Context, ownerID int, year int) ([]domain.MonthlySalesTotal, error)
	MonthlyGoals(ctx context.Context, ownerID int, year int) (map[int]float64, error)
	TeamPerformance(ctx context.Context, ownerID int, start, end time.Time) ([]domain.TeamMember, error)
}

type dashboardRepository struct {
	conn postgres.Queryer
}

func NewDashboardRepository(conn postgres.Queryer) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func monthlySalesQuery(ownerID int, year int) squirrel.SelectBuilder {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	return squirrel.
		Select(
			"EXTRACT(MONTH FROM sale_date)::int AS month",
			"COALESCE(SUM(amount), 0) AS revenue",
			"COUNT(*) AS sales_count",
		).
		From(salesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"sale_date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"sale_date": start.AddDate(1, 0, 0).Format(time.DateOnly)}).
		GroupBy("month").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *dashboardRepository) MonthlySales(ctx context.Context, ownerID int, year int) ([]domain.MonthlySalesTotal, error) {
	query, args, err := monthlySalesQuery(ownerID, year).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao agregar vendas mensais")
	}
	defer rows.Close()

	totals := make([]domain.MonthlySalesTotal, 0, 12)
	for rows.Next() {
		var total domain.MonthlySalesTotal
		if err := rows.Scan(&total.Month, &total.Revenue, &total.SalesCount); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendas mensais")
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return totals, nil
}

func (r *dashboardRepository) MonthlyGoals(ctx context.Context, ownerID int, year int) (map[int]float64, error) {
	query, args, err := squirrel.
		Select("month", "goal").
		From(monthlyGoalsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao buscar metas mensais")
	}
	defer rows.Close()

	goals := make(map[int]float64)
	for rows.Next() {
		var month int
		var goal float64
		if err := rows.Scan(&month, &goal); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear meta mensal")
		}
		goals[month] = goal
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return goals, nil
}

func teamPerformanceQuery(ownerID int, start, end time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"tm.id",
			"tm.name",
			"tm.active",
			"tm.is_placeholder",
			"tm.monthly_goal",
			"COALESCE(SUM(s.amount), 0) AS total_revenue",
		).
		From(teamMembersTable+" tm").
		LeftJoin(
			salesTable+" s ON s.salesperson_id = tm.id AND s.owner_id = tm.owner_id AND s.sale_date >= ? AND s.sale_date < ?",
			start.Format(time.DateOnly),
			end.Format(time.DateOnly),
		).
		Where(squirrel.Eq{"tm.owner_id": ownerID}).
		GroupBy("tm.id", "tm.name", "tm.active", "tm.is_placeholder", "tm.monthly_goal").
		OrderBy("tm.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *dashboardRepository) TeamPerformance(ctx context.Context, ownerID int, start, end time.Time) ([]domain.TeamMember, error) {
	query, args, err := teamPerformanceQuery(ownerID, start, end).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao buscar desempenho da equipe")
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Active,
			&member.IsPlaceholder,
			&member.MonthlyGoal,
			&member.TotalRevenue,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear membro da equipe")
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return members, nil
}
