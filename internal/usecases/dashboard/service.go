package dashboard

import (
	"context"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/utils"
	"github.com/pkg/errors"
)

type Service struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.DashboardRepository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Snapshot monta o agregado do ano corrente: série mensal, equipe e KPIs do mês
func (s *Service) Snapshot(ctx context.Context, ownerID int) (*domain.DashboardSnapshot, error) {
	now := s.now()
	year := now.Year()

	sales, err := s.repo.MonthlySales(ctx, ownerID, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do ano")
	}

	goals, err := s.repo.MonthlyGoals(ctx, ownerID, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar metas do ano")
	}

	monthStart := time.Date(year, now.Month(), 1, 0, 0, 0, 0, now.Location())
	team, err := s.repo.TeamPerformance(ctx, ownerID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar desempenho da equipe")
	}

	snapshot := &domain.DashboardSnapshot{
		Year:   year,
		Months: buildMonths(sales, goals),
		Team:   team,
		KPIs:   buildKPIs(sales, goals, int(now.Month())),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id":      ownerID,
		"year":          year,
		"team_members":  len(team),
		"month_revenue": snapshot.KPIs.TotalRevenue,
	}).Debug("dashboard: snapshot montado")

	return snapshot, nil
}

func buildMonths(sales []domain.MonthlySalesTotal, goals map[int]float64) []domain.MonthlyRevenue {
	revenues := make(map[int]float64, len(sales))
	for _, total := range sales {
		revenues[total.Month] = total.Revenue
	}

	months := make([]domain.MonthlyRevenue, 0, len(domain.MonthShortNames))
	for i, name := range domain.MonthShortNames {
		month := i + 1
		months = append(months, domain.MonthlyRevenue{
			Month:   name,
			Revenue: utils.RoundWithTwoDecimalPlace(revenues[month]),
			Goal:    goals[month],
		})
	}
	return months
}

func buildKPIs(sales []domain.MonthlySalesTotal, goals map[int]float64, month int) domain.DashboardKPIs {
	kpis := domain.DashboardKPIs{Goal: goals[month]}

	for _, total := range sales {
		if total.Month == month {
			kpis.TotalRevenue = utils.RoundWithTwoDecimalPlace(total.Revenue)
			kpis.SalesCount = total.SalesCount
			break
		}
	}

	if kpis.Goal > 0 {
		kpis.Progress = utils.RoundWithTwoDecimalPlace(kpis.TotalRevenue / kpis.Goal * 100)
	}
	if kpis.SalesCount > 0 {
		kpis.AverageTicket = utils.RoundWithTwoDecimalPlace(kpis.TotalRevenue / float64(kpis.SalesCount))
	}

	return kpis
}
