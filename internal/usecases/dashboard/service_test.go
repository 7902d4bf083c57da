package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository/mocks"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Snapshot(t *testing.T) {
	now := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockDashboardRepository)
		validate func(t *testing.T, snapshot *domain.DashboardSnapshot, err error)
	}{
		{
			name: "Monta série de 12 meses, equipe e KPIs do mês",
			setup: func(repo *mocks.MockDashboardRepository) {
				repo.EXPECT().MonthlySales(gomock.Any(), 4, 2024).Return([]domain.MonthlySalesTotal{
					{Month: 1, Revenue: 50000, SalesCount: 10},
					{Month: 3, Revenue: 30000, SalesCount: 4},
				}, nil)
				repo.EXPECT().MonthlyGoals(gomock.Any(), 4, 2024).Return(map[int]float64{1: 60000, 3: 120000}, nil)
				repo.EXPECT().TeamPerformance(gomock.Any(), 4, monthStart, monthEnd).Return([]domain.TeamMember{
					{ID: "1", Name: "Ana", Active: true, MonthlyGoal: 60000, TotalRevenue: 20000},
				}, nil)
			},
			validate: func(t *testing.T, snapshot *domain.DashboardSnapshot, err error) {
				require.NoError(t, err)
				require.Len(t, snapshot.Months, 12)
				assert.Equal(t, 2024, snapshot.Year)
				assert.Equal(t, domain.MonthlyRevenue{Month: "Jan", Revenue: 50000, Goal: 60000}, snapshot.Months[0])
				assert.Equal(t, domain.MonthlyRevenue{Month: "Fev"}, snapshot.Months[1])
				assert.Equal(t, "Dez", snapshot.Months[11].Month)

				entry, ok := snapshot.MonthEntry(time.March)
				require.True(t, ok)
				assert.Equal(t, 30000.0, entry.Revenue)

				assert.Len(t, snapshot.Team, 1)
				assert.Equal(t, domain.DashboardKPIs{
					TotalRevenue:  30000,
					Goal:          120000,
					Progress:      25,
					SalesCount:    4,
					AverageTicket: 7500,
				}, snapshot.KPIs)
			},
		},
		{
			name: "Mês sem vendas e sem meta zera os KPIs",
			setup: func(repo *mocks.MockDashboardRepository) {
				repo.EXPECT().MonthlySales(gomock.Any(), 4, 2024).Return([]domain.MonthlySalesTotal{}, nil)
				repo.EXPECT().MonthlyGoals(gomock.Any(), 4, 2024).Return(map[int]float64{}, nil)
				repo.EXPECT().TeamPerformance(gomock.Any(), 4, monthStart, monthEnd).Return([]domain.TeamMember{}, nil)
			},
			validate: func(t *testing.T, snapshot *domain.DashboardSnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.DashboardKPIs{}, snapshot.KPIs)
			},
		},
		{
			name: "Erro nas metas interrompe a montagem",
			setup: func(repo *mocks.MockDashboardRepository) {
				repo.EXPECT().MonthlySales(gomock.Any(), 4, 2024).Return([]domain.MonthlySalesTotal{}, nil)
				repo.EXPECT().MonthlyGoals(gomock.Any(), 4, 2024).Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, snapshot *domain.DashboardSnapshot, err error) {
				assert.Nil(t, snapshot)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao buscar metas do ano")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDashboardRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, WithClock(func() time.Time { return now }))
			snapshot, err := service.Snapshot(context.Background(), 4)

			tt.validate(t, snapshot, err)
		})
	}
}
