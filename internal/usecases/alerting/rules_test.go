package alerting

import (
	"testing"
	"time"

	"github.com/centralia/sales-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestMonthlyRitualRule(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		meetings []*domain.Meeting
		validate func(t *testing.T, n *domain.Notification)
	}{
		{
			name: "Sem RMR no dia 10 gera pendência alta",
			now:  time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDRMRPending, n.ID)
				assert.Equal(t, domain.NotificationTypeRitual, n.Type)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.Equal(t, "RMR Pendente", n.Title)
				assert.Equal(t, "rmr", n.Action.View)
			},
		},
		{
			name: "Sem RMR no dia 5 ainda é média",
			now:  time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDRMRPending, n.ID)
				assert.Equal(t, domain.PriorityMedium, n.Priority)
			},
		},
		{
			name: "RMR do mesmo mês em outro ano não conta",
			now:  time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
			meetings: []*domain.Meeting{
				{Month: 5, Year: 2023, Status: domain.MeetingStatusCompleted},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDRMRPending, n.ID)
			},
		},
		{
			name: "RMR agendada gera aviso de incompleta",
			now:  time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			meetings: []*domain.Meeting{
				{Month: 5, Year: 2024, Status: domain.MeetingStatusScheduled},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDRMRIncomplete, n.ID)
				assert.Equal(t, domain.PriorityMedium, n.Priority)
			},
		},
		{
			name: "RMR concluída não gera notificação",
			now:  time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			meetings: []*domain.Meeting{
				{Month: 4, Year: 2024, Status: domain.MeetingStatusPending},
				{Month: 5, Year: 2024, Status: domain.MeetingStatusCompleted},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, monthlyRitualRule(Context{Now: tt.now, Meetings: tt.meetings}))
		})
	}
}

func TestWeeklyCoachingRule(t *testing.T) {
	thursday := time.Date(2024, 5, 16, 9, 0, 0, 0, time.UTC)
	wednesday := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	week := WeekNumber(thursday)

	snapshot := &domain.DashboardSnapshot{
		Team: []domain.TeamMember{
			{ID: "1", Name: "Ana Souza", Active: true},
			{ID: "2", Name: "Bruno Lima", Active: true},
			{ID: "3", Name: "Carla", Active: true},
			{ID: "4", Name: "Diego Alves", Active: true},
			{ID: "5", Name: "Eva", Active: true},
			{ID: "6", Name: "Vaga aberta", Active: true, IsPlaceholder: true},
			{ID: "7", Name: "Fábio", Active: false},
		},
	}

	sessions := []*domain.CoachingSession{
		{SalespersonID: "1", WeekNumber: week, Status: domain.CoachingSessionStatusCompleted},
		{SalespersonID: "2", WeekNumber: week - 1, Status: domain.CoachingSessionStatusCompleted},
		{SalespersonID: "3", WeekNumber: week, Status: domain.CoachingSessionStatusScheduled},
	}

	tests := []struct {
		name     string
		c        Context
		validate func(t *testing.T, n *domain.Notification)
	}{
		{
			name: "Quinta-feira com pendentes é alta e resume nomes",
			c:    Context{Now: thursday, Sessions: sessions, Snapshot: snapshot},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDFIVIPending, n.ID)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.Equal(t, "4 vendedor(es) sem FIVI nesta semana: Bruno, Carla, Diego +1", n.Description)
			},
		},
		{
			name: "Quarta-feira é média",
			c:    Context{Now: wednesday, Sessions: sessions, Snapshot: snapshot},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, domain.PriorityMedium, n.Priority)
			},
		},
		{
			name: "Todos com FIVI concluída",
			c: Context{
				Now: thursday,
				Sessions: []*domain.CoachingSession{
					{SalespersonID: "1", WeekNumber: week, Status: domain.CoachingSessionStatusCompleted},
				},
				Snapshot: &domain.DashboardSnapshot{Team: []domain.TeamMember{{ID: "1", Name: "Ana", Active: true}}},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
		{
			name: "Sem snapshot não dispara",
			c:    Context{Now: thursday, Sessions: sessions},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, weeklyCoachingRule(tt.c))
		})
	}
}

func TestStalledLeadsRule(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		leads    []*domain.Lead
		validate func(t *testing.T, n *domain.Notification)
	}{
		{
			name: "Lead de alto valor parado há 10 dias é alta",
			leads: []*domain.Lead{
				{
					Status:         domain.LeadStatusNegotiation,
					EstimatedValue: floatPtr(8000),
					CreatedAt:      now.AddDate(0, -1, 0),
					UpdatedAt:      timePtr(now.AddDate(0, 0, -10)),
				},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDLeadsStalled, n.ID)
				assert.Equal(t, domain.NotificationTypeLead, n.Type)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.Equal(t, "1 lead(s) sem atualização há mais de 7 dias.", n.Description)
			},
		},
		{
			name: "Lead nunca atualizado usa a data de criação",
			leads: []*domain.Lead{
				{Status: domain.LeadStatusProspecting, EstimatedValue: floatPtr(1000), CreatedAt: now.AddDate(0, 0, -8)},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, domain.PriorityMedium, n.Priority)
			},
		},
		{
			name: "Atualização recente e leads fechados",
			leads: []*domain.Lead{
				{Status: domain.LeadStatusApproach, CreatedAt: now.AddDate(0, 0, -30), UpdatedAt: timePtr(now.AddDate(0, 0, -2))},
				{Status: domain.LeadStatusWon, EstimatedValue: floatPtr(9000), CreatedAt: now.AddDate(0, 0, -30)},
				{Status: domain.LeadStatusLost, CreatedAt: now.AddDate(0, 0, -30)},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, stalledLeadsRule(Context{Now: now, Leads: tt.leads}))
		})
	}
}

func TestContactsDueRule(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		leads    []*domain.Lead
		validate func(t *testing.T, n *domain.Notification)
	}{
		{
			name: "Atrasado e de hoje é alta",
			leads: []*domain.Lead{
				{Status: domain.LeadStatusApproach, NextContactDate: timePtr(today.AddDate(0, 0, -1))},
				{Status: domain.LeadStatusFollowup, NextContactDate: timePtr(today)},
				{Status: domain.LeadStatusWon, NextContactDate: timePtr(today.AddDate(0, 0, -3))},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDContactsDue, n.ID)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.Equal(t, "Contatos agendados: 1 atrasado(s) e 1 para hoje.", n.Description)
			},
		},
		{
			name: "Apenas contatos de hoje é média",
			leads: []*domain.Lead{
				{Status: domain.LeadStatusFollowup, NextContactDate: timePtr(today)},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, domain.PriorityMedium, n.Priority)
				assert.Equal(t, "Contatos agendados: 1 para hoje.", n.Description)
			},
		},
		{
			name: "Contato futuro não dispara",
			leads: []*domain.Lead{
				{Status: domain.LeadStatusFollowup, NextContactDate: timePtr(today.AddDate(0, 0, 1))},
				{Status: domain.LeadStatusFollowup},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, contactsDueRule(Context{Now: now, Leads: tt.leads}))
		})
	}
}

func TestGoalAtRiskRule(t *testing.T) {
	snapshotWith := func(revenue, goal float64) *domain.DashboardSnapshot {
		return &domain.DashboardSnapshot{
			Year: 2024,
			Months: []domain.MonthlyRevenue{
				{Month: "Abr", Revenue: 90000, Goal: 100000},
				{Month: "Mai", Revenue: revenue, Goal: goal},
			},
		}
	}

	tests := []struct {
		name     string
		now      time.Time
		snapshot *domain.DashboardSnapshot
		validate func(t *testing.T, n *domain.Notification)
	}{
		{
			name:     "Muito abaixo do esperado é alta",
			now:      time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			snapshot: snapshotWith(20000, 100000),
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDGoalAtRisk, n.ID)
				assert.Equal(t, domain.NotificationTypeGoal, n.Type)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.Contains(t, n.Description, "R$ 7.272,73 por dia")
			},
		},
		{
			name:     "Pouco abaixo da tolerância é média",
			now:      time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			snapshot: snapshotWith(45000, 100000),
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, domain.PriorityMedium, n.Priority)
			},
		},
		{
			name:     "Último dia do mês usa ao menos um dia restante",
			now:      time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC),
			snapshot: snapshotWith(50000, 100000),
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Contains(t, n.Description, "R$ 50.000,00 por dia")
			},
		},
		{
			name:     "Dentro da tolerância",
			now:      time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			snapshot: snapshotWith(50000, 100000),
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
		{
			name:     "Início do mês não dispara",
			now:      time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC),
			snapshot: snapshotWith(0, 100000),
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
		{
			name:     "Meta zerada não dispara",
			now:      time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			snapshot: snapshotWith(0, 0),
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
		{
			name: "Mês ausente na série não dispara",
			now:  time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC),
			snapshot: &domain.DashboardSnapshot{
				Months: []domain.MonthlyRevenue{{Month: "Mai", Revenue: 0, Goal: 100000}},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
		{
			name: "Sem snapshot não dispara",
			now:  time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, goalAtRiskRule(Context{Now: tt.now, Snapshot: tt.snapshot}))
		})
	}
}

func TestUnderperformingTeamRule(t *testing.T) {
	day20 := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		team     []domain.TeamMember
		validate func(t *testing.T, n *domain.Notification)
	}{
		{
			name: "Um vendedor a 60% no dia 20 é média",
			now:  day20,
			team: []domain.TeamMember{
				{ID: "1", Name: "Ana Souza", Active: true, MonthlyGoal: 100000, TotalRevenue: 60000},
				{ID: "2", Name: "Bruno", Active: true, MonthlyGoal: 100000, TotalRevenue: 80000},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, IDTeamUnderperformed, n.ID)
				assert.Equal(t, domain.PriorityMedium, n.Priority)
				assert.Equal(t, "Ana abaixo de 70% da meta do mês.", n.Description)
			},
		},
		{
			name: "Mais de dois vendedores é alta",
			now:  day20,
			team: []domain.TeamMember{
				{ID: "1", Name: "Ana", Active: true, MonthlyGoal: 1000, TotalRevenue: 100},
				{ID: "2", Name: "Bruno", Active: true, MonthlyGoal: 1000, TotalRevenue: 200},
				{ID: "3", Name: "Carla", Active: true, MonthlyGoal: 1000, TotalRevenue: 300},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				require.NotNil(t, n)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.Equal(t, "Ana, Bruno +1 abaixo de 70% da meta do mês.", n.Description)
			},
		},
		{
			name: "Inativos, placeholders e sem meta são ignorados",
			now:  day20,
			team: []domain.TeamMember{
				{ID: "1", Name: "Ana", Active: false, MonthlyGoal: 1000},
				{ID: "2", Name: "Vaga", Active: true, IsPlaceholder: true, MonthlyGoal: 1000},
				{ID: "3", Name: "Carla", Active: true},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
		{
			name: "Antes do dia 16 não avalia",
			now:  time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC),
			team: []domain.TeamMember{
				{ID: "1", Name: "Ana", Active: true, MonthlyGoal: 1000, TotalRevenue: 0},
			},
			validate: func(t *testing.T, n *domain.Notification) {
				assert.Nil(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Context{Now: tt.now, Snapshot: &domain.DashboardSnapshot{Team: tt.team}}
			tt.validate(t, underperformingTeamRule(c))
		})
	}
}

func TestSummarizeNames(t *testing.T) {
	assert.Equal(t, "", summarizeNames(nil, 3))
	assert.Equal(t, "Ana", summarizeNames([]string{"Ana Maria"}, 3))
	assert.Equal(t, "Ana, Bia +2", summarizeNames([]string{"Ana", "Bia", "Caio", "Davi"}, 2))
}
