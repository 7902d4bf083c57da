package alerting

import (
	"fmt"
	"strings"
	"time"

	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/pipeline"
	"github.com/centralia/sales-api/pkg/utils"
)

// Identificadores fixos das notificações
const (
	IDRMRPending         = "rmr-pending"
	IDRMRIncomplete      = "rmr-incomplete"
	IDFIVIPending        = "fivi-pending"
	IDLeadsStalled       = "leads-stalled"
	IDContactsDue        = "contacts-due"
	IDGoalAtRisk         = "goal-at-risk"
	IDTeamUnderperformed = "team-underperforming"
)

const (
	rmrUrgentAfterDay = 5

	stalledLeadAge        = 7 * 24 * time.Hour
	highValueLeadAmount   = 5000.0
	fiviUrgentFromWeekday = time.Thursday

	goalRiskMinDay       = 5
	goalRiskTolerance    = 20.0
	goalRiskHighShortage = 30.0

	underperformMinDay    = 15
	underperformThreshold = 70.0
	underperformHighCount = 2

	fiviNamesShown         = 3
	underperformNamesShown = 2
)

// Context é a entrada somente leitura das regras
type Context struct {
	Now      time.Time
	Meetings []*domain.Meeting
	Sessions []*domain.CoachingSession
	Leads    []*domain.Lead
	Snapshot *domain.DashboardSnapshot
}

// Rule avalia uma condição e devolve no máximo uma notificação
type Rule struct {
	Name     string
	Evaluate func(c Context) *domain.Notification
}

// DefaultRules retorna as regras na ordem de avaliação
func DefaultRules() []Rule {
	return []Rule{
		{Name: "rmr", Evaluate: monthlyRitualRule},
		{Name: "fivi", Evaluate: weeklyCoachingRule},
		{Name: "stalled-leads", Evaluate: stalledLeadsRule},
		{Name: "contacts-due", Evaluate: contactsDueRule},
		{Name: "goal-at-risk", Evaluate: goalAtRiskRule},
		{Name: "team-underperforming", Evaluate: underperformingTeamRule},
	}
}

func monthlyRitualRule(c Context) *domain.Notification {
	month, year := int(c.Now.Month()), c.Now.Year()

	var meeting *domain.Meeting
	for _, m := range c.Meetings {
		if m != nil && m.Month == month && m.Year == year {
			meeting = m
			break
		}
	}

	action := &domain.NotificationAction{Label: "Fazer RMR", View: "rmr"}

	if meeting == nil {
		priority := domain.PriorityMedium
		if c.Now.Day() > rmrUrgentAfterDay {
			priority = domain.PriorityHigh
		}

		return &domain.Notification{
			ID:          IDRMRPending,
			Type:        domain.NotificationTypeRitual,
			Priority:    priority,
			Title:       "RMR Pendente",
			Description: fmt.Sprintf("A Reunião Mensal de Resultados de %s/%d ainda não foi realizada.", domain.MonthShortName(c.Now.Month()), year),
			Action:      action,
		}
	}

	if meeting.Status != domain.MeetingStatusCompleted {
		return &domain.Notification{
			ID:          IDRMRIncomplete,
			Type:        domain.NotificationTypeRitual,
			Priority:    domain.PriorityMedium,
			Title:       "RMR Incompleta",
			Description: "A RMR deste mês foi criada mas ainda não foi concluída.",
			Action:      action,
		}
	}

	return nil
}

func weeklyCoachingRule(c Context) *domain.Notification {
	members := c.Snapshot.ActiveMembers()
	if len(members) == 0 {
		return nil
	}

	week := WeekNumber(c.Now)
	done := make(map[string]bool)
	for _, session := range c.Sessions {
		if session != nil && session.WeekNumber == week && session.IsCompleted() {
			done[session.SalespersonID] = true
		}
	}

	pending := make([]string, 0)
	for _, member := range members {
		if !done[member.ID] {
			pending = append(pending, member.Name)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	priority := domain.PriorityMedium
	if c.Now.Weekday() >= fiviUrgentFromWeekday {
		priority = domain.PriorityHigh
	}

	return &domain.Notification{
		ID:          IDFIVIPending,
		Type:        domain.NotificationTypeRitual,
		Priority:    priority,
		Title:       "FIVIs Pendentes",
		Description: fmt.Sprintf("%d vendedor(es) sem FIVI nesta semana: %s", len(pending), summarizeNames(pending, fiviNamesShown)),
		Action:      &domain.NotificationAction{Label: "Fazer FIVI", View: "fivi"},
	}
}

func stalledLeadsRule(c Context) *domain.Notification {
	limit := c.Now.Add(-stalledLeadAge)

	var stalled int
	var highValue bool
	for _, lead := range c.Leads {
		if lead.Status.IsTerminal() || !lead.LastActivityAt().Before(limit) {
			continue
		}

		stalled++
		if lead.Value() >= highValueLeadAmount {
			highValue = true
		}
	}
	if stalled == 0 {
		return nil
	}

	priority := domain.PriorityMedium
	if highValue {
		priority = domain.PriorityHigh
	}

	return &domain.Notification{
		ID:          IDLeadsStalled,
		Type:        domain.NotificationTypeLead,
		Priority:    priority,
		Title:       "Leads Parados",
		Description: fmt.Sprintf("%d lead(s) sem atualização há mais de 7 dias.", stalled),
		Action:      &domain.NotificationAction{Label: "Ver Pipeline", View: "pipeline"},
	}
}

func contactsDueRule(c Context) *domain.Notification {
	overdue := pipeline.OverdueContacts(c.Leads, c.Now)
	today := pipeline.TodayContacts(c.Leads, c.Now)
	if len(overdue)+len(today) == 0 {
		return nil
	}

	priority := domain.PriorityMedium
	parts := make([]string, 0, 2)
	if len(overdue) > 0 {
		priority = domain.PriorityHigh
		parts = append(parts, fmt.Sprintf("%d atrasado(s)", len(overdue)))
	}
	if len(today) > 0 {
		parts = append(parts, fmt.Sprintf("%d para hoje", len(today)))
	}

	return &domain.Notification{
		ID:          IDContactsDue,
		Type:        domain.NotificationTypeLead,
		Priority:    priority,
		Title:       "Contatos Pendentes",
		Description: fmt.Sprintf("Contatos agendados: %s.", strings.Join(parts, " e ")),
		Action:      &domain.NotificationAction{Label: "Ver Pipeline", View: "pipeline"},
	}
}

func goalAtRiskRule(c Context) *domain.Notification {
	entry, ok := c.Snapshot.MonthEntry(c.Now.Month())
	if !ok || entry.Goal <= 0 {
		return nil
	}

	day := c.Now.Day()
	progress := entry.Revenue / entry.Goal * 100
	expected := float64(day) / 30 * 100

	if progress >= expected-goalRiskTolerance || day <= goalRiskMinDay {
		return nil
	}

	daysLeft := utils.DaysInMonth(c.Now) - day
	if daysLeft < 1 {
		daysLeft = 1
	}
	dailyNeeded := (entry.Goal - entry.Revenue) / float64(daysLeft)

	priority := domain.PriorityMedium
	if expected-progress > goalRiskHighShortage {
		priority = domain.PriorityHigh
	}

	return &domain.Notification{
		ID:       IDGoalAtRisk,
		Type:     domain.NotificationTypeGoal,
		Priority: priority,
		Title:    "Meta em Risco",
		Description: fmt.Sprintf(
			"Progresso de %.0f%% contra %.0f%% esperado. Faltam %s por dia para bater a meta.",
			progress, expected, utils.FormatCurrency(dailyNeeded),
		),
		Action: &domain.NotificationAction{Label: "Ver Dashboard", View: "dashboard"},
	}
}

func underperformingTeamRule(c Context) *domain.Notification {
	if c.Now.Day() <= underperformMinDay {
		return nil
	}

	names := make([]string, 0)
	for _, member := range c.Snapshot.ActiveMembers() {
		if member.MonthlyGoal <= 0 {
			continue
		}
		if member.TotalRevenue/member.MonthlyGoal*100 < underperformThreshold {
			names = append(names, member.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	priority := domain.PriorityMedium
	if len(names) > underperformHighCount {
		priority = domain.PriorityHigh
	}

	return &domain.Notification{
		ID:          IDTeamUnderperformed,
		Type:        domain.NotificationTypeGoal,
		Priority:    priority,
		Title:       "Vendedores Abaixo da Meta",
		Description: fmt.Sprintf("%s abaixo de 70%% da meta do mês.", summarizeNames(names, underperformNamesShown)),
		Action:      &domain.NotificationAction{Label: "Ver Equipe", View: "team"},
	}
}

// summarizeNames junta os primeiros nomes até o limite e acrescenta "+N" para o restante
func summarizeNames(names []string, limit int) string {
	shown := make([]string, 0, limit)
	for i, name := range names {
		if i == limit {
			break
		}
		shown = append(shown, firstName(name))
	}

	summary := strings.Join(shown, ", ")
	if rest := len(names) - len(shown); rest > 0 {
		summary = fmt.Sprintf("%s +%d", summary, rest)
	}
	return summary
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}
