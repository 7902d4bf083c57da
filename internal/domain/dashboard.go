package domain

import "time"

// MonthShortNames são os rótulos da série mensal, indexados por mês - 1
var MonthShortNames = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

func MonthShortName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return MonthShortNames[m-1]
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Goal    float64 `json:"goal"`
}

type TeamMember struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Active        bool    `json:"active"`
	IsPlaceholder bool    `json:"is_placeholder"`
	TotalRevenue  float64 `json:"total_revenue"`
	MonthlyGoal   float64 `json:"monthly_goal"`
}

type DashboardKPIs struct {
	TotalRevenue  float64 `json:"total_revenue"`
	Goal          float64 `json:"goal"`
	Progress      float64 `json:"progress"`
	SalesCount    int     `json:"sales_count"`
	AverageTicket float64 `json:"average_ticket"`
}

// DashboardSnapshot é o agregado do ano corrente consumido pelos alertas
type DashboardSnapshot struct {
	Year   int              `json:"year"`
	Months []MonthlyRevenue `json:"months"`
	Team   []TeamMember     `json:"team"`
	KPIs   DashboardKPIs    `json:"kpis"`
}

// MonthEntry busca a entrada da série pelo nome curto do mês
func (d *DashboardSnapshot) MonthEntry(m time.Month) (MonthlyRevenue, bool) {
	if d == nil {
		return MonthlyRevenue{}, false
	}

	name := MonthShortName(m)
	for _, entry := range d.Months {
		if entry.Month == name {
			return entry, true
		}
	}
	return MonthlyRevenue{}, false
}

// ActiveMembers retorna os membros ativos que não são placeholders
func (d *DashboardSnapshot) ActiveMembers() []TeamMember {
	if d == nil {
		return nil
	}

	members := make([]TeamMember, 0, len(d.Team))
	for _, member := range d.Team {
		if member.Active && !member.IsPlaceholder {
			members = append(members, member)
		}
	}
	return members
}

// MonthlySalesTotal é a linha agregada de vendas por mês
type MonthlySalesTotal struct {
	Month      int
	Revenue    float64
	SalesCount int
}
