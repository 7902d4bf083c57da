package pipeline

import (
	"time"

	"github.com/centralia/sales-api/internal/domain"
)

const lostLeadsWindow = 30 * 24 * time.Hour

// FunnelStage é a linha do funil de conversão de um estágio
type FunnelStage struct {
	Status         domain.LeadStatus `json:"status"`
	Label          string            `json:"label"`
	Count          int               `json:"count"`
	Value          float64           `json:"value"`
	ConversionRate float64           `json:"conversion_rate"`
}

// Metrics reúne as visões derivadas da lista de leads de uma conta
type Metrics struct {
	LeadsByStatus      map[domain.LeadStatus][]*domain.Lead `json:"leads_by_status"`
	TodayContacts      []*domain.Lead                       `json:"today_contacts"`
	OverdueContacts    []*domain.Lead                       `json:"overdue_contacts"`
	Funnel             []FunnelStage                        `json:"funnel"`
	TotalPipelineValue float64                              `json:"total_pipeline_value"`
	TotalActiveLeads   int                                  `json:"total_active_leads"`
	LostLeadsCount     int                                  `json:"lost_leads_count"`
	LossRate           float64                              `json:"loss_rate"`
}

// ComputeMetrics calcula todas as visões de uma vez
func ComputeMetrics(leads []*domain.Lead, now time.Time) Metrics {
	return Metrics{
		LeadsByStatus:      LeadsByStatus(leads),
		TodayContacts:      TodayContacts(leads, now),
		OverdueContacts:    OverdueContacts(leads, now),
		Funnel:             FunnelMetrics(leads),
		TotalPipelineValue: TotalPipelineValue(leads),
		TotalActiveLeads:   TotalActiveLeads(leads),
		LostLeadsCount:     LostLeadsCount(leads, now),
		LossRate:           LossRate(leads),
	}
}

// LeadsByStatus agrupa os leads por estágio. As 8 chaves estão sempre presentes.
func LeadsByStatus(leads []*domain.Lead) map[domain.LeadStatus][]*domain.Lead {
	grouped := make(map[domain.LeadStatus][]*domain.Lead, len(domain.LeadStatuses))
	for _, status := range domain.LeadStatuses {
		grouped[status] = make([]*domain.Lead, 0)
	}

	for _, lead := range leads {
		if _, ok := grouped[lead.Status]; !ok {
			continue
		}
		grouped[lead.Status] = append(grouped[lead.Status], lead)
	}

	return grouped
}

// dayKey converte a data do calendário em um inteiro comparável (aaaammdd),
// usando o fuso da própria data
func dayKey(t time.Time) int {
	year, month, day := t.Date()
	return year*10000 + int(month)*100 + day
}

func contactsBy(leads []*domain.Lead, now time.Time, match func(contact, today int) bool) []*domain.Lead {
	today := dayKey(now)

	contacts := make([]*domain.Lead, 0)
	for _, lead := range leads {
		if lead.NextContactDate == nil || lead.Status.IsTerminal() {
			continue
		}
		if match(dayKey(*lead.NextContactDate), today) {
			contacts = append(contacts, lead)
		}
	}
	return contacts
}

// TodayContacts retorna os leads em aberto com contato marcado para hoje
func TodayContacts(leads []*domain.Lead, now time.Time) []*domain.Lead {
	return contactsBy(leads, now, func(contact, today int) bool { return contact == today })
}

// OverdueContacts retorna os leads em aberto com contato vencido
func OverdueContacts(leads []*domain.Lead, now time.Time) []*domain.Lead {
	return contactsBy(leads, now, func(contact, today int) bool { return contact < today })
}

// FunnelMetrics calcula quantidade, valor e conversão para a sequência do funil.
// A conversão é relativa ao estágio anterior; o primeiro estágio é sempre 100.
func FunnelMetrics(leads []*domain.Lead) []FunnelStage {
	counts := make(map[domain.LeadStatus]int, len(domain.FunnelSequence))
	values := make(map[domain.LeadStatus]float64, len(domain.FunnelSequence))
	for _, lead := range leads {
		counts[lead.Status]++
		values[lead.Status] += lead.Value()
	}

	stages := make([]FunnelStage, 0, len(domain.FunnelSequence))
	for i, status := range domain.FunnelSequence {
		stage := FunnelStage{
			Status: status,
			Label:  status.Label(),
			Count:  counts[status],
			Value:  values[status],
		}

		if i == 0 {
			stage.ConversionRate = 100
		} else if previous := counts[domain.FunnelSequence[i-1]]; previous > 0 {
			stage.ConversionRate = float64(stage.Count) / float64(previous) * 100
		}

		stages = append(stages, stage)
	}

	return stages
}

// TotalPipelineValue soma o valor estimado dos estágios ativos
func TotalPipelineValue(leads []*domain.Lead) float64 {
	var total float64
	for _, lead := range leads {
		if lead.Status.IsActive() {
			total += lead.Value()
		}
	}
	return total
}

func TotalActiveLeads(leads []*domain.Lead) int {
	var total int
	for _, lead := range leads {
		if lead.Status.IsActive() {
			total++
		}
	}
	return total
}

// LostLeadsCount conta os leads perdidos com fechamento nos últimos 30 dias
func LostLeadsCount(leads []*domain.Lead, now time.Time) int {
	since := now.Add(-lostLeadsWindow)

	var total int
	for _, lead := range leads {
		if lead.Status != domain.LeadStatusLost || lead.ClosingDate == nil {
			continue
		}
		if !lead.ClosingDate.Before(since) {
			total++
		}
	}
	return total
}

// LossRate = perdidos / (ganhos + perdidos) * 100, zero quando não há fechamentos
func LossRate(leads []*domain.Lead) float64 {
	var won, lost int
	for _, lead := range leads {
		switch lead.Status {
		case domain.LeadStatusWon:
			won++
		case domain.LeadStatusLost:
			lost++
		}
	}

	if won+lost == 0 {
		return 0
	}
	return float64(lost) / float64(won+lost) * 100
}
