package domain

import (
	"fmt"
	"time"
)

// LeadPatch representa uma atualização parcial de lead. Campos nil não são alterados.
type LeadPatch struct {
	ClientName       *string
	Email            *string
	Phone            *string
	Status           *LeadStatus
	SalespersonID    *string
	SalespersonName  *string
	EstimatedValue   *float64
	Source           *string
	NextContactDate  *time.Time
	NextContactNotes *string
	Comments         *string
	SaleID           *string
	ProspectingDate  *time.Time
	ApproachDate     *time.Time
	PresentationDate *time.Time
	FollowupDate     *time.Time
	NegotiationDate  *time.Time
	ClosingDate      *time.Time
	PostSaleDate     *time.Time
	UpdatedAt        *time.Time
}

type stageDate struct {
	Column string
	lead   func(*Lead) **time.Time
	patch  func(*LeadPatch) **time.Time
}

// stageDates é a tabela status -> coluna de data do estágio. Ganho e perdido
// compartilham a data de fechamento.
var stageDates = map[LeadStatus]stageDate{
	LeadStatusProspecting: {
		Column: "prospecting_date",
		lead:   func(l *Lead) **time.Time { return &l.ProspectingDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.ProspectingDate },
	},
	LeadStatusApproach: {
		Column: "approach_date",
		lead:   func(l *Lead) **time.Time { return &l.ApproachDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.ApproachDate },
	},
	LeadStatusPresentation: {
		Column: "presentation_date",
		lead:   func(l *Lead) **time.Time { return &l.PresentationDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.PresentationDate },
	},
	LeadStatusFollowup: {
		Column: "followup_date",
		lead:   func(l *Lead) **time.Time { return &l.FollowupDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.FollowupDate },
	},
	LeadStatusNegotiation: {
		Column: "negotiation_date",
		lead:   func(l *Lead) **time.Time { return &l.NegotiationDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.NegotiationDate },
	},
	LeadStatusWon: {
		Column: "closing_date",
		lead:   func(l *Lead) **time.Time { return &l.ClosingDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.ClosingDate },
	},
	LeadStatusLost: {
		Column: "closing_date",
		lead:   func(l *Lead) **time.Time { return &l.ClosingDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.ClosingDate },
	},
	LeadStatusPostSale: {
		Column: "post_sale_date",
		lead:   func(l *Lead) **time.Time { return &l.PostSaleDate },
		patch:  func(p *LeadPatch) **time.Time { return &p.PostSaleDate },
	},
}

// StageDateColumn retorna a coluna de data associada ao status
func StageDateColumn(status LeadStatus) (string, bool) {
	entry, ok := stageDates[status]
	if !ok {
		return "", false
	}
	return entry.Column, true
}

// StageDate retorna a data registrada para o estágio informado
func (l *Lead) StageDate(status LeadStatus) *time.Time {
	entry, ok := stageDates[status]
	if !ok {
		return nil
	}
	return *entry.lead(l)
}

// StagePatch monta a atualização de uma transição de estágio:
// status, updated_at e a data do novo estágio, todos com o mesmo instante.
func StagePatch(status LeadStatus, at time.Time) (LeadPatch, error) {
	entry, ok := stageDates[status]
	if !ok {
		return LeadPatch{}, fmt.Errorf("status de lead inválido: %s", status)
	}

	patch := LeadPatch{
		Status:    &status,
		UpdatedAt: &at,
	}
	*entry.patch(&patch) = &at

	return patch, nil
}

// StampStage grava a data do estágio do status do patch quando ela ainda não foi informada
func (p *LeadPatch) StampStage(at time.Time) {
	if p.Status == nil {
		return
	}
	entry, ok := stageDates[*p.Status]
	if !ok {
		return
	}
	if field := entry.patch(p); *field == nil {
		*field = &at
	}
}

// Apply aplica o patch sobre o lead. É o único ponto de merge da projeção em memória.
func (l *Lead) Apply(p LeadPatch) {
	if p.ClientName != nil {
		l.ClientName = *p.ClientName
	}
	if p.Email != nil {
		l.Email = p.Email
	}
	if p.Phone != nil {
		l.Phone = p.Phone
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.SalespersonID != nil {
		l.SalespersonID = p.SalespersonID
	}
	if p.SalespersonName != nil {
		l.SalespersonName = p.SalespersonName
	}
	if p.EstimatedValue != nil {
		l.EstimatedValue = p.EstimatedValue
	}
	if p.Source != nil {
		l.Source = p.Source
	}
	if p.NextContactDate != nil {
		l.NextContactDate = p.NextContactDate
	}
	if p.NextContactNotes != nil {
		l.NextContactNotes = p.NextContactNotes
	}
	if p.Comments != nil {
		l.Comments = p.Comments
	}
	if p.SaleID != nil {
		l.SaleID = p.SaleID
	}
	for _, entry := range stageDates {
		if value := *entry.patch(&p); value != nil {
			*entry.lead(l) = value
		}
	}
	if p.UpdatedAt != nil {
		l.UpdatedAt = p.UpdatedAt
	}
}

// Columns converte o patch no mapa coluna -> valor usado no UPDATE
func (p LeadPatch) Columns() map[string]any {
	columns := make(map[string]any)

	if p.ClientName != nil {
		columns["client_name"] = *p.ClientName
	}
	if p.Email != nil {
		columns["email"] = *p.Email
	}
	if p.Phone != nil {
		columns["phone"] = *p.Phone
	}
	if p.Status != nil {
		columns["status"] = string(*p.Status)
	}
	if p.SalespersonID != nil {
		columns["salesperson_id"] = *p.SalespersonID
	}
	if p.SalespersonName != nil {
		columns["salesperson_name"] = *p.SalespersonName
	}
	if p.EstimatedValue != nil {
		columns["estimated_value"] = *p.EstimatedValue
	}
	if p.Source != nil {
		columns["source"] = *p.Source
	}
	if p.NextContactDate != nil {
		columns["next_contact_date"] = *p.NextContactDate
	}
	if p.NextContactNotes != nil {
		columns["next_contact_notes"] = *p.NextContactNotes
	}
	if p.Comments != nil {
		columns["comments"] = *p.Comments
	}
	if p.SaleID != nil {
		columns["sale_id"] = *p.SaleID
	}
	for _, entry := range stageDates {
		if value := *entry.patch(&p); value != nil {
			columns[entry.Column] = *value
		}
	}
	if p.UpdatedAt != nil {
		columns["updated_at"] = *p.UpdatedAt
	}

	return columns
}

// IsEmpty indica se o patch não altera nenhum campo além de updated_at
func (p LeadPatch) IsEmpty() bool {
	columns := p.Columns()
	delete(columns, "updated_at")
	return len(columns) == 0
}
