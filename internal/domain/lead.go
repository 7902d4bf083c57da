package domain

import (
	"time"
)

type LeadStatus string

const (
	LeadStatusProspecting  LeadStatus = "prospeccao"
	LeadStatusApproach     LeadStatus = "abordagem"
	LeadStatusPresentation LeadStatus = "apresentacao"
	LeadStatusFollowup     LeadStatus = "followup"
	LeadStatusNegotiation  LeadStatus = "negociacao"
	LeadStatusWon          LeadStatus = "fechado_ganho"
	LeadStatusLost         LeadStatus = "fechado_perdido"
	LeadStatusPostSale     LeadStatus = "pos_venda"
)

// LeadStatuses lista todos os estágios do pipeline na ordem de exibição
var LeadStatuses = []LeadStatus{
	LeadStatusProspecting,
	LeadStatusApproach,
	LeadStatusPresentation,
	LeadStatusFollowup,
	LeadStatusNegotiation,
	LeadStatusWon,
	LeadStatusLost,
	LeadStatusPostSale,
}

// FunnelSequence é a sequência usada no cálculo de conversão (perdidos ficam de fora)
var FunnelSequence = []LeadStatus{
	LeadStatusProspecting,
	LeadStatusApproach,
	LeadStatusPresentation,
	LeadStatusFollowup,
	LeadStatusNegotiation,
	LeadStatusWon,
	LeadStatusPostSale,
}

var leadStatusLabels = map[LeadStatus]string{
	LeadStatusProspecting:  "Prospecção",
	LeadStatusApproach:     "Abordagem",
	LeadStatusPresentation: "Apresentação",
	LeadStatusFollowup:     "Follow-up",
	LeadStatusNegotiation:  "Negociação",
	LeadStatusWon:          "Fechado (Ganho)",
	LeadStatusLost:         "Fechado (Perdido)",
	LeadStatusPostSale:     "Pós-venda",
}

// activeStatuses são os estágios considerados "em andamento"
var activeStatuses = map[LeadStatus]bool{
	LeadStatusProspecting:  true,
	LeadStatusApproach:     true,
	LeadStatusPresentation: true,
	LeadStatusFollowup:     true,
	LeadStatusNegotiation:  true,
	LeadStatusWon:          false,
	LeadStatusLost:         false,
	LeadStatusPostSale:     false,
}

func (s LeadStatus) IsValid() bool {
	_, ok := leadStatusLabels[s]
	return ok
}

func (s LeadStatus) Label() string {
	if label, ok := leadStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsActive indica se o estágio conta para o valor e a quantidade do pipeline
func (s LeadStatus) IsActive() bool {
	return activeStatuses[s]
}

// IsTerminal indica se o lead já foi fechado (ganho ou perdido)
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusWon || s == LeadStatusLost
}

type Lead struct {
	ID               string     `json:"id"`
	OwnerID          int        `json:"owner_id"`
	ClientName       string     `json:"client_name"`
	Email            *string    `json:"email"`
	Phone            *string    `json:"phone"`
	Status           LeadStatus `json:"status"`
	SalespersonID    *string    `json:"salesperson_id"`
	SalespersonName  *string    `json:"salesperson_name"`
	EstimatedValue   *float64   `json:"estimated_value"`
	Source           *string    `json:"source"`
	NextContactDate  *time.Time `json:"next_contact_date"`
	NextContactNotes *string    `json:"next_contact_notes"`
	Comments         *string    `json:"comments"`
	SaleID           *string    `json:"sale_id"`
	ProspectingDate  *time.Time `json:"prospecting_date"`
	ApproachDate     *time.Time `json:"approach_date"`
	PresentationDate *time.Time `json:"presentation_date"`
	FollowupDate     *time.Time `json:"followup_date"`
	NegotiationDate  *time.Time `json:"negotiation_date"`
	ClosingDate      *time.Time `json:"closing_date"`
	PostSaleDate     *time.Time `json:"post_sale_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// Value retorna o valor estimado do lead ou zero quando não informado
func (l *Lead) Value() float64 {
	if l.EstimatedValue == nil {
		return 0
	}
	return *l.EstimatedValue
}

// LastActivityAt retorna a última atualização do lead, ou a criação se nunca foi atualizado
func (l *Lead) LastActivityAt() time.Time {
	if l.UpdatedAt != nil && !l.UpdatedAt.IsZero() {
		return *l.UpdatedAt
	}
	return l.CreatedAt
}

// Clone devolve uma cópia rasa; os ponteiros continuam compartilhados mas nunca são
// alterados in-place pelo merge.
func (l *Lead) Clone() *Lead {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

type CreateLeadRequest struct {
	ClientName       string   `json:"client_name"`
	Email            *string  `json:"email,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	SalespersonID    *string  `json:"salesperson_id,omitempty"`
	SalespersonName  *string  `json:"salesperson_name,omitempty"`
	EstimatedValue   *float64 `json:"estimated_value,omitempty"`
	Source           *string  `json:"source,omitempty"`
	NextContactDate  *string  `json:"next_contact_date,omitempty"` // Formato yyyy-mm-dd
	NextContactNotes *string  `json:"next_contact_notes,omitempty"`
	Comments         *string  `json:"comments,omitempty"`
}

type UpdateLeadRequest struct {
	ClientName       *string  `json:"client_name,omitempty"`
	Email            *string  `json:"email,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Status           *string  `json:"status,omitempty"`
	SalespersonID    *string  `json:"salesperson_id,omitempty"`
	SalespersonName  *string  `json:"salesperson_name,omitempty"`
	EstimatedValue   *float64 `json:"estimated_value,omitempty"`
	Source           *string  `json:"source,omitempty"`
	NextContactDate  *string  `json:"next_contact_date,omitempty"`
	NextContactNotes *string  `json:"next_contact_notes,omitempty"`
	Comments         *string  `json:"comments,omitempty"`
	SaleID           *string  `json:"sale_id,omitempty"`
}

type MoveLeadRequest struct {
	Status string `json:"status"`
}
