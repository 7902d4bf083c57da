package domain

import "time"

type CoachingSessionStatus string

const (
	CoachingSessionStatusScheduled CoachingSessionStatus = "scheduled"
	CoachingSessionStatusCompleted CoachingSessionStatus = "completed"
	CoachingSessionStatusCancelled CoachingSessionStatus = "cancelled"
)

func (s CoachingSessionStatus) IsValid() bool {
	switch s {
	case CoachingSessionStatusScheduled, CoachingSessionStatusCompleted, CoachingSessionStatusCancelled:
		return true
	}
	return false
}

// CoachingSession é a FIVI semanal entre gestor e vendedor.
// Somente sessões concluídas entram nas estatísticas.
type CoachingSession struct {
	ID                 string                `json:"id"`
	OwnerID            int                   `json:"owner_id"`
	SalespersonID      string                `json:"salesperson_id"`
	SalespersonName    string                `json:"salesperson_name"`
	Date               time.Time             `json:"date"`
	WeekNumber         int                   `json:"week_number"`
	WeeklyCommitment   float64               `json:"weekly_commitment"`
	WeeklyGoal         float64               `json:"weekly_goal"`
	WeeklyRealized     float64               `json:"weekly_realized"`
	PreviousCommitment float64               `json:"previous_commitment"`
	PreviousRealized   float64               `json:"previous_realized"`
	Status             CoachingSessionStatus `json:"status"`
	Transcription      *string               `json:"transcription"`
	Summary            *string               `json:"summary"`
	Sentiment          *string               `json:"sentiment"`
	Commitments        []string              `json:"commitments"`
	Concerns           []string              `json:"concerns"`
	ConfidenceScore    *float64              `json:"confidence_score"`
	KeyPoints          []string              `json:"key_points"`
	CreatedAt          time.Time             `json:"created_at"`
}

func (s *CoachingSession) IsCompleted() bool {
	return s.Status == CoachingSessionStatusCompleted
}

type CreateCoachingSessionRequest struct {
	SalespersonID      string   `json:"salesperson_id"`
	SalespersonName    string   `json:"salesperson_name"`
	Date               string   `json:"date"` // Formato yyyy-mm-dd
	WeekNumber         *int     `json:"week_number,omitempty"`
	WeeklyCommitment   float64  `json:"weekly_commitment"`
	WeeklyGoal         float64  `json:"weekly_goal"`
	WeeklyRealized     float64  `json:"weekly_realized"`
	PreviousCommitment float64  `json:"previous_commitment"`
	PreviousRealized   float64  `json:"previous_realized"`
	Status             *string  `json:"status,omitempty"`
	Transcription      *string  `json:"transcription,omitempty"`
	Summary            *string  `json:"summary,omitempty"`
	Sentiment          *string  `json:"sentiment,omitempty"`
	Commitments        []string `json:"commitments,omitempty"`
	Concerns           []string `json:"concerns,omitempty"`
	ConfidenceScore    *float64 `json:"confidence_score,omitempty"`
	KeyPoints          []string `json:"key_points,omitempty"`
}

// CommitmentStats consolida o cumprimento de compromissos de um vendedor
type CommitmentStats struct {
	SalespersonID   string  `json:"salesperson_id"`
	SalespersonName string  `json:"salesperson_name"`
	Sessions        int     `json:"sessions"`
	TotalCommitment float64 `json:"total_commitment"`
	TotalRealized   float64 `json:"total_realized"`
	Fulfillment     float64 `json:"fulfillment"`
}
