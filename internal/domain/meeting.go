package domain

import "time"

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusPending   MeetingStatus = "pending"
)

func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusCompleted, MeetingStatusPending:
		return true
	}
	return false
}

// Meeting é a RMR (reunião mensal de resultados) de uma conta
type Meeting struct {
	ID                   string        `json:"id"`
	OwnerID              int           `json:"owner_id"`
	Month                int           `json:"month"`
	Year                 int           `json:"year"`
	Status               MeetingStatus `json:"status"`
	MonthlyGoal          float64       `json:"monthly_goal"`
	PreviousMonthRevenue float64       `json:"previous_month_revenue"`
	MotivationalTheme    *string       `json:"motivational_theme"`
	Strategies           *string       `json:"strategies"`
	Notes                *string       `json:"notes"`
	HighlightedMember    *string       `json:"highlighted_member"`
	CreatedAt            time.Time     `json:"created_at"`
}

type CreateMeetingRequest struct {
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	Status               *string `json:"status,omitempty"`
	MonthlyGoal          float64 `json:"monthly_goal"`
	PreviousMonthRevenue float64 `json:"previous_month_revenue"`
	MotivationalTheme    *string `json:"motivational_theme,omitempty"`
	Strategies           *string `json:"strategies,omitempty"`
	Notes                *string `json:"notes,omitempty"`
	HighlightedMember    *string `json:"highlighted_member,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
