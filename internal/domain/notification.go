package domain

import "time"

type NotificationType string

const (
	NotificationTypeRitual NotificationType = "ritual"
	NotificationTypeLead   NotificationType = "lead"
	NotificationTypeGoal   NotificationType = "goal"
	NotificationTypeInfo   NotificationType = "info"
)

type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

var priorityRanks = map[NotificationPriority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Rank retorna a posição da prioridade na ordenação (high primeiro)
func (p NotificationPriority) Rank() int {
	if rank, ok := priorityRanks[p]; ok {
		return rank
	}
	return len(priorityRanks)
}

type NotificationAction struct {
	Label string `json:"label"`
	View  string `json:"view"`
}

// Notification é um alerta derivado; não é persistido
type Notification struct {
	ID          string               `json:"id"`
	Type        NotificationType     `json:"type"`
	Priority    NotificationPriority `json:"priority"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Action      *NotificationAction  `json:"action,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
}

type NotificationResult struct {
	Notifications     []Notification `json:"notifications"`
	TotalCount        int            `json:"total_count"`
	HighPriorityCount int            `json:"high_priority_count"`
}
