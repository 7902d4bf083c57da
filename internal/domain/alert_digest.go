package domain

import "time"

// AlertDigest é o resumo diário dos alertas de uma conta
type AlertDigest struct {
	ID                int       `json:"id"`
	OwnerID           int       `json:"owner_id"`
	Date              time.Time `json:"date"`
	TotalCount        int       `json:"total_count"`
	HighPriorityCount int       `json:"high_priority_count"`
	NotificationIDs   []string  `json:"notification_ids"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
