package alerting

import (
	"sort"

	"github.com/centralia/sales-api/internal/domain"
)

// Evaluate executa as regras na ordem recebida. Notificações com id repetido são
// descartadas e o resultado é ordenado por prioridade mantendo a ordem das regras.
func Evaluate(c Context, rules []Rule) domain.NotificationResult {
	notifications := make([]domain.Notification, 0, len(rules))
	seen := make(map[string]bool, len(rules))

	for _, rule := range rules {
		n := rule.Evaluate(c)
		if n == nil || seen[n.ID] {
			continue
		}
		seen[n.ID] = true

		if n.Timestamp.IsZero() {
			n.Timestamp = c.Now
		}
		notifications = append(notifications, *n)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Priority.Rank() < notifications[j].Priority.Rank()
	})

	var high int
	for _, n := range notifications {
		if n.Priority == domain.PriorityHigh {
			high++
		}
	}

	return domain.NotificationResult{
		Notifications:     notifications,
		TotalCount:        len(notifications),
		HighPriorityCount: high,
	}
}
