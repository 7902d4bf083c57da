package alerting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/centralia/sales-api/internal/domain"
)

// LeadSource fornece a projeção de leads de uma conta
type LeadSource interface {
	Leads(ctx context.Context, ownerID int) []*domain.Lead
}

// SnapshotSource fornece o agregado do dashboard do ano corrente
type SnapshotSource interface {
	Snapshot(ctx context.Context, ownerID int) (*domain.DashboardSnapshot, error)
}
