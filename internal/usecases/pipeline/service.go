package pipeline

import (
	"context"
	"sync"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/domain"
)

// Service mantém um Engine por conta. O engine é criado na primeira chamada
// e carregado com a lista de leads do banco.
type Service struct {
	repo     repository.LeadRepository
	notifier Notifier
	opts     []Option

	mu      sync.Mutex
	engines map[int]*Engine
}

func NewService(repo repository.LeadRepository, notifier Notifier, opts ...Option) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		opts:     opts,
		engines:  make(map[int]*Engine),
	}
}

// Engine retorna o engine da conta, buscando os leads se ainda não foram carregados
func (s *Service) Engine(ctx context.Context, ownerID int) *Engine {
	s.mu.Lock()
	engine, ok := s.engines[ownerID]
	if !ok {
		engine = NewEngine(ownerID, s.repo, s.notifier, s.opts...)
		s.engines[ownerID] = engine
	}
	s.mu.Unlock()

	if !engine.Loaded() {
		engine.FetchLeads(ctx)
	}

	return engine
}

// Leads retorna a projeção atual da conta
func (s *Service) Leads(ctx context.Context, ownerID int) []*domain.Lead {
	return s.Engine(ctx, ownerID).Leads()
}

// Forget descarta o engine da conta; a próxima chamada recarrega do banco
func (s *Service) Forget(ownerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.engines, ownerID)
}
