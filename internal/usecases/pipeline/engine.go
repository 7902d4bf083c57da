package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/metrics"
	"github.com/centralia/sales-api/pkg/utils"
	"github.com/pkg/errors"
)

const (
	operationFetch  = "fetch"
	operationCreate = "create"
	operationUpdate = "update"
	operationMove   = "move"
	operationDelete = "delete"
)

// Notifier recebe os avisos exibidos ao usuário depois de cada operação
type Notifier interface {
	Notify(ownerID int, notice domain.Notice)
}

type Option func(*Engine)

// WithClock substitui o relógio usado nos carimbos de data e nas visões
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine mantém a projeção em memória dos leads de uma conta.
// Chamadas ao banco acontecem fora do lock; a projeção só muda depois de sucesso
// e a fatia de leads nunca é alterada in-place.
type Engine struct {
	ownerID  int
	repo     repository.LeadRepository
	notifier Notifier
	now      func() time.Time

	mu      sync.RWMutex
	leads   []*domain.Lead
	version uint64
	loaded  bool
	lastErr error
	cache   *metricsCache

	// mutações concluídas enquanto há busca em andamento; nil marca exclusão
	fetching int
	touched  map[string]*domain.Lead
}

type metricsCache struct {
	version uint64
	day     int
	metrics Metrics
}

func NewEngine(ownerID int, repo repository.LeadRepository, notifier Notifier, opts ...Option) *Engine {
	e := &Engine{
		ownerID:  ownerID,
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		leads:    make([]*domain.Lead, 0),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) OwnerID() int {
	return e.ownerID
}

// Leads retorna a lista atual, mais recentes primeiro
func (e *Engine) Leads() []*domain.Lead {
	e.mu.RLock()
	defer e.mu.RUnlock()

	leads := make([]*domain.Lead, len(e.leads))
	copy(leads, e.leads)
	return leads
}

// Loaded indica se a primeira busca já foi concluída com sucesso
func (e *Engine) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}

// Err retorna o erro da última busca, nil se ela teve sucesso
func (e *Engine) Err() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastErr
}

// Metrics retorna as visões derivadas, recalculadas apenas quando a lista ou o dia mudam
func (e *Engine) Metrics() Metrics {
	now := e.now()
	day := dayKey(now)

	e.mu.RLock()
	if e.cache != nil && e.cache.version == e.version && e.cache.day == day {
		m := e.cache.metrics
		e.mu.RUnlock()
		return m
	}
	leads := e.leads
	version := e.version
	e.mu.RUnlock()

	m := ComputeMetrics(leads, now)

	e.mu.Lock()
	if e.version == version {
		e.cache = &metricsCache{version: version, day: day, metrics: m}
	}
	e.mu.Unlock()

	return m
}

// FetchLeads recarrega todos os leads da conta. Em caso de falha mantém a lista anterior.
// Mutações concluídas durante a busca prevalecem sobre as linhas lidas.
func (e *Engine) FetchLeads(ctx context.Context) {
	e.mu.Lock()
	e.fetching++
	if e.touched == nil {
		e.touched = make(map[string]*domain.Lead)
	}
	e.mu.Unlock()

	leads, err := e.repo.ListByOwner(ctx, e.ownerID)

	e.mu.Lock()
	e.fetching--
	touched := e.touched
	if e.fetching == 0 {
		e.touched = nil
	}
	if err != nil {
		e.lastErr = err
		e.mu.Unlock()

		e.fail(ctx, operationFetch, "", err, "Erro ao carregar leads", "Não foi possível carregar os leads.")
		return
	}

	leads = mergeTouched(leads, touched)
	e.leads = leads
	e.lastErr = nil
	e.loaded = true
	e.version++
	e.mu.Unlock()

	metrics.ObserveLeadOperation(operationFetch, true)
	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id":    e.ownerID,
		"leads_total": len(leads),
	}).Debug("pipeline: leads carregados")
}

// CreateLead insere um novo lead em prospecção e o coloca no topo da lista
func (e *Engine) CreateLead(ctx context.Context, draft domain.Lead) *domain.Lead {
	if draft.Status == "" {
		draft.Status = domain.LeadStatusProspecting
	}
	if !draft.Status.IsValid() {
		e.fail(ctx, operationCreate, "", fmt.Errorf("status de lead inválido: %s", draft.Status), "Erro ao criar lead", "Status inválido.")
		return nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		e.fail(ctx, operationCreate, "", errors.Wrap(err, "erro ao gerar id do lead"), "Erro ao criar lead", "Tente novamente.")
		return nil
	}

	now := e.now()
	draft.ID = id
	draft.OwnerID = e.ownerID
	draft.CreatedAt = now
	draft.UpdatedAt = nil
	draft.ProspectingDate = &now
	if draft.Status != domain.LeadStatusProspecting {
		stage, _ := domain.StagePatch(draft.Status, now)
		stage.UpdatedAt = nil
		draft.Apply(stage)
	}

	created, err := e.repo.Create(ctx, &draft)
	if err != nil {
		e.fail(ctx, operationCreate, id, err, "Erro ao criar lead", "Não foi possível criar o lead.")
		return nil
	}

	e.mu.Lock()
	leads := make([]*domain.Lead, 0, len(e.leads)+1)
	leads = append(leads, created)
	leads = append(leads, e.leads...)
	e.leads = leads
	e.version++
	e.track(created.ID, created)
	e.mu.Unlock()

	e.succeed(ctx, operationCreate, created.ID, "Lead criado", fmt.Sprintf("%s foi adicionado ao pipeline.", created.ClientName))
	return created
}

// UpdateLead aplica uma atualização parcial e substitui o lead pela linha gravada
func (e *Engine) UpdateLead(ctx context.Context, id string, patch domain.LeadPatch) *domain.Lead {
	now := e.now()

	if patch.Status != nil {
		if !patch.Status.IsValid() {
			e.fail(ctx, operationUpdate, id, fmt.Errorf("status de lead inválido: %s", *patch.Status), "Erro ao atualizar lead", "Status inválido.")
			return nil
		}

		// mudança de status pela edição também grava a data do estágio
		if current := e.find(id); current == nil || current.Status != *patch.Status {
			patch.StampStage(now)
		}
	}
	patch.UpdatedAt = &now

	updated, err := e.repo.Update(ctx, e.ownerID, id, patch)
	if err != nil {
		e.fail(ctx, operationUpdate, id, err, "Erro ao atualizar lead", "Não foi possível salvar as alterações.")
		return nil
	}

	e.replace(id, func(*domain.Lead) *domain.Lead { return updated })

	e.succeed(ctx, operationUpdate, id, "Lead atualizado", fmt.Sprintf("%s foi atualizado.", updated.ClientName))
	return updated
}

// MoveToStage grava status, updated_at e a data do estágio em um único update
// e aplica o mesmo patch na cópia em memória, sem nova busca.
func (e *Engine) MoveToStage(ctx context.Context, id string, status domain.LeadStatus) bool {
	patch, err := domain.StagePatch(status, e.now())
	if err != nil {
		e.fail(ctx, operationMove, id, err, "Erro ao mover lead", "Estágio inválido.")
		return false
	}

	if _, err := e.repo.Update(ctx, e.ownerID, id, patch); err != nil {
		e.fail(ctx, operationMove, id, err, "Erro ao mover lead", "Não foi possível mover o lead.")
		return false
	}

	e.replace(id, func(current *domain.Lead) *domain.Lead {
		moved := current.Clone()
		moved.Apply(patch)
		return moved
	})

	e.succeed(ctx, operationMove, id, "Lead movido", fmt.Sprintf("Lead movido para %s.", status.Label()))
	return true
}

// DeleteLead remove o lead do banco e da projeção
func (e *Engine) DeleteLead(ctx context.Context, id string) bool {
	if err := e.repo.Delete(ctx, e.ownerID, id); err != nil {
		e.fail(ctx, operationDelete, id, err, "Erro ao excluir lead", "Não foi possível excluir o lead.")
		return false
	}

	e.mu.Lock()
	leads := make([]*domain.Lead, 0, len(e.leads))
	for _, lead := range e.leads {
		if lead.ID != id {
			leads = append(leads, lead)
		}
	}
	e.leads = leads
	e.version++
	e.track(id, nil)
	e.mu.Unlock()

	e.succeed(ctx, operationDelete, id, "Lead excluído", "O lead foi removido do pipeline.")
	return true
}

// Lead devolve uma cópia do lead carregado, ou nil quando não está na projeção
func (e *Engine) Lead(id string) *domain.Lead {
	return e.find(id).Clone()
}

func (e *Engine) find(id string) *domain.Lead {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, lead := range e.leads {
		if lead.ID == id {
			return lead
		}
	}
	return nil
}

// replace troca o lead indicado por uma nova instância, copiando a fatia
func (e *Engine) replace(id string, fn func(current *domain.Lead) *domain.Lead) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, lead := range e.leads {
		if lead.ID != id {
			continue
		}

		leads := make([]*domain.Lead, len(e.leads))
		copy(leads, e.leads)
		leads[i] = fn(lead)
		e.leads = leads
		e.version++
		e.track(id, leads[i])
		return
	}
}

// track registra a mutação para as buscas em andamento. Exige e.mu travado.
func (e *Engine) track(id string, lead *domain.Lead) {
	if e.fetching > 0 {
		e.touched[id] = lead
	}
}

// mergeTouched aplica sobre as linhas lidas as mutações feitas durante a busca.
// Leads criados nesse intervalo entram no topo, mais recentes primeiro.
func mergeTouched(fetched []*domain.Lead, touched map[string]*domain.Lead) []*domain.Lead {
	if len(touched) == 0 {
		return fetched
	}

	inFetched := make(map[string]bool, len(fetched))
	for _, lead := range fetched {
		inFetched[lead.ID] = true
	}

	created := make([]*domain.Lead, 0)
	for id, lead := range touched {
		if lead != nil && !inFetched[id] {
			created = append(created, lead)
		}
	}
	sort.Slice(created, func(i, j int) bool {
		if created[i].CreatedAt.Equal(created[j].CreatedAt) {
			return created[i].ID < created[j].ID
		}
		return created[i].CreatedAt.After(created[j].CreatedAt)
	})

	merged := make([]*domain.Lead, 0, len(fetched)+len(created))
	merged = append(merged, created...)
	for _, lead := range fetched {
		current, ok := touched[lead.ID]
		if !ok {
			merged = append(merged, lead)
			continue
		}
		if current != nil {
			merged = append(merged, current)
		}
	}

	return merged
}

func (e *Engine) fail(ctx context.Context, operation, leadID string, err error, title, description string) {
	metrics.ObserveLeadOperation(operation, false)

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id":  e.ownerID,
		"lead_id":   leadID,
		"operation": operation,
		"error":     err.Error(),
	}).Error("pipeline: falha na operação de lead")

	e.notify(domain.Notice{
		OwnerID:     e.ownerID,
		Level:       domain.NoticeLevelError,
		Title:       title,
		Description: description,
		CreatedAt:   e.now(),
	})
}

func (e *Engine) succeed(ctx context.Context, operation, leadID string, title, description string) {
	metrics.ObserveLeadOperation(operation, true)

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id":  e.ownerID,
		"lead_id":   leadID,
		"operation": operation,
	}).Info("pipeline: operação de lead concluída")

	e.notify(domain.Notice{
		OwnerID:     e.ownerID,
		Level:       domain.NoticeLevelSuccess,
		Title:       title,
		Description: description,
		CreatedAt:   e.now(),
	})
}

func (e *Engine) notify(notice domain.Notice) {
	if e.notifier == nil {
		return
	}
	e.notifier.Notify(e.ownerID, notice)
}
