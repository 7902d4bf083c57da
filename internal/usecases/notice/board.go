package notice

import (
	"sync"
	"time"

	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/utils"
)

const (
	defaultCapacity = 50
	defaultTTL      = 15 * time.Minute
)

// Board guarda os avisos pendentes de cada conta até o cliente buscá-los.
// Quando a fila enche, os avisos mais antigos são descartados; avisos mais
// velhos que o TTL expiram mesmo sem leitura.
type Board struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	notices   map[int][]domain.Notice
	lastSweep time.Time
}

type Option func(*Board)

// WithTTL define a validade de um aviso não lido. Zero ou negativo desliga a expiração.
func WithTTL(ttl time.Duration) Option {
	return func(b *Board) {
		b.ttl = ttl
	}
}

func NewBoard(opts ...Option) *Board {
	b := &Board{
		capacity: defaultCapacity,
		ttl:      defaultTTL,
		now:      time.Now,
		notices:  make(map[int][]domain.Notice),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Notify enfileira o aviso para a conta
func (b *Board) Notify(ownerID int, notice domain.Notice) {
	now := b.now()
	if notice.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			log.L.WithFields(log.Fields{"owner_id": ownerID, "error": err.Error()}).Warn("avisos: erro ao gerar id")
		}
		notice.ID = id
	}
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = now
	}
	notice.OwnerID = ownerID

	b.mu.Lock()
	defer b.mu.Unlock()

	b.sweep(now)

	queue := append(b.live(b.notices[ownerID], now), notice)
	if len(queue) > b.capacity {
		queue = queue[len(queue)-b.capacity:]
	}
	b.notices[ownerID] = queue
}

// Drain devolve e remove os avisos válidos da conta, do mais antigo para o mais novo
func (b *Board) Drain(ownerID int) []domain.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue := b.live(b.notices[ownerID], b.now())
	delete(b.notices, ownerID)

	if queue == nil {
		return make([]domain.Notice, 0)
	}
	return queue
}

// Pending retorna quantos avisos válidos aguardam leitura
func (b *Board) Pending(ownerID int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live(b.notices[ownerID], b.now()))
}

// live filtra os avisos expirados sem alterar a fatia recebida
func (b *Board) live(queue []domain.Notice, now time.Time) []domain.Notice {
	if b.ttl <= 0 || len(queue) == 0 {
		return queue
	}

	kept := make([]domain.Notice, 0, len(queue))
	for _, notice := range queue {
		if now.Sub(notice.CreatedAt) < b.ttl {
			kept = append(kept, notice)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// sweep remove as contas cujos avisos expiraram todos. Roda no máximo uma vez por TTL
// e exige b.mu travado.
func (b *Board) sweep(now time.Time) {
	if b.ttl <= 0 || now.Sub(b.lastSweep) < b.ttl {
		return
	}
	b.lastSweep = now

	for ownerID, queue := range b.notices {
		queue = b.live(queue, now)
		if queue == nil {
			delete(b.notices, ownerID)
			continue
		}
		b.notices[ownerID] = queue
	}
}
