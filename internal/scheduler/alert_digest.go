// Package scheduler contém os serviços agendados da API
package scheduler

//go:generate mockgen -source=alert_digest.go -destination=mocks/alert_digest.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/config"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/metrics"
	"github.com/go-co-op/gocron"
)

// AlertEvaluator avalia as regras de alerta de uma conta
type AlertEvaluator interface {
	Notifications(ctx context.Context, ownerID int) domain.NotificationResult
}

type AlertDigestConfig struct {
	CronSchedule      string
	Enabled           bool
	MaxConcurrentJobs int
}

type AlertDigestService struct {
	scheduler   *gocron.Scheduler
	userRepo    repository.UserRepository
	digestRepo  repository.AlertDigestRepository
	evaluator   AlertEvaluator
	config      AlertDigestConfig
	now         func() time.Time
	syncRunning bool
	syncMutex   sync.Mutex

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastProcessed       int
	lastFailed          int
}

func NewAlertDigestService(
	userRepo repository.UserRepository,
	digestRepo repository.AlertDigestRepository,
	evaluator AlertEvaluator,
	cfg *config.Config,
) *AlertDigestService {
	digestConfig := AlertDigestConfig{
		CronSchedule:      cfg.AlertDigest.CronSchedule,
		Enabled:           cfg.AlertDigest.Enabled,
		MaxConcurrentJobs: cfg.AlertDigest.MaxConcurrentJobs,
	}
	if digestConfig.MaxConcurrentJobs <= 0 {
		digestConfig.MaxConcurrentJobs = 1
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":  digestConfig.CronSchedule,
		"enabled":        digestConfig.Enabled,
		"max_concurrent": digestConfig.MaxConcurrentJobs,
	}).Info("Configuração do resumo diário de alertas carregada")

	return &AlertDigestService{
		scheduler:  gocron.NewScheduler(time.Local),
		userRepo:   userRepo,
		digestRepo: digestRepo,
		evaluator:  evaluator,
		config:     digestConfig,
		now:        time.Now,
	}
}

func (s *AlertDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Resumo diário de alertas desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador do resumo diário de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest avalia os alertas de todas as contas ativas e grava um resumo por conta no dia.
// Retorna false quando já existe uma execução em andamento.
func (s *AlertDigestService) RunDigest(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Resumo diário de alertas já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	processed, failed := 0, 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastProcessed = processed
		s.lastFailed = failed
		s.syncMutex.Unlock()
	}()

	users, err := s.userRepo.ListActiveUsers(ctx)
	if err != nil {
		log.L.WithError(err).Error("Erro ao buscar usuários para o resumo diário de alertas")
		return true
	}

	if len(users) == 0 {
		log.L.Info("Nenhum usuário ativo para o resumo diário de alertas")
		return true
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, s.config.MaxConcurrentJobs)
	)

	for _, user := range users {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(ownerID int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			ok := s.processOwner(ctx, ownerID)

			mu.Lock()
			if ok {
				processed++
			} else {
				failed++
			}
			mu.Unlock()
		}(user.ID)
	}

	wg.Wait()

	log.L.WithFields(log.Fields{
		"processed": processed,
		"failed":    failed,
	}).Info("Resumo diário de alertas concluído")

	return true
}

func (s *AlertDigestService) processOwner(ctx context.Context, ownerID int) bool {
	result := s.evaluator.Notifications(ctx, ownerID)

	ids := make([]string, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		ids = append(ids, n.ID)
	}

	now := s.now()
	digest := &domain.AlertDigest{
		OwnerID:           ownerID,
		Date:              time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		TotalCount:        result.TotalCount,
		HighPriorityCount: result.HighPriorityCount,
		NotificationIDs:   ids,
	}

	if err := s.digestRepo.SaveOrUpdate(ctx, digest); err != nil {
		log.L.WithFields(log.Fields{
			"owner_id": ownerID,
			"error":    err.Error(),
		}).Error("Erro ao gravar resumo diário de alertas")
		metrics.AlertDigestRuns.WithLabelValues(metrics.ResultError).Inc()
		return false
	}

	metrics.AlertDigestRuns.WithLabelValues(metrics.ResultSuccess).Inc()
	return true
}

// TriggerManualSync dispara o resumo fora do horário agendado
func (s *AlertDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Resumo diário de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando resumo manual de alertas")
	go s.RunDigest(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AlertDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_processed":         s.lastProcessed,
		"last_failed":            s.lastFailed,
	}
}
