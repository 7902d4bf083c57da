package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/api/handler"
	"github.com/centralia/sales-api/internal/api/handler/router"
	"github.com/centralia/sales-api/internal/config"
	"github.com/centralia/sales-api/internal/scheduler"
	"github.com/centralia/sales-api/internal/usecases/alerting"
	"github.com/centralia/sales-api/internal/usecases/authenticating"
	"github.com/centralia/sales-api/internal/usecases/dashboard"
	"github.com/centralia/sales-api/internal/usecases/notice"
	"github.com/centralia/sales-api/internal/usecases/pipeline"
	"github.com/centralia/sales-api/internal/usecases/rituals"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/middleware"
	"github.com/go-chi/httprate"
	"github.com/justinas/alice"
)

// Services agrupa as dependências expostas pela API
type Services struct {
	Authenticator      authenticating.Authenticator
	Pipeline           *pipeline.Service
	Alerting           *alerting.Service
	Notices            *notice.Board
	Dashboard          *dashboard.Service
	Rituals            *rituals.Service
	AlertDigestRepo    repository.AlertDigestRepository
	AlertDigestService *scheduler.AlertDigestService
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		AlertDigestService: services.AlertDigestService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Leads(services.Pipeline)...),
		router.WithRoutes(handler.Alerts(services.Alerting, services.Notices, services.Dashboard, services.AlertDigestRepo)...),
		router.WithRoutes(handler.Rituals(services.Rituals)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	rateLimit := cfg.Server.RateLimitPerMinute
	if rateLimit <= 0 {
		rateLimit = 120
	}

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		httprate.LimitByIP(rateLimit, time.Minute),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
