package main

import (
	"context"

	"github.com/centralia/sales-api/infrastructure/database/postgres"
	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/api"
	"github.com/centralia/sales-api/internal/config"
	"github.com/centralia/sales-api/internal/scheduler"
	"github.com/centralia/sales-api/internal/usecases/alerting"
	"github.com/centralia/sales-api/internal/usecases/authenticating"
	"github.com/centralia/sales-api/internal/usecases/dashboard"
	"github.com/centralia/sales-api/internal/usecases/notice"
	"github.com/centralia/sales-api/internal/usecases/pipeline"
	"github.com/centralia/sales-api/internal/usecases/rituals"
	"github.com/centralia/sales-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)
	meetingRepo := repository.NewMeetingRepository(pgConn)
	sessionRepo := repository.NewCoachingSessionRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)
	alertDigestRepo := repository.NewAlertDigestRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	noticeBoard := notice.NewBoard(notice.WithTTL(cfg.Notices.TTL))
	pipelineService := pipeline.NewService(leadRepo, noticeBoard)
	dashboardService := dashboard.NewService(dashboardRepo)
	alertingService := alerting.NewService(meetingRepo, sessionRepo, pipelineService, dashboardService)
	ritualsService := rituals.NewService(meetingRepo, sessionRepo)

	alertDigestService := scheduler.NewAlertDigestService(userRepo, alertDigestRepo, alertingService, cfg)
	if err := alertDigestService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do resumo diário de alertas")
	} else {
		log.L.Info("Agendador do resumo diário de alertas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:      authenticator,
		Pipeline:           pipelineService,
		Alerting:           alertingService,
		Notices:            noticeBoard,
		Dashboard:          dashboardService,
		Rituals:            ritualsService,
		AlertDigestRepo:    alertDigestRepo,
		AlertDigestService: alertDigestService,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
