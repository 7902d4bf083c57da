package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	"github.com/centralia/sales-api/infrastructure/database/postgres"
	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/config"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		lastname      TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INT NOT NULL DEFAULT 2,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id                 TEXT PRIMARY KEY,
		owner_id           INT NOT NULL REFERENCES users(id),
		client_name        TEXT NOT NULL,
		email              TEXT,
		phone              TEXT,
		status             TEXT NOT NULL,
		salesperson_id     TEXT,
		salesperson_name   TEXT,
		estimated_value    NUMERIC(14,2),
		source             TEXT,
		next_contact_date  DATE,
		next_contact_notes TEXT,
		comments           TEXT,
		sale_id            TEXT,
		prospecting_date   TIMESTAMPTZ,
		approach_date      TIMESTAMPTZ,
		presentation_date  TIMESTAMPTZ,
		followup_date      TIMESTAMPTZ,
		negotiation_date   TIMESTAMPTZ,
		closing_date       TIMESTAMPTZ,
		post_sale_date     TIMESTAMPTZ,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS leads_owner_created_idx ON leads (owner_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id                     TEXT PRIMARY KEY,
		owner_id               INT NOT NULL REFERENCES users(id),
		month                  INT NOT NULL CHECK (month BETWEEN 1 AND 12),
		year                   INT NOT NULL,
		status                 TEXT NOT NULL,
		monthly_goal           NUMERIC(14,2) NOT NULL DEFAULT 0,
		previous_month_revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
		motivational_theme     TEXT,
		strategies             TEXT,
		notes                  TEXT,
		highlighted_member     TEXT,
		created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (owner_id, year, month)
	)`,
	`CREATE TABLE IF NOT EXISTS coaching_sessions (
		id                  TEXT PRIMARY KEY,
		owner_id            INT NOT NULL REFERENCES users(id),
		salesperson_id      TEXT NOT NULL,
		salesperson_name    TEXT NOT NULL,
		date                DATE NOT NULL,
		week_number         INT NOT NULL,
		weekly_commitment   NUMERIC(14,2) NOT NULL DEFAULT 0,
		weekly_goal         NUMERIC(14,2) NOT NULL DEFAULT 0,
		weekly_realized     NUMERIC(14,2) NOT NULL DEFAULT 0,
		previous_commitment NUMERIC(14,2) NOT NULL DEFAULT 0,
		previous_realized   NUMERIC(14,2) NOT NULL DEFAULT 0,
		status              TEXT NOT NULL,
		transcription       TEXT,
		summary             TEXT,
		sentiment           TEXT,
		commitments         TEXT[],
		concerns            TEXT[],
		confidence_score    NUMERIC(5,2),
		key_points          TEXT[],
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS coaching_sessions_week_idx ON coaching_sessions (owner_id, week_number)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id             TEXT PRIMARY KEY,
		owner_id       INT NOT NULL REFERENCES users(id),
		name           TEXT NOT NULL,
		active         BOOLEAN NOT NULL DEFAULT TRUE,
		is_placeholder BOOLEAN NOT NULL DEFAULT FALSE,
		monthly_goal   NUMERIC(14,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             TEXT PRIMARY KEY,
		owner_id       INT NOT NULL REFERENCES users(id),
		salesperson_id TEXT REFERENCES team_members(id),
		sale_date      DATE NOT NULL,
		amount         NUMERIC(14,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sales_owner_date_idx ON sales (owner_id, sale_date)`,
	`CREATE TABLE IF NOT EXISTS monthly_goals (
		owner_id INT NOT NULL REFERENCES users(id),
		year     INT NOT NULL,
		month    INT NOT NULL CHECK (month BETWEEN 1 AND 12),
		goal     NUMERIC(14,2) NOT NULL,
		PRIMARY KEY (owner_id, year, month)
	)`,
	`CREATE TABLE IF NOT EXISTS alert_digests (
		id                  SERIAL PRIMARY KEY,
		owner_id            INT NOT NULL REFERENCES users(id),
		date                DATE NOT NULL,
		total_count         INT NOT NULL,
		high_priority_count INT NOT NULL,
		notification_ids    TEXT[] NOT NULL DEFAULT '{}',
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (owner_id, date)
	)`,
}

func main() {
	seed := flag.Bool("seed", false, "insere uma conta de demonstração")
	seedEmail := flag.String("seed-email", "demo@centralia.com.br", "email da conta de demonstração")
	seedPassword := flag.String("seed-password", "Demo12345", "senha da conta de demonstração")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel, cfg.App.Env)

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	log.L.Info("Iniciando script de migração...")
	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao aplicar comando %d do schema: %w", i+1, err)
			}
		}

		if *seed {
			return seedDemoAccount(ctx, tx, *seedEmail, *seedPassword)
		}
		return nil
	})
	if err != nil {
		log.L.WithError(err).Fatal("Migração abortada")
	}

	log.L.WithFields(log.Fields{
		"statements": len(schema),
		"seed":       *seed,
		"elapsed":    time.Since(startTime).String(),
	}).Info("Migração concluída")
}

// seedDemoAccount cria um gestor com equipe, metas, vendas e leads do mês corrente
func seedDemoAccount(ctx context.Context, tx *sql.Tx, email, password string) error {
	userRepo := repository.NewUserRepository(tx)

	existing, err := userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.L.WithField("email", email).Info("Conta de demonstração já existe, seed ignorado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := userRepo.CreateUser(ctx, &domain.User{
		Name:         "Gestor",
		Lastname:     "Demo",
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	})
	if err != nil {
		return err
	}

	now := time.Now()
	team := []struct {
		name string
		goal float64
	}{
		{name: "Ana Souza", goal: 40000},
		{name: "Bruno Lima", goal: 35000},
		{name: "Carla Mendes", goal: 30000},
	}

	memberIDs := make([]string, 0, len(team))
	for _, member := range team {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO team_members (id, owner_id, name, monthly_goal) VALUES ($1, $2, $3, $4)`,
			id, user.ID, member.name, member.goal,
		); err != nil {
			return fmt.Errorf("erro ao inserir vendedor %s: %w", member.name, err)
		}
		memberIDs = append(memberIDs, id)
	}

	for month := 1; month <= 12; month++ {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO monthly_goals (owner_id, year, month, goal) VALUES ($1, $2, $3, $4)`,
			user.ID, now.Year(), month, 105000,
		); err != nil {
			return fmt.Errorf("erro ao inserir meta do mês %d: %w", month, err)
		}
	}

	for day := 1; day < now.Day(); day++ {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		saleDate := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sales (id, owner_id, salesperson_id, sale_date, amount) VALUES ($1, $2, $3, $4, $5)`,
			id, user.ID, memberIDs[day%len(memberIDs)], saleDate.Format(time.DateOnly), 2500+float64(day*150),
		); err != nil {
			return fmt.Errorf("erro ao inserir venda: %w", err)
		}
	}

	leadRepo := repository.NewLeadRepository(tx)
	statuses := []domain.LeadStatus{
		domain.LeadStatusProspecting,
		domain.LeadStatusApproach,
		domain.LeadStatusPresentation,
		domain.LeadStatusNegotiation,
	}
	for i, status := range statuses {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		value := float64(2000 * (i + 1))
		lead := &domain.Lead{
			ID:              id,
			OwnerID:         user.ID,
			ClientName:      fmt.Sprintf("Cliente %d", i+1),
			Status:          domain.LeadStatusProspecting,
			EstimatedValue:  &value,
			CreatedAt:       now,
			ProspectingDate: &now,
		}
		if status != domain.LeadStatusProspecting {
			stage, err := domain.StagePatch(status, now)
			if err != nil {
				return err
			}
			stage.UpdatedAt = nil
			lead.Apply(stage)
		}

		if _, err := leadRepo.Create(ctx, lead); err != nil {
			return err
		}
	}

	log.L.WithFields(log.Fields{
		"owner_id": user.ID,
		"email":    email,
	}).Info("Conta de demonstração criada")

	return nil
}
