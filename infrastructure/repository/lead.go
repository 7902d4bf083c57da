package repository

//go:generate mockgen -source=lead.go -destination=mocks/lead.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/centralia/sales-api/infrastructure/database/postgres"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	leadsTable = "leads"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

var leadColumns = []string{
	"id",
	"owner_id",
	"client_name",
	"email",
	"phone",
	"status",
	"salesperson_id",
	"salesperson_name",
	"estimated_value",
	"source",
	"next_contact_date",
	"next_contact_notes",
	"comments",
	"sale_id",
	"prospecting_date",
	"approach_date",
	"presentation_date",
	"followup_date",
	"negotiation_date",
	"closing_date",
	"post_sale_date",
	"created_at",
	"updated_at",
}

// LeadRepository acessa os leads de uma conta. Toda operação é filtrada por owner_id.
type LeadRepository interface {
	ListByOwner(ctx context.Context, ownerID int) ([]*domain.Lead, error)
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	Update(ctx context.Context, ownerID int, id string, patch domain.LeadPatch) (*domain.Lead, error)
	Delete(ctx context.Context, ownerID int, id string) error
}

type leadRepository struct {
	conn postgres.Queryer
}

func NewLeadRepository(conn postgres.Queryer) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func listLeadsQuery(ownerID int) squirrel.SelectBuilder {
	return squirrel.
		Select(leadColumns...).
		From(leadsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *leadRepository) ListByOwner(ctx context.Context, ownerID int) ([]*domain.Lead, error) {
	query, args, err := listLeadsQuery(ownerID).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError(err, "erro ao buscar leads")
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear lead")
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return leads, nil
}

// insertLeadQuery grava todas as datas de estágio já carimbadas no lead
func insertLeadQuery(lead *domain.Lead) squirrel.InsertBuilder {
	return squirrel.
		Insert(leadsTable).
		Columns(
			"id",
			"owner_id",
			"client_name",
			"email",
			"phone",
			"status",
			"salesperson_id",
			"salesperson_name",
			"estimated_value",
			"source",
			"next_contact_date",
			"next_contact_notes",
			"comments",
			"sale_id",
			"prospecting_date",
			"approach_date",
			"presentation_date",
			"followup_date",
			"negotiation_date",
			"closing_date",
			"post_sale_date",
			"created_at",
		).
		Values(
			lead.ID,
			lead.OwnerID,
			lead.ClientName,
			lead.Email,
			lead.Phone,
			string(lead.Status),
			lead.SalespersonID,
			lead.SalespersonName,
			lead.EstimatedValue,
			lead.Source,
			lead.NextContactDate,
			lead.NextContactNotes,
			lead.Comments,
			lead.SaleID,
			lead.ProspectingDate,
			lead.ApproachDate,
			lead.PresentationDate,
			lead.FollowupDate,
			lead.NegotiationDate,
			lead.ClosingDate,
			lead.PostSaleDate,
			lead.CreatedAt,
		).
		Suffix("RETURNING " + joinColumns(leadColumns)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	query, args, err := insertLeadQuery(lead).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	created, err := scanLead(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapPqError(err, "erro ao inserir lead")
	}

	return created, nil
}

func updateLeadQuery(ownerID int, id string, patch domain.LeadPatch) squirrel.UpdateBuilder {
	return squirrel.
		Update(leadsTable).
		SetMap(patch.Columns()).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + joinColumns(leadColumns)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *leadRepository) Update(ctx context.Context, ownerID int, id string, patch domain.LeadPatch) (*domain.Lead, error) {
	if len(patch.Columns()) == 0 {
		return nil, errors.New("nenhum campo para atualizar")
	}

	query, args, err := updateLeadQuery(ownerID, id, patch).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	updated, err := scanLead(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, wrapPqError(err, "erro ao atualizar lead")
	}

	return updated, nil
}

func (r *leadRepository) Delete(ctx context.Context, ownerID int, id string) error {
	query, args, err := squirrel.
		Delete(leadsTable).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPqError(err, "erro ao excluir lead")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter linhas afetadas")
	}

	if affected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var lead domain.Lead
	var status string

	err := row.Scan(
		&lead.ID,
		&lead.OwnerID,
		&lead.ClientName,
		&lead.Email,
		&lead.Phone,
		&status,
		&lead.SalespersonID,
		&lead.SalespersonName,
		&lead.EstimatedValue,
		&lead.Source,
		&lead.NextContactDate,
		&lead.NextContactNotes,
		&lead.Comments,
		&lead.SaleID,
		&lead.ProspectingDate,
		&lead.ApproachDate,
		&lead.PresentationDate,
		&lead.FollowupDate,
		&lead.NegotiationDate,
		&lead.ClosingDate,
		&lead.PostSaleDate,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Status = domain.LeadStatus(status)
	return &lead, nil
}

// wrapPqError inclui o código do Postgres na mensagem quando disponível
func wrapPqError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errors.Wrap(err, fmt.Sprintf("%s (código: %s)", message, pqErr.Code))
	}
	return errors.Wrap(err, message)
}
