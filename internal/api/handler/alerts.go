package handler

import (
	"net/http"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/alerting"
	"github.com/centralia/sales-api/internal/usecases/dashboard"
	"github.com/centralia/sales-api/internal/usecases/notice"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
)

// GetNotifications avalia as regras de alerta da conta no momento da chamada
func GetNotifications(service *alerting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.Notifications(r.Context(), owner))
	}
}

// GetNotices esvazia a fila de avisos da conta
func GetNotices(board *notice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, board.Drain(owner))
	}
}

func GetDashboard(service *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		snapshot, err := service.Snapshot(r.Context(), owner)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"owner_id": owner,
				"error":    err.Error(),
			}).Error("Erro ao montar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar dashboard", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	}
}

// ListAlertDigests devolve o histórico de resumos diários; limit padrão do repositório
func ListAlertDigests(repo repository.AlertDigestRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		limit, err := queryInt(r, "limit")
		if err != nil || limit < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
			return
		}

		digests, err := repo.ListByOwner(r.Context(), owner, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar resumos de alertas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar resumos de alertas", nil)
			return
		}
		if digests == nil {
			digests = []*domain.AlertDigest{}
		}

		writeJSON(w, r, http.StatusOK, digests)
	}
}
