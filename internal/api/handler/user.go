package handler

import (
	"net/http"

	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/authenticating"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
)

// Register cria a conta de um novo gestor
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("Erro ao decodificar cadastro")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.Register(r.Context(), &req)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		logger.WithField("user_id", user.ID).Info("Usuário cadastrado")
		writeJSON(w, r, http.StatusCreated, user)
	}
}
