package handler

import (
	"net/http"
	"strconv"

	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// ownerID extrai a conta dona dos dados das claims; escreve 401 quando ausente
func ownerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}
	return claims.OwnerID(), true
}

// queryInt lê um inteiro opcional da query string; vazio devolve zero
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
