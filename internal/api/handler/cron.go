package handler

import (
	"net/http"

	"github.com/centralia/sales-api/internal/scheduler"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAlertDigest = "alert-digest"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AlertDigestService *scheduler.AlertDigestService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAlertDigest, CronJobTypeAll:
			if services.AlertDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo de alertas não disponível", nil)
				return
			}
			services.AlertDigestService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: alert-digest, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AlertDigestService != nil {
			status[CronJobTypeAlertDigest] = services.AlertDigestService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
