package handler

import (
	"net/http"

	"github.com/centralia/sales-api/infrastructure/repository"
	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/rituals"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

func ListMeetings(service *rituals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		year, err := queryInt(r, "year")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		meetings, err := service.ListMeetings(r.Context(), owner, year)
		if err != nil {
			handleRitualError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, meetings)
	}
}

func CreateMeeting(service *rituals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.CreateMeetingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		meeting, err := service.CreateMeeting(r.Context(), owner, &req)
		if err != nil {
			handleRitualError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, meeting)
	}
}

func UpdateMeetingStatus(service *rituals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.UpdateMeetingStatus(r.Context(), owner, id, req.Status); err != nil {
			handleRitualError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListCoachingSessions aceita year, week, salesperson_id e status como filtros
func ListCoachingSessions(service *rituals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		year, err := queryInt(r, "year")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}
		week, err := queryInt(r, "week")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Semana inválida", nil)
			return
		}

		sessions, err := service.ListCoachingSessions(r.Context(), owner, repository.CoachingSessionFilter{
			Year:          year,
			WeekNumber:    week,
			SalespersonID: r.URL.Query().Get("salesperson_id"),
			Status:        domain.CoachingSessionStatus(r.URL.Query().Get("status")),
		})
		if err != nil {
			handleRitualError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, sessions)
	}
}

func CreateCoachingSession(service *rituals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.CreateCoachingSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		session, err := service.CreateCoachingSession(r.Context(), owner, &req)
		if err != nil {
			handleRitualError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, session)
	}
}

func UpdateCoachingSessionStatus(service *rituals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.UpdateCoachingSessionStatus(r.Context(), owner, id, req.Status); err != nil {
			handleRitualError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetCommitmentStats(service *rituals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		year, err := queryInt(r, "year")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		stats, err := service.CommitmentStats(r.Context(), owner, year)
		if err != nil {
			handleRitualError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

func handleRitualError(w http.ResponseWriter, r *http.Request, err error) {
	var ritualErr *rituals.RitualError
	if errors.As(err, &ritualErr) {
		apiErrors.WriteError(w, ritualErr.Code, ritualErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado em rituais")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
