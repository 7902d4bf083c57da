package handler

import (
	"net/http"
	"strings"

	"github.com/centralia/sales-api/internal/domain"
	"github.com/centralia/sales-api/internal/usecases/pipeline"
	"github.com/centralia/sales-api/pkg/apiErrors"
	"github.com/centralia/sales-api/pkg/log"
	"github.com/centralia/sales-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// ListLeads devolve a projeção de leads da conta. refresh=true força nova leitura do banco.
func ListLeads(service *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		engine := service.Engine(r.Context(), owner)
		if r.URL.Query().Get("refresh") == "true" {
			engine.FetchLeads(r.Context())
		}

		if !engine.Loaded() {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Não foi possível carregar os leads", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, engine.Leads())
	}
}

func CreateLead(service *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req domain.CreateLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		draft, err := leadFromRequest(req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data do próximo contato inválida", "Use o formato yyyy-mm-dd")
			return
		}
		if strings.TrimSpace(draft.ClientName) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O nome do cliente é obrigatório", nil)
			return
		}

		created := service.Engine(r.Context(), owner).CreateLead(r.Context(), draft)
		if created == nil {
			apiErrors.WriteError(w, apiErrors.ErrLeadOperation, "Não foi possível criar o lead", nil)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateLead(service *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		engine := service.Engine(r.Context(), owner)
		if engine.Lead(id) == nil {
			apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)
			return
		}

		var req domain.UpdateLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		patch, err := patchFromRequest(req)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data do próximo contato inválida", "Use o formato yyyy-mm-dd")
			return
		}

		updated := engine.UpdateLead(r.Context(), id, patch)
		if updated == nil {
			apiErrors.WriteError(w, apiErrors.ErrLeadOperation, "Não foi possível atualizar o lead", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

// MoveLead troca o estágio do lead no funil
func MoveLead(service *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		engine := service.Engine(r.Context(), owner)
		if engine.Lead(id) == nil {
			apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)
			return
		}

		var req domain.MoveLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		status := domain.LeadStatus(req.Status)
		if !engine.MoveToStage(r.Context(), id, status) {
			if !status.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Estágio inválido", req.Status)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrLeadOperation, "Não foi possível mover o lead", nil)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"owner_id": owner,
			"lead_id":  id,
			"status":   status,
		}).Debug("Lead movido via API")

		writeJSON(w, r, http.StatusOK, engine.Lead(id))
	}
}

func DeleteLead(service *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		engine := service.Engine(r.Context(), owner)
		if engine.Lead(id) == nil {
			apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)
			return
		}

		if !engine.DeleteLead(r.Context(), id) {
			apiErrors.WriteError(w, apiErrors.ErrLeadOperation, "Não foi possível excluir o lead", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetPipelineMetrics devolve as visões derivadas do funil
func GetPipelineMetrics(service *pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, service.Engine(r.Context(), owner).Metrics())
	}
}

func leadFromRequest(req domain.CreateLeadRequest) (domain.Lead, error) {
	nextContact, err := utils.ParseOptionalDate(req.NextContactDate)
	if err != nil {
		return domain.Lead{}, err
	}

	return domain.Lead{
		ClientName:       strings.TrimSpace(req.ClientName),
		Email:            req.Email,
		Phone:            req.Phone,
		SalespersonID:    req.SalespersonID,
		SalespersonName:  req.SalespersonName,
		EstimatedValue:   req.EstimatedValue,
		Source:           req.Source,
		NextContactDate:  nextContact,
		NextContactNotes: req.NextContactNotes,
		Comments:         req.Comments,
	}, nil
}

func patchFromRequest(req domain.UpdateLeadRequest) (domain.LeadPatch, error) {
	nextContact, err := utils.ParseOptionalDate(req.NextContactDate)
	if err != nil {
		return domain.LeadPatch{}, err
	}

	patch := domain.LeadPatch{
		ClientName:       req.ClientName,
		Email:            req.Email,
		Phone:            req.Phone,
		SalespersonID:    req.SalespersonID,
		SalespersonName:  req.SalespersonName,
		EstimatedValue:   req.EstimatedValue,
		Source:           req.Source,
		NextContactDate:  nextContact,
		NextContactNotes: req.NextContactNotes,
		Comments:         req.Comments,
		SaleID:           req.SaleID,
	}
	if req.Status != nil {
		status := domain.LeadStatus(*req.Status)
		patch.Status = &status
	}

	return patch, nil
}
