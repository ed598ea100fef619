package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/prospecting"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/reconciling"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"github.com/vfg2006/lead-intelligence-api/pkg/middleware"
)

// SubmitLead recebe o formulário público e reconcilia a submissão com o lead existente
func SubmitLead(service reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission domain.LeadSubmission
		if err := decodeBody(r, &submission); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.ReconcileLead(r.Context(), submission)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao processar lead")
			return
		}

		if result.Pendencias != nil {
			ctx := context.WithoutCancel(r.Context())
			leadID := result.Lead.ID
			go func() {
				if err := result.Pendencias.Wait(); err != nil {
					log.ForContext(ctx).WithFields(log.Fields{
						"lead_id": leadID,
						"error":   err.Error(),
					}).Error("Falha nas tarefas pós-criação do lead")
				}
			}()
		}

		status := http.StatusOK
		if result.Decision == domain.DecisionCreate {
			status = http.StatusCreated
		}

		writeJSON(w, r, status, result)
	}
}

// ListLeads lista os leads com filtros de status, vendedor e busca textual
func ListLeads(service prospecting.LeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}
		offset, err := queryInt(r, "offset", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro offset inválido", nil)
			return
		}

		filter := domain.LeadFilter{
			Busca:  strings.TrimSpace(query.Get("busca")),
			Limit:  limit,
			Offset: offset,
		}
		if status := query.Get("status"); status != "" {
			s := domain.LeadStatus(strings.ToUpper(status))
			filter.Status = &s
		}
		if vendedorID := query.Get("vendedorId"); vendedorID != "" {
			filter.VendedorID = &vendedorID
		}

		page, err := service.ListarLeads(r.Context(), filter)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar leads")
			return
		}

		writeJSON(w, r, http.StatusOK, page)
	}
}

func GetLead(service prospecting.LeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead não fornecido", nil)
			return
		}

		lead, err := service.ObterLead(r.Context(), id)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao obter lead")
			return
		}

		writeJSON(w, r, http.StatusOK, lead)
	}
}

// UpdateLeadStatus avança o lead no funil. Um vendedor que não informa vendedorId
// assume o lead para si.
func UpdateLeadStatus(service prospecting.LeadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead não fornecido", nil)
			return
		}

		var req domain.UpdateLeadStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.Status = domain.LeadStatus(strings.ToUpper(strings.TrimSpace(string(req.Status))))

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && req.VendedorID == nil && claims.UserRoleID == middleware.RoleVendedor {
			vendedorID := claims.UserID
			req.VendedorID = &vendedorID
		}

		lead, err := service.AtualizarStatus(r.Context(), id, req)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao atualizar status do lead")
			return
		}

		writeJSON(w, r, http.StatusOK, lead)
	}
}
