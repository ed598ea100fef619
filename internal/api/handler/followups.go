package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
)

// ScheduleFollowUps agenda a cadência do lead. Repetir a chamada não duplica follow-ups.
func ScheduleFollowUps(service nurturing.FollowUpService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if leadID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead não fornecido", nil)
			return
		}

		followUps, err := service.AgendarFollowUpsParaLead(r.Context(), leadID)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao agendar follow-ups")
			return
		}

		writeJSON(w, r, http.StatusCreated, followUps)
	}
}

func ListUpcomingFollowUps(service nurturing.FollowUpService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		followUps, err := service.ListarProximosFollowUps(r.Context(), limit)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar follow-ups")
			return
		}

		writeJSON(w, r, http.StatusOK, followUps)
	}
}

func GetFollowUpStats(service nurturing.FollowUpService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.ObterEstatisticasFollowUp(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao obter estatísticas de follow-ups")
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

// UpdateFollowUp registra manualmente o resultado de um contato
func UpdateFollowUp(service nurturing.FollowUpService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do follow-up não fornecido", nil)
			return
		}

		var req domain.UpdateFollowUpRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		followUp, err := service.AtualizarFollowUp(r.Context(), id, req)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao atualizar follow-up")
			return
		}

		writeJSON(w, r, http.StatusOK, followUp)
	}
}
