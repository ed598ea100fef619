package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/prospecting"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/reconciling"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithField("error", err.Error()).Error("Erro ao enviar resposta")
	}
}

// decodeBody lê o corpo JSON limitado a 1MB
func decodeBody(r *http.Request, target any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(target)
}

// writeUsecaseError traduz os erros dos casos de uso para a resposta padronizada.
// Erros 5xx não expõem detalhes internos ao cliente.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := apiErrors.ErrInternalServer
	var details map[string]any

	var (
		analysisErr    *analysing.AnalysisError
		reconcileErr   *reconciling.ReconcileError
		nurturingErr   *nurturing.NurturingError
		prospectingErr *prospecting.ProspectingError
		pricingErr     *pricing.PricingError
	)

	switch {
	case errors.As(err, &reconcileErr):
		code = reconcileErr.Code
		if reconcileErr.LeadID != "" {
			details = map[string]any{"lead_id": reconcileErr.LeadID}
		}
	case errors.As(err, &analysisErr):
		code = analysisErr.Code
	case errors.As(err, &nurturingErr):
		code = nurturingErr.Code
		if nurturingErr.FollowUpID != "" {
			details = map[string]any{"followup_id": nurturingErr.FollowUpID}
		}
	case errors.As(err, &prospectingErr):
		code = prospectingErr.Code
		if prospectingErr.LeadID != "" {
			details = map[string]any{"lead_id": prospectingErr.LeadID}
		}
	case errors.As(err, &pricingErr):
		code = pricingErr.Code
	}

	logger := log.ForContext(r.Context()).WithField("error", err.Error())
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
		apiErrors.WriteError(w, code, message, details)
		return
	}

	logger.Warn(message)
	apiErrors.WriteError(w, code, err.Error(), details)
}

// queryInt lê um inteiro opcional da query string
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
