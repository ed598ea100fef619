package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
)

// Analyze executa a análise de presença digital sem persistir um lead
func Analyze(service analysing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analysing.AnalyzeRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.AnalyzeAndScore(r.Context(), req)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao analisar presença digital")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GenerateProposal monta a proposta comercial a partir de scores já calculados
func GenerateProposal(agent pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.AnaliseInput
		if err := decodeBody(r, &in); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, agent.GerarProposta(in))
	}
}

func ListSegments(agent pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, agent.ListarSegmentos())
	}
}

func GetSegmentBenchmark(agent pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := httprouter.ParamsFromContext(r.Context()).ByName("key")

		benchmark, err := agent.Benchmark(key)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao obter benchmark do segmento")
			return
		}

		writeJSON(w, r, http.StatusOK, benchmark)
	}
}
