package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	analysingmocks "github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing/mocks"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/prospecting"
	prospectingmocks "github.com/vfg2006/lead-intelligence-api/internal/usecases/prospecting/mocks"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/reconciling"
	reconcilingmocks "github.com/vfg2006/lead-intelligence-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/middleware"
	"github.com/vfg2006/lead-intelligence-api/pkg/task"
	"go.uber.org/mock/gomock"
)

func TestSubmitLead(t *testing.T) {
	lead := &domain.Lead{ID: "lead-1", Email: "maria@exemplo.com.br", PlaceID: "place-1", Status: domain.LeadStatusNovo}

	tests := []struct {
		name           string
		body           string
		setup          func(m *reconcilingmocks.MockReconciler)
		expectedStatus int
		expectedCode   string
		validate       func(t *testing.T, body []byte)
	}{
		{
			name: "lead criado",
			body: `{"email":"maria@exemplo.com.br","placeId":"place-1","nome":"Maria"}`,
			setup: func(m *reconcilingmocks.MockReconciler) {
				m.EXPECT().ReconcileLead(gomock.Any(), domain.LeadSubmission{
					Email: "maria@exemplo.com.br", PlaceID: "place-1", Nome: "Maria",
				}).Return(&reconciling.ReconcileResult{
					Decision:   domain.DecisionCreate,
					Lead:       lead,
					Pendencias: task.Done(),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, body []byte) {
				var result reconciling.ReconcileResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, domain.DecisionCreate, result.Decision)
				assert.Equal(t, "lead-1", result.Lead.ID)
			},
		},
		{
			name: "lead reaproveitado",
			body: `{"email":"maria@exemplo.com.br","placeId":"place-1","nome":"Maria"}`,
			setup: func(m *reconcilingmocks.MockReconciler) {
				m.EXPECT().ReconcileLead(gomock.Any(), gomock.Any()).Return(&reconciling.ReconcileResult{
					Decision: domain.DecisionReuse,
					Lead:     lead,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "json inválido",
			body:           `{"email":`,
			setup:          func(m *reconcilingmocks.MockReconciler) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "submissão inválida",
			body: `{"email":"nao-e-email","placeId":"place-1","nome":"Maria"}`,
			setup: func(m *reconcilingmocks.MockReconciler) {
				m.EXPECT().ReconcileLead(gomock.Any(), gomock.Any()).Return(nil,
					reconciling.NewReconcileError(reconciling.ErrInvalidSubmission, apiErrors.ErrInvalidRequest, "email deve ser um e-mail válido"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "falha de persistência não expõe detalhes",
			body: `{"email":"maria@exemplo.com.br","placeId":"place-1","nome":"Maria"}`,
			setup: func(m *reconcilingmocks.MockReconciler) {
				m.EXPECT().ReconcileLead(gomock.Any(), gomock.Any()).Return(nil,
					reconciling.NewReconcileError(reconciling.ErrPersistence, apiErrors.ErrDatabaseOperation, "pq: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
			validate: func(t *testing.T, body []byte) {
				assert.NotContains(t, string(body), "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reconciler := reconcilingmocks.NewMockReconciler(ctrl)
			analyzer := analysingmocks.NewMockAnalyzer(ctrl)
			tt.setup(reconciler)

			limiter := middleware.NewIPRateLimiter(100, 100)
			rec := serve(t, PublicLeads(reconciler, analyzer, limiter), http.MethodPost, "/v1/leads", tt.body, nil)

			expectStatus(t, rec, tt.expectedStatus)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconciler := reconcilingmocks.NewMockReconciler(ctrl)
	analyzer := analysingmocks.NewMockAnalyzer(ctrl)
	limiter := middleware.NewIPRateLimiter(100, 100)

	analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), analysing.AnalyzeRequest{PlaceID: "place-1", Segmento: "academia"}).
		Return(&domain.AnalysisResult{
			Report:   domain.DigitalPresenceReport{ScoreGeral: 61},
			Proposal: domain.PricingProposal{Segmento: "academia", ValorImplantacao: 1800},
		}, nil)

	rec := serve(t, PublicLeads(reconciler, analyzer, limiter), http.MethodPost, "/v1/analysis", `{"placeId":"place-1","segmento":"academia"}`, nil)

	expectStatus(t, rec, http.StatusOK)
	var result domain.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 61, result.Report.ScoreGeral)
	assert.Equal(t, 1800.0, result.Proposal.ValorImplantacao)

	analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), gomock.Any()).
		Return(nil, analysing.NewAnalysisError(analysing.ErrInvalidRequest, apiErrors.ErrInvalidRequest, "placeId é obrigatório"))

	rec = serve(t, PublicLeads(reconciler, analyzer, limiter), http.MethodPost, "/v1/analysis", `{}`, nil)
	expectStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeAPIError(t, rec).Message, "placeId é obrigatório")
}

func TestPublicLeads_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconciler := reconcilingmocks.NewMockReconciler(ctrl)
	analyzer := analysingmocks.NewMockAnalyzer(ctrl)

	analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), gomock.Any()).Return(&domain.AnalysisResult{}, nil).Times(2)

	routes := PublicLeads(reconciler, analyzer, middleware.NewIPRateLimiter(0.001, 2))
	for i := 0; i < 2; i++ {
		expectStatus(t, serve(t, routes, http.MethodPost, "/v1/analysis", `{"placeId":"p"}`, nil), http.StatusOK)
	}

	rec := serve(t, routes, http.MethodPost, "/v1/analysis", `{"placeId":"p"}`, nil)
	expectStatus(t, rec, http.StatusTooManyRequests)
	assert.Equal(t, apiErrors.ErrTooManyRequests, decodeAPIError(t, rec).Code)
}

func TestListLeads(t *testing.T) {
	novo := domain.LeadStatusNovo
	vendedor := "vend-7"

	tests := []struct {
		name           string
		target         string
		claims         *domain.Claims
		setup          func(m *prospectingmocks.MockLeadService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "filtros completos",
			target: "/v1/leads?status=novo&vendedorId=vend-7&busca=%20padaria%20&limit=10&offset=20",
			claims: adminClaims,
			setup: func(m *prospectingmocks.MockLeadService) {
				m.EXPECT().ListarLeads(gomock.Any(), domain.LeadFilter{
					Status: &novo, VendedorID: &vendedor, Busca: "padaria", Limit: 10, Offset: 20,
				}).Return(&domain.LeadPage{Leads: []*domain.Lead{{ID: "lead-1"}}, Total: 21}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "limit inválido",
			target:         "/v1/leads?limit=dez",
			claims:         adminClaims,
			setup:          func(m *prospectingmocks.MockLeadService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "sem autenticação",
			target:         "/v1/leads",
			setup:          func(m *prospectingmocks.MockLeadService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "role sem permissão",
			target:         "/v1/leads",
			claims:         &domain.Claims{UserID: "x", UserRoleID: 99},
			setup:          func(m *prospectingmocks.MockLeadService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "status desconhecido",
			target: "/v1/leads?status=ganho",
			claims: vendedorClaims,
			setup: func(m *prospectingmocks.MockLeadService) {
				m.EXPECT().ListarLeads(gomock.Any(), gomock.Any()).Return(nil,
					prospecting.NewProspectingError(prospecting.ErrInvalidStatus, apiErrors.ErrInvalidRequest, "", "GANHO"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := prospectingmocks.NewMockLeadService(ctrl)
			tt.setup(service)

			rec := serve(t, Leads(service), http.MethodGet, tt.target, "", tt.claims)

			expectStatus(t, rec, tt.expectedStatus)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := prospectingmocks.NewMockLeadService(ctrl)

	service.EXPECT().ObterLead(gomock.Any(), "lead-1").Return(&domain.Lead{ID: "lead-1", PesquisaEm: time.Now()}, nil)
	service.EXPECT().ObterLead(gomock.Any(), "lead-404").Return(nil,
		prospecting.NewProspectingError(prospecting.ErrLeadNotFound, apiErrors.ErrLeadNotFound, "lead-404", ""))

	rec := serve(t, Leads(service), http.MethodGet, "/v1/leads/lead-1", "", adminClaims)
	expectStatus(t, rec, http.StatusOK)

	rec = serve(t, Leads(service), http.MethodGet, "/v1/leads/lead-404", "", adminClaims)
	expectStatus(t, rec, http.StatusNotFound)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrLeadNotFound, apiErr.Code)
	assert.Equal(t, map[string]any{"lead_id": "lead-404"}, apiErr.Details)
}

func TestUpdateLeadStatus(t *testing.T) {
	outro := "vend-9"

	tests := []struct {
		name           string
		body           string
		claims         *domain.Claims
		expectedReq    domain.UpdateLeadStatusRequest
		returnErr      error
		expectedStatus int
	}{
		{
			name:           "vendedor assume o lead",
			body:           `{"status":"contatado"}`,
			claims:         vendedorClaims,
			expectedReq:    domain.UpdateLeadStatusRequest{Status: domain.LeadStatusContatado, VendedorID: &vendedorClaims.UserID},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "admin atribui outro vendedor",
			body:           `{"status":"NEGOCIANDO","vendedorId":"vend-9"}`,
			claims:         adminClaims,
			expectedReq:    domain.UpdateLeadStatusRequest{Status: domain.LeadStatusNegociando, VendedorID: &outro},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "admin sem vendedor não atribui",
			body:        `{"status":"PERDIDO"}`,
			claims:      adminClaims,
			expectedReq: domain.UpdateLeadStatusRequest{Status: domain.LeadStatusPerdido},
			returnErr: prospecting.NewProspectingError(prospecting.ErrInvalidTransition, apiErrors.ErrInvalidLeadTransition,
				"lead-1", "CONVERTIDO -> PERDIDO"),
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := prospectingmocks.NewMockLeadService(ctrl)

			var lead *domain.Lead
			if tt.returnErr == nil {
				lead = &domain.Lead{ID: "lead-1", Status: tt.expectedReq.Status}
			}
			service.EXPECT().AtualizarStatus(gomock.Any(), "lead-1", tt.expectedReq).Return(lead, tt.returnErr)

			rec := serve(t, Leads(service), http.MethodPut, "/v1/leads/lead-1/status", tt.body, tt.claims)

			expectStatus(t, rec, tt.expectedStatus)
		})
	}
}

func TestWriteUsecaseError_ErroDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := prospectingmocks.NewMockLeadService(ctrl)
	service.EXPECT().ObterLead(gomock.Any(), "lead-1").Return(nil, errors.New("falha inesperada"))

	rec := serve(t, Leads(service), http.MethodGet, "/v1/leads/lead-1", "", adminClaims)

	expectStatus(t, rec, http.StatusInternalServerError)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	assert.Equal(t, "Erro ao obter lead", apiErr.Message)
}
