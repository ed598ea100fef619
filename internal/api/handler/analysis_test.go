package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing"
	pricingmocks "github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing/mocks"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGenerateProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := pricingmocks.NewMockPricer(ctrl)

	score := 40
	agent.EXPECT().GerarProposta(domain.AnaliseInput{ScoreGBP: &score, Segmento: "pet"}).
		Return(domain.PricingProposal{Segmento: "pet", ValorMensal: 790})

	rec := serve(t, Pricing(agent), http.MethodPost, "/v1/pricing/proposal", `{"scoreGBP":40,"segmento":"pet"}`, vendedorClaims)

	expectStatus(t, rec, http.StatusOK)
	var proposal domain.PricingProposal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proposal))
	assert.Equal(t, 790.0, proposal.ValorMensal)

	rec = serve(t, Pricing(agent), http.MethodPost, "/v1/pricing/proposal", `{"scoreGBP":40}`, nil)
	expectStatus(t, rec, http.StatusUnauthorized)
}

func TestListSegments(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := pricingmocks.NewMockPricer(ctrl)

	agent.EXPECT().ListarSegmentos().Return([]domain.Segmento{{Key: "restaurante", Label: "Restaurante"}})

	rec := serve(t, Pricing(agent), http.MethodGet, "/v1/segments", "", nil)

	expectStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `[{"key":"restaurante","label":"Restaurante"}]`, rec.Body.String())
}

func TestGetSegmentBenchmark(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		setup          func(m *pricingmocks.MockPricer)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "segmento conhecido",
			key:  "odontologia",
			setup: func(m *pricingmocks.MockPricer) {
				m.EXPECT().Benchmark("odontologia").Return(domain.SegmentBenchmark{Segmento: "odontologia", ScoreMedio: 70}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "segmento desconhecido",
			key:  "astronautas",
			setup: func(m *pricingmocks.MockPricer) {
				m.EXPECT().Benchmark("astronautas").Return(domain.SegmentBenchmark{},
					pricing.NewPricingError(pricing.ErrSegmentoDesconhecido, "astronautas"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			agent := pricingmocks.NewMockPricer(ctrl)
			tt.setup(agent)

			rec := serve(t, Pricing(agent), http.MethodGet, "/v1/segments/"+tt.key+"/benchmark", "", nil)

			expectStatus(t, rec, tt.expectedStatus)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}
