package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

func codes(findings []domain.Finding) []string {
	result := make([]string, 0, len(findings))
	for _, f := range findings {
		result = append(result, f.Code)
	}
	return result
}

func TestScoreProfile(t *testing.T) {
	tests := []struct {
		name          string
		profile       *domain.BusinessProfile
		expectedValue int
		expectedCodes []string
	}{
		{
			name:          "perfil não encontrado",
			profile:       nil,
			expectedValue: 0,
			expectedCodes: []string{domain.FindingPerfilNaoEncontrado},
		},
		{
			name: "perfil completo",
			profile: &domain.BusinessProfile{
				NotaMedia:         5,
				TotalAvaliacoes:   150,
				TotalFotos:        40,
				HorariosCompletos: 1,
				Telefone:          "+551133334444",
				Website:           "https://exemplo.com.br",
			},
			expectedValue: 100,
			expectedCodes: []string{domain.FindingBoaReputacao},
		},
		{
			name: "perfil vazio",
			profile: &domain.BusinessProfile{
				Nome: "Padaria",
			},
			expectedValue: 0,
			expectedCodes: []string{
				domain.FindingSemTelefone,
				domain.FindingPerfilSemSite,
				domain.FindingPoucasAvaliacoes,
				domain.FindingPoucasFotos,
				domain.FindingHorariosIncompletos,
			},
		},
		{
			name: "nota baixa e poucas fotos",
			profile: &domain.BusinessProfile{
				NotaMedia:         3.5,
				TotalAvaliacoes:   60,
				TotalFotos:        6,
				HorariosCompletos: 0.5,
				Telefone:          "+551133334444",
			},
			// nota 21 + avaliações 22 + fotos 14 + horários 5 + telefone 5
			expectedValue: 67,
			expectedCodes: []string{
				domain.FindingPerfilSemSite,
				domain.FindingNotaBaixa,
				domain.FindingPoucasFotos,
				domain.FindingHorariosIncompletos,
			},
		},
		{
			name: "fechado temporariamente",
			profile: &domain.BusinessProfile{
				NotaMedia:           4.2,
				TotalAvaliacoes:     30,
				TotalFotos:          12,
				HorariosCompletos:   1,
				Telefone:            "+551133334444",
				Website:             "https://exemplo.com.br",
				StatusFuncionamento: "CLOSED_TEMPORARILY",
			},
			// nota 25 + avaliações 15 + fotos 20 + horários 10 + contato 10
			expectedValue: 80,
			expectedCodes: []string{domain.FindingPerfilFechado},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreProfile(tt.profile)

			assert.Equal(t, domain.AxisGBP, score.Axis)
			assert.Equal(t, tt.expectedValue, score.Value)
			assert.Equal(t, tt.expectedCodes, codes(score.Findings))
		})
	}
}
