package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

// Pontuação máxima por critério: nota 30, avaliações 30, fotos 20, horários 10, contato 10
const (
	maxPontosNota     = 30
	maxPontosHorarios = 10
	maxPontosContato  = 10
)

type tier struct {
	min    int
	points int
}

var reviewTiers = []tier{{100, 30}, {50, 22}, {20, 15}, {5, 8}, {1, 4}}
// a API de detalhes retorna no máximo 10 fotos
var photoTiers = []tier{{10, 20}, {5, 14}, {3, 8}, {1, 4}}

func tierPoints(tiers []tier, value int) int {
	for _, t := range tiers {
		if value >= t.min {
			return t.points
		}
	}
	return 0
}

// ScoreProfile converte os metadados do Google Business Profile no score parcial do eixo GBP
func ScoreProfile(profile *domain.BusinessProfile) domain.PartialScore {
	if profile == nil {
		return domain.PartialScore{
			Axis:  domain.AxisGBP,
			Value: 0,
			Findings: []domain.Finding{
				{
					Code:       domain.FindingPerfilNaoEncontrado,
					Titulo:     "Perfil do Google não encontrado",
					Descricao:  "O negócio não aparece no Google Maps com o identificador informado.",
					Severidade: domain.SeverityProblem,
				},
			},
		}
	}

	findings := make([]domain.Finding, 0)
	points := 0

	if profile.TotalAvaliacoes > 0 {
		nota := math.Max(0, math.Min(profile.NotaMedia, 5))
		points += int(math.Round(nota / 5 * maxPontosNota))
	}
	points += tierPoints(reviewTiers, profile.TotalAvaliacoes)
	points += tierPoints(photoTiers, profile.TotalFotos)

	horarios := math.Max(0, math.Min(profile.HorariosCompletos, 1))
	points += int(math.Round(horarios * maxPontosHorarios))

	if strings.TrimSpace(profile.Telefone) != "" {
		points += maxPontosContato / 2
	} else {
		findings = append(findings, problem(domain.FindingSemTelefone, "Perfil sem telefone",
			"Clientes não conseguem ligar direto pela busca.", ""))
	}

	if strings.TrimSpace(profile.Website) != "" {
		points += maxPontosContato / 2
	} else {
		findings = append(findings, problem(domain.FindingPerfilSemSite, "Perfil sem site vinculado",
			"O perfil do Google não aponta para nenhum site.", ""))
	}

	if profile.TotalAvaliacoes < 20 {
		findings = append(findings, problem(domain.FindingPoucasAvaliacoes, "Poucas avaliações",
			"Negócios com mais avaliações aparecem antes no Google Maps.",
			fmt.Sprintf("%d avaliações", profile.TotalAvaliacoes)))
	}

	if profile.TotalAvaliacoes > 0 && profile.NotaMedia < 4.0 {
		findings = append(findings, problem(domain.FindingNotaBaixa, "Nota média baixa",
			"A nota média está abaixo de 4, o que afasta novos clientes.",
			fmt.Sprintf("nota %.1f", profile.NotaMedia)))
	}

	if profile.TotalFotos < 10 {
		findings = append(findings, problem(domain.FindingPoucasFotos, "Poucas fotos no perfil",
			"Perfis com fotos recebem mais pedidos de rota e ligações.",
			fmt.Sprintf("%d fotos", profile.TotalFotos)))
	}

	if horarios < 1 {
		findings = append(findings, problem(domain.FindingHorariosIncompletos, "Horários incompletos",
			"Nem todos os dias da semana têm horário de funcionamento cadastrado.", ""))
	}

	if strings.HasPrefix(profile.StatusFuncionamento, "CLOSED") {
		findings = append(findings, problem(domain.FindingPerfilFechado, "Perfil aparece como fechado",
			"O Google exibe o negócio como fechado.", profile.StatusFuncionamento))
	}

	if profile.NotaMedia >= 4.5 && profile.TotalAvaliacoes >= 50 {
		findings = append(findings, domain.Finding{
			Code:       domain.FindingBoaReputacao,
			Titulo:     "Boa reputação no Google",
			Descricao:  "A nota e o volume de avaliações podem ser usados em campanhas.",
			Severidade: domain.SeverityOpportunity,
			Evidencia:  fmt.Sprintf("nota %.1f em %d avaliações", profile.NotaMedia, profile.TotalAvaliacoes),
		})
	}

	return domain.PartialScore{
		Axis:     domain.AxisGBP,
		Value:    clamp(points),
		Findings: findings,
	}
}

func problem(code, titulo, descricao, evidencia string) domain.Finding {
	return domain.Finding{
		Code:       code,
		Titulo:     titulo,
		Descricao:  descricao,
		Severidade: domain.SeverityProblem,
		Evidencia:  evidencia,
	}
}
