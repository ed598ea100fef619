package scoring

import (
	"math"
	"time"

	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

// Weights são os pesos de cada eixo no score geral
type Weights struct {
	GBP    float64
	Site   float64
	Social float64
}

// DefaultWeights reflete o peso dominante do perfil do Google na busca local
func DefaultWeights() Weights {
	return Weights{GBP: 0.5, Site: 0.3, Social: 0.2}
}

func WeightsFromConfig(cfg config.Scoring) Weights {
	return Weights{GBP: cfg.WeightGBP, Site: cfg.WeightSite, Social: cfg.WeightSocial}
}

// Input reúne os scores parciais produzidos pelos coletores.
// Site nulo com SiteInformado falso significa que o lead não tem site.
// Site nulo com SiteInformado verdadeiro significa que a auditoria falhou.
type Input struct {
	GBP           domain.PartialScore
	Site          *domain.PartialScore
	Social        *domain.PartialScore
	SiteInformado bool
}

type Aggregator struct {
	weights Weights
	now     func() time.Time
}

func NewAggregator(weights Weights) *Aggregator {
	return &Aggregator{
		weights: weights,
		now:     time.Now,
	}
}

// Aggregate combina os três eixos em um relatório imutável
func (a *Aggregator) Aggregate(in Input) domain.DigitalPresenceReport {
	gbp := normalize(in.GBP, domain.AxisGBP)
	site := a.resolveSite(in)
	social := domain.PartialScore{Axis: domain.AxisSocial, Findings: []domain.Finding{}}
	if in.Social != nil {
		social = normalize(*in.Social, domain.AxisSocial)
	}

	report := domain.DigitalPresenceReport{
		SchemaVersion: domain.ReportSchemaVersion,
		GBP:           gbp,
		Site:          site,
		Social:        social,
		ScoreGeral:    a.ScoreGeral(gbp.Value, site.Value, social.Value),
		Problemas:     []domain.Finding{},
		Oportunidades: []domain.Finding{},
		GeradoEm:      a.now().UTC(),
	}

	for _, partial := range []domain.PartialScore{gbp, site, social} {
		for _, f := range partial.Findings {
			if f.Severidade == domain.SeverityOpportunity {
				report.Oportunidades = append(report.Oportunidades, f)
				continue
			}
			report.Problemas = append(report.Problemas, f)
		}
	}

	report.Recomendacoes = Recommend(report.Problemas)

	return report
}

// ScoreGeral aplica os pesos aos três eixos, arredonda e limita a [0,100]
func (a *Aggregator) ScoreGeral(gbp, site, social int) int {
	raw := a.weights.GBP*float64(clamp(gbp)) +
		a.weights.Site*float64(clamp(site)) +
		a.weights.Social*float64(clamp(social))

	return clamp(int(math.Round(raw)))
}

func (a *Aggregator) resolveSite(in Input) domain.PartialScore {
	if in.Site != nil {
		return normalize(*in.Site, domain.AxisSite)
	}

	if in.SiteInformado {
		return domain.UnavailableScore(domain.AxisSite, "auditoria do site não retornou resultado")
	}

	return domain.PartialScore{
		Axis:  domain.AxisSite,
		Value: 0,
		Findings: []domain.Finding{
			{
				Code:       domain.FindingSemSite,
				Titulo:     "Sem site",
				Descricao:  "O negócio não informou um site próprio.",
				Severidade: domain.SeverityProblem,
			},
		},
	}
}

func normalize(p domain.PartialScore, axis domain.Axis) domain.PartialScore {
	p.Axis = axis
	p.Value = clamp(p.Value)
	if p.Findings == nil {
		p.Findings = []domain.Finding{}
	}
	return p
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
