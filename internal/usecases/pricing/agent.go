package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/scoring"
)

// Valores assumidos quando o campo não é informado
const (
	defaultScoreGBP     = 50
	defaultConcorrentes = 5
)

type Pricer interface {
	GerarProposta(in domain.AnaliseInput) domain.PricingProposal
	ListarSegmentos() []domain.Segmento
	Benchmark(segmento string) (domain.SegmentBenchmark, error)
}

type Agent struct {
	cfg        Config
	aggregator *scoring.Aggregator
	segments   map[string]SegmentConfig
}

func NewAgent(cfg Config) Pricer {
	segments := make(map[string]SegmentConfig, len(cfg.Segments))
	for _, s := range cfg.Segments {
		segments[s.Key] = s
	}

	return &Agent{
		cfg:        cfg,
		aggregator: scoring.NewAggregator(cfg.Weights),
		segments:   segments,
	}
}

type normalizedInput struct {
	scoreGBP     int
	scoreSite    int
	scoreRedes   int
	avaliacoes   int
	notaMedia    float64
	temSite      bool
	concorrentes int
	segment      SegmentConfig
}

// GerarProposta nunca falha: campos ausentes ou fora do intervalo recebem valores padrão
func (a *Agent) GerarProposta(in domain.AnaliseInput) domain.PricingProposal {
	n := a.normalize(in)

	scoreGeral := a.aggregator.ScoreGeral(n.scoreGBP, n.scoreSite, n.scoreRedes)
	desconto := a.saturationDiscount(n.concorrentes)

	setup := n.segment.SetupBase
	if !n.temSite {
		setup += a.cfg.SemSiteSetupExtra
	}
	setup = a.round(setup * (1 - desconto))

	deficit := float64(100-scoreGeral) / 100
	multiplicador := 1 + math.Min(deficit*a.cfg.MaxUpliftMensal, a.cfg.MaxUpliftMensal)
	mensal := a.round(n.segment.MensalBase * multiplicador * (1 - desconto))

	gap := n.segment.ScoreMedio - scoreGeral
	if gap < 0 {
		gap = 0
	}
	roi := a.estimateROI(gap, n.segment, setup, mensal)
	eixo := weakestAxis(n.scoreGBP, n.scoreSite, n.scoreRedes)

	return domain.PricingProposal{
		SchemaVersion:        domain.ReportSchemaVersion,
		Segmento:             n.segment.Key,
		ValorImplantacao:     setup,
		ValorMensal:          mensal,
		ParcelasSugeridas:    a.parcelas(setup),
		RoiEstimado:          roi,
		ArgumentosFechamento: a.argumentos(eixo, n, scoreGeral, gap, roi),
		PlanoAcao:            a.planoAcao(eixo),
		EixoMaisFraco:        eixo,
		ScoreGeral:           scoreGeral,
	}
}

// ListarSegmentos retorna os segmentos reconhecidos na ordem da tabela
func (a *Agent) ListarSegmentos() []domain.Segmento {
	result := make([]domain.Segmento, 0, len(a.cfg.Segments))
	for _, s := range a.cfg.Segments {
		result = append(result, domain.Segmento{Key: s.Key, Label: s.Label})
	}
	return result
}

func (a *Agent) Benchmark(segmento string) (domain.SegmentBenchmark, error) {
	s, ok := a.segments[normalizeKey(segmento)]
	if !ok {
		return domain.SegmentBenchmark{}, NewPricingError(ErrSegmentoDesconhecido, fmt.Sprintf("segmento %q", segmento))
	}

	return domain.SegmentBenchmark{
		Segmento:    s.Key,
		Label:       s.Label,
		ScoreMedio:  s.ScoreMedio,
		TicketMedio: s.TicketMedio,
	}, nil
}

func (a *Agent) normalize(in domain.AnaliseInput) normalizedInput {
	n := normalizedInput{
		scoreGBP:     clampScore(intOr(in.ScoreGBP, defaultScoreGBP)),
		scoreSite:    clampScore(intOr(in.ScoreSite, 0)),
		scoreRedes:   clampScore(intOr(in.ScoreRedes, 0)),
		avaliacoes:   intOr(in.Avaliacoes, 0),
		concorrentes: intOr(in.Concorrentes, defaultConcorrentes),
	}

	if in.NotaMedia != nil && !math.IsNaN(*in.NotaMedia) {
		n.notaMedia = math.Max(0, math.Min(*in.NotaMedia, 5))
	}
	if in.TemSite != nil {
		n.temSite = *in.TemSite
	}
	if n.avaliacoes < 0 {
		n.avaliacoes = 0
	}
	if n.concorrentes < 0 {
		n.concorrentes = 0
	}

	segment, ok := a.segments[normalizeKey(in.Segmento)]
	if !ok {
		segment = a.segments[SegmentoPadrao]
	}
	n.segment = segment

	return n
}

func (a *Agent) saturationDiscount(concorrentes int) float64 {
	excedente := concorrentes - a.cfg.SaturationThreshold
	if excedente <= 0 {
		return 0
	}
	return math.Min(float64(excedente)*a.cfg.SaturationStep, a.cfg.MaxSaturationDiscount)
}

func (a *Agent) round(v float64) float64 {
	if a.cfg.Arredondamento <= 0 {
		return math.Round(v)
	}
	return math.Round(v/a.cfg.Arredondamento) * a.cfg.Arredondamento
}

func (a *Agent) parcelas(setup float64) int {
	for _, rule := range a.cfg.Parcelas {
		if setup <= rule.AteValor {
			return rule.Parcelas
		}
	}
	return a.cfg.MaxParcelas
}

func (a *Agent) estimateROI(gap int, segment SegmentConfig, setup, mensal float64) domain.RoiEstimado {
	clientes := 1
	if a.cfg.PontosPorCliente > 0 {
		clientes = int(math.Round(float64(gap) / a.cfg.PontosPorCliente))
	}
	if clientes < 1 {
		clientes = 1
	}

	meses := a.cfg.MaxPaybackMeses
	ganhoMensal := float64(clientes*segment.TicketMedio) - mensal
	if ganhoMensal > 0 {
		meses = int(math.Ceil(setup / ganhoMensal))
	}
	if meses < 1 {
		meses = 1
	}
	if meses > a.cfg.MaxPaybackMeses {
		meses = a.cfg.MaxPaybackMeses
	}

	return domain.RoiEstimado{
		ClientesAdicionaisMes:    clientes,
		RetornoInvestimentoMeses: meses,
	}
}

func (a *Agent) argumentos(eixo domain.Axis, n normalizedInput, scoreGeral, gap int, roi domain.RoiEstimado) []string {
	result := append([]string{}, a.cfg.Argumentos[eixo]...)

	if gap > 0 {
		result = append(result, fmt.Sprintf(
			"Seu score digital é %d, %d pontos abaixo da média de %s (%d).",
			scoreGeral, gap, strings.ToLower(n.segment.Label), n.segment.ScoreMedio))
	}

	if n.avaliacoes < 20 {
		result = append(result, fmt.Sprintf(
			"Com apenas %d avaliações no Google, você perde clientes para concorrentes mais bem avaliados.", n.avaliacoes))
	}

	if n.notaMedia > 0 && n.notaMedia < 4 {
		result = append(result, fmt.Sprintf(
			"Sua nota média de %.1f está abaixo de 4, faixa em que a maioria dos clientes desiste do contato.", n.notaMedia))
	}

	result = append(result, fmt.Sprintf(
		"Estimamos %d clientes novos por mês, com retorno do investimento em até %d meses.",
		roi.ClientesAdicionaisMes, roi.RetornoInvestimentoMeses))

	return result
}

// planoAcao lista primeiro os passos do eixo mais fraco e depois os demais na ordem GBP, SITE, SOCIAL
func (a *Agent) planoAcao(eixo domain.Axis) []string {
	result := append([]string{}, a.cfg.PlanoAcao[eixo]...)
	for _, axis := range []domain.Axis{domain.AxisGBP, domain.AxisSite, domain.AxisSocial} {
		if axis == eixo {
			continue
		}
		result = append(result, a.cfg.PlanoAcao[axis]...)
	}
	return result
}

// weakestAxis desempata na ordem GBP, SITE, SOCIAL
func weakestAxis(gbp, site, social int) domain.Axis {
	eixo, menor := domain.AxisGBP, gbp
	if site < menor {
		eixo, menor = domain.AxisSite, site
	}
	if social < menor {
		eixo = domain.AxisSocial
	}
	return eixo
}

func normalizeKey(segmento string) string {
	key := strings.ToLower(strings.TrimSpace(segmento))
	if key == "" {
		return SegmentoPadrao
	}
	return key
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
