package pricing

import (
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/scoring"
)

const SegmentoPadrao = "outro"

// SegmentConfig é uma linha da tabela de segmentos: preço base e referência de mercado
type SegmentConfig struct {
	Key         string
	Label       string
	SetupBase   float64
	MensalBase  float64
	ScoreMedio  int // benchmark usado na comparação com concorrentes
	TicketMedio int // valor médio gasto por um cliente do segmento por mês
}

type ParcelaRule struct {
	AteValor float64
	Parcelas int
}

type Config struct {
	Segments []SegmentConfig
	Weights  scoring.Weights

	MaxUpliftMensal       float64 // multiplicador máximo sobre o mensal base quando o score é 0
	SaturationThreshold   int     // concorrentes a partir dos quais há desconto
	SaturationStep        float64 // desconto por concorrente acima do limite
	MaxSaturationDiscount float64
	SemSiteSetupExtra     float64
	Arredondamento        float64

	Parcelas         []ParcelaRule // ordenadas por AteValor; acima da última usa MaxParcelas
	MaxParcelas      int
	PontosPorCliente float64 // pontos de score que equivalem a um cliente adicional por mês
	MaxPaybackMeses  int

	Argumentos map[domain.Axis][]string
	PlanoAcao  map[domain.Axis][]string
}

func DefaultConfig() Config {
	return Config{
		Segments: []SegmentConfig{
			{Key: "restaurante", Label: "Restaurante", SetupBase: 1500, MensalBase: 600, ScoreMedio: 68, TicketMedio: 80},
			{Key: "clinica", Label: "Clínica médica", SetupBase: 2500, MensalBase: 900, ScoreMedio: 72, TicketMedio: 250},
			{Key: "academia", Label: "Academia", SetupBase: 1800, MensalBase: 700, ScoreMedio: 65, TicketMedio: 120},
			{Key: "salao_beleza", Label: "Salão de beleza", SetupBase: 1200, MensalBase: 500, ScoreMedio: 62, TicketMedio: 90},
			{Key: "advocacia", Label: "Advocacia", SetupBase: 2500, MensalBase: 900, ScoreMedio: 60, TicketMedio: 1500},
			{Key: "contabilidade", Label: "Contabilidade", SetupBase: 2000, MensalBase: 800, ScoreMedio: 58, TicketMedio: 600},
			{Key: "imobiliaria", Label: "Imobiliária", SetupBase: 2800, MensalBase: 1000, ScoreMedio: 66, TicketMedio: 3000},
			{Key: "loja_varejo", Label: "Loja de varejo", SetupBase: 1500, MensalBase: 600, ScoreMedio: 64, TicketMedio: 150},
			{Key: "oficina", Label: "Oficina mecânica", SetupBase: 1200, MensalBase: 500, ScoreMedio: 55, TicketMedio: 400},
			{Key: "petshop", Label: "Pet shop", SetupBase: 1300, MensalBase: 550, ScoreMedio: 63, TicketMedio: 110},
			{Key: "odontologia", Label: "Odontologia", SetupBase: 2200, MensalBase: 850, ScoreMedio: 70, TicketMedio: 350},
			{Key: "educacao", Label: "Escola e cursos", SetupBase: 2000, MensalBase: 750, ScoreMedio: 61, TicketMedio: 500},
			{Key: SegmentoPadrao, Label: "Outro", SetupBase: 1500, MensalBase: 600, ScoreMedio: 60, TicketMedio: 200},
		},
		Weights: scoring.DefaultWeights(),

		MaxUpliftMensal:       0.6,
		SaturationThreshold:   5,
		SaturationStep:        0.02,
		MaxSaturationDiscount: 0.15,
		SemSiteSetupExtra:     800,
		Arredondamento:        10,

		Parcelas: []ParcelaRule{
			{AteValor: 1000, Parcelas: 1},
			{AteValor: 2500, Parcelas: 3},
		},
		MaxParcelas:      6,
		PontosPorCliente: 8,
		MaxPaybackMeses:  12,

		Argumentos: map[domain.Axis][]string{
			domain.AxisGBP: {
				"Seu perfil no Google é a primeira impressão de quem procura o seu serviço na região.",
				"Perfis completos e bem avaliados recebem mais ligações e pedidos de rota.",
			},
			domain.AxisSite: {
				"Sem um site profissional, parte dos clientes desiste antes de entrar em contato.",
				"Um site rápido e adaptado ao celular transforma buscas em contatos.",
			},
			domain.AxisSocial: {
				"As redes sociais são onde seus clientes comparam você com a concorrência.",
				"Presença ativa nas redes mantém sua marca lembrada entre uma compra e outra.",
			},
		},
		PlanoAcao: map[domain.Axis][]string{
			domain.AxisGBP: {
				"Otimizar o perfil do Google: categorias, horários, fotos e descrição.",
				"Implantar rotina de pedido e resposta de avaliações.",
			},
			domain.AxisSite: {
				"Criar ou reformular o site com foco em conversão e versão para celular.",
				"Configurar HTTPS, título e meta descrição para as buscas locais.",
			},
			domain.AxisSocial: {
				"Estruturar os perfis de Instagram e Facebook com identidade visual.",
				"Definir calendário de publicações semanais.",
			},
		},
	}
}
