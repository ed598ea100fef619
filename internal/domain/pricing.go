package domain

type Segmento struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// AnaliseInput é a entrada do agente de precificação. Campos nulos recebem valores padrão.
type AnaliseInput struct {
	ScoreGBP     *int     `json:"scoreGBP,omitempty"`
	ScoreSite    *int     `json:"scoreSite,omitempty"`
	ScoreRedes   *int     `json:"scoreRedes,omitempty"`
	Segmento     string   `json:"segmento,omitempty"`
	Avaliacoes   *int     `json:"avaliacoes,omitempty"`
	NotaMedia    *float64 `json:"notaMedia,omitempty"`
	TemSite      *bool    `json:"temSite,omitempty"`
	Concorrentes *int     `json:"concorrentes,omitempty"`
}

type RoiEstimado struct {
	ClientesAdicionaisMes    int `json:"clientesAdicionaisMes"`
	RetornoInvestimentoMeses int `json:"retornoInvestimentoMeses"`
}

type PricingProposal struct {
	SchemaVersion        int         `json:"schema_version"`
	Segmento             string      `json:"segmento"`
	ValorImplantacao     float64     `json:"valorImplantacao"`
	ValorMensal          float64     `json:"valorMensal"`
	ParcelasSugeridas    int         `json:"parcelasSugeridas"`
	RoiEstimado          RoiEstimado `json:"roiEstimado"`
	ArgumentosFechamento []string    `json:"argumentosFechamento"`
	PlanoAcao            []string    `json:"planoAcao"`
	EixoMaisFraco        Axis        `json:"eixoMaisFraco"`
	ScoreGeral           int         `json:"scoreGeral"`
}

// SegmentBenchmark é a referência usada na comparação com concorrentes
type SegmentBenchmark struct {
	Segmento    string `json:"segmento"`
	Label       string `json:"label"`
	ScoreMedio  int    `json:"scoreMedio"`
	TicketMedio int    `json:"ticketMedio"`
}

type AnalysisResult struct {
	Report   DigitalPresenceReport `json:"report"`
	Proposal PricingProposal       `json:"proposal"`
	Profile  *BusinessProfile      `json:"profile,omitempty"`
}
