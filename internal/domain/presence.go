package domain

import (
	"time"
)

// ReportSchemaVersion é a versão atual do formato persistido do relatório
const ReportSchemaVersion = 2

type Axis string

const (
	AxisGBP    Axis = "GBP"
	AxisSite   Axis = "SITE"
	AxisSocial Axis = "SOCIAL"
)

type Severity string

const (
	SeverityProblem     Severity = "problema"
	SeverityOpportunity Severity = "oportunidade"
)

// Códigos estáveis de diagnóstico usados no mapeamento de recomendações
const (
	FindingAnaliseIndisponivel = "analise_indisponivel"
	FindingSemSite             = "sem_site"
	FindingPerfilNaoEncontrado = "perfil_nao_encontrado"

	// GBP
	FindingPoucasAvaliacoes    = "poucas_avaliacoes"
	FindingNotaBaixa           = "nota_baixa"
	FindingPoucasFotos         = "poucas_fotos"
	FindingHorariosIncompletos = "horarios_incompletos"
	FindingSemTelefone         = "sem_telefone"
	FindingPerfilSemSite       = "perfil_sem_site"
	FindingPerfilFechado       = "perfil_fechado"
	FindingBoaReputacao        = "boa_reputacao"

	// Site
	FindingSiteSemHTTPS         = "site_sem_https"
	FindingSiteSemTitulo        = "site_sem_titulo"
	FindingSiteSemMetaDescricao = "site_sem_meta_descricao"
	FindingSiteNaoResponsivo    = "site_nao_responsivo"
	FindingSiteSemH1            = "site_sem_h1"
	FindingSiteLento            = "site_lento"
	FindingSiteSemContato       = "site_sem_contato"
	FindingSiteSemRedes         = "site_sem_redes"
	FindingSiteRapido           = "site_rapido"

	// Redes sociais
	FindingSemInstagram     = "sem_instagram"
	FindingSemFacebook      = "sem_facebook"
	FindingSemRedesSociais  = "sem_redes_sociais"
	FindingRedesForaDoSite  = "redes_fora_do_site"
	FindingRedesEncontradas = "redes_encontradas"
)

type Finding struct {
	Code       string   `json:"codigo"`
	Titulo     string   `json:"titulo"`
	Descricao  string   `json:"descricao"`
	Severidade Severity `json:"severidade"`
	Evidencia  string   `json:"evidencia,omitempty"`
}

type PartialScore struct {
	Axis     Axis      `json:"eixo"`
	Value    int       `json:"valor"`
	Findings []Finding `json:"achados"`
}

// UnavailableScore representa um eixo cuja coleta falhou
func UnavailableScore(axis Axis, evidence string) PartialScore {
	return PartialScore{
		Axis:  axis,
		Value: 0,
		Findings: []Finding{
			{
				Code:       FindingAnaliseIndisponivel,
				Titulo:     "análise indisponível",
				Descricao:  "Não foi possível concluir a análise deste canal no momento.",
				Severidade: SeverityProblem,
				Evidencia:  evidence,
			},
		},
	}
}

// DigitalPresenceReport é um snapshot imutável da presença digital de um negócio.
// Uma nova análise sempre gera um novo relatório.
type DigitalPresenceReport struct {
	SchemaVersion int          `json:"schema_version"`
	GBP           PartialScore `json:"gbp"`
	Site          PartialScore `json:"site"`
	Social        PartialScore `json:"redes"`
	ScoreGeral    int          `json:"scoreGeral"`
	Problemas     []Finding    `json:"problemas"`
	Oportunidades []Finding    `json:"oportunidades"`
	Recomendacoes []string     `json:"recomendacoes"`
	GeradoEm      time.Time    `json:"geradoEm"`
}

// BusinessProfile são os metadados do Google Business Profile
type BusinessProfile struct {
	PlaceID             string   `json:"placeId"`
	Nome                string   `json:"nome"`
	Endereco            string   `json:"endereco"`
	Telefone            string   `json:"telefone,omitempty"`
	Website             string   `json:"website,omitempty"`
	NotaMedia           float64  `json:"notaMedia"`
	TotalAvaliacoes     int      `json:"totalAvaliacoes"`
	TotalFotos          int      `json:"totalFotos"`
	HorariosCompletos   float64  `json:"horariosCompletos"` // 0..1
	Categorias          []string `json:"categorias,omitempty"`
	StatusFuncionamento string   `json:"statusFuncionamento,omitempty"`
}

// SiteAudit é o resultado do auditor de sites
type SiteAudit struct {
	URL          string            `json:"url"`
	ScoreSite    int               `json:"scoreSite"`
	Findings     []Finding         `json:"achados"`
	RedesSociais map[string]string `json:"redesSociais,omitempty"`
}

type SocialProfile struct {
	Encontrado bool   `json:"encontrado"`
	URL        string `json:"url,omitempty"`
	Origem     string `json:"origem,omitempty"`
}

// SocialPresence é o resultado da sondagem de redes sociais
type SocialPresence struct {
	Instagram     SocialProfile `json:"instagram"`
	Facebook      SocialProfile `json:"facebook"`
	Score         int           `json:"score"`
	Recomendacoes []string      `json:"recomendacoes"`
	Findings      []Finding     `json:"achados"`
}
