package domain

import (
	"strings"
	"time"
)

type LeadStatus string

const (
	LeadStatusNovo       LeadStatus = "NOVO"
	LeadStatusContatado  LeadStatus = "CONTATADO"
	LeadStatusNegociando LeadStatus = "NEGOCIANDO"
	LeadStatusConvertido LeadStatus = "CONVERTIDO"
	LeadStatusPerdido    LeadStatus = "PERDIDO"
)

// leadTransitions lista para quais status cada status pode avançar
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNovo:       {LeadStatusContatado, LeadStatusNegociando, LeadStatusConvertido, LeadStatusPerdido},
	LeadStatusContatado:  {LeadStatusNegociando, LeadStatusConvertido, LeadStatusPerdido},
	LeadStatusNegociando: {LeadStatusConvertido, LeadStatusPerdido},
	LeadStatusConvertido: {},
	LeadStatusPerdido:    {},
}

func (s LeadStatus) IsValid() bool {
	_, ok := leadTransitions[s]
	return ok
}

// IsClosed indica se o lead saiu do funil de nutrição
func (s LeadStatus) IsClosed() bool {
	return s == LeadStatusConvertido || s == LeadStatusPerdido
}

func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	for _, allowed := range leadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LeadIdentity é a chave que define "a mesma consulta de negócio"
type LeadIdentity struct {
	Email   string
	PlaceID string
}

func NewLeadIdentity(email, placeID string) LeadIdentity {
	return LeadIdentity{
		Email:   strings.ToLower(strings.TrimSpace(email)),
		PlaceID: strings.TrimSpace(placeID),
	}
}

type Lead struct {
	ID            string                `json:"id"`
	Email         string                `json:"email"`
	PlaceID       string                `json:"placeId"`
	Nome          string                `json:"nome"`
	Telefone      string                `json:"telefone"`
	NomeEmpresa   string                `json:"nomeEmpresa"`
	Segmento      string                `json:"segmento"`
	SiteURL       *string               `json:"siteUrl"`
	Status        LeadStatus            `json:"status"`
	ScoreGeral    int                   `json:"scoreGeral"`
	ScoreGBP      int                   `json:"scoreGBP"`
	ScoreSite     int                   `json:"scoreSite"`
	ScoreRedes    int                   `json:"scoreRedes"`
	ValorSugerido float64               `json:"valorSugerido"`
	Relatorio     DigitalPresenceReport `json:"relatorio"`
	Proposta      PricingProposal       `json:"proposta"`
	VendedorID    *string               `json:"vendedorId"`
	PesquisaEm    time.Time             `json:"pesquisaEm"`
	ContatadoEm   *time.Time            `json:"contatadoEm"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func (l *Lead) Identity() LeadIdentity {
	return NewLeadIdentity(l.Email, l.PlaceID)
}

// HasSite indica se o lead possui um site cadastrado
func (l *Lead) HasSite() bool {
	return l.SiteURL != nil && strings.TrimSpace(*l.SiteURL) != ""
}

// ApplyAnalysis copia o relatório e a proposta para o lead, mantendo as colunas
// desnormalizadas consistentes com o snapshot
func (l *Lead) ApplyAnalysis(result *AnalysisResult) {
	l.Relatorio = result.Report
	l.Proposta = result.Proposal
	l.ScoreGeral = result.Report.ScoreGeral
	l.ScoreGBP = result.Report.GBP.Value
	l.ScoreSite = result.Report.Site.Value
	l.ScoreRedes = result.Report.Social.Value
	l.ValorSugerido = result.Proposal.ValorImplantacao
}

// LeadSubmission é uma submissão recebida do formulário público
type LeadSubmission struct {
	Email        string `json:"email" validate:"required,email"`
	PlaceID      string `json:"placeId" validate:"required"`
	Nome         string `json:"nome" validate:"required,max=120"`
	Telefone     string `json:"telefone" validate:"omitempty,max=30"`
	NomeEmpresa  string `json:"nomeEmpresa" validate:"omitempty,max=160"`
	Segmento     string `json:"segmento" validate:"omitempty,max=40"`
	SiteURL      string `json:"siteUrl" validate:"omitempty,url"`
	Concorrentes *int   `json:"concorrentes" validate:"omitempty,min=0"`
}

func (s LeadSubmission) Identity() LeadIdentity {
	return NewLeadIdentity(s.Email, s.PlaceID)
}

type ReconcileDecision string

const (
	DecisionCreate  ReconcileDecision = "CREATE"
	DecisionReuse   ReconcileDecision = "REUSE"
	DecisionRefresh ReconcileDecision = "REFRESH"
)

// LeadFilter enumera os predicados aceitos na listagem de leads
type LeadFilter struct {
	Status     *LeadStatus
	VendedorID *string
	Busca      string
	Limit      int
	Offset     int
}

type LeadPage struct {
	Leads []*Lead `json:"leads"`
	Total int     `json:"total"`
}

type UpdateLeadStatusRequest struct {
	Status     LeadStatus `json:"status" validate:"required"`
	VendedorID *string    `json:"vendedorId,omitempty"`
}
