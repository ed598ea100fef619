package domain

import (
	"time"
)

type FollowUpStatus string

const (
	FollowUpPendente  FollowUpStatus = "PENDENTE"
	FollowUpRealizado FollowUpStatus = "REALIZADO"
	FollowUpCancelado FollowUpStatus = "CANCELADO"
)

func (s FollowUpStatus) IsValid() bool {
	return s == FollowUpPendente || s == FollowUpRealizado || s == FollowUpCancelado
}

// IsTerminal indica que não há transição de saída a partir do status
func (s FollowUpStatus) IsTerminal() bool {
	return s == FollowUpRealizado || s == FollowUpCancelado
}

// CanTransitionTo é a regra única usada pelo processamento em lote e pela edição manual
func (s FollowUpStatus) CanTransitionTo(next FollowUpStatus) bool {
	return s == FollowUpPendente && next.IsTerminal()
}

type Canal string

const (
	CanalEmail    Canal = "EMAIL"
	CanalWhatsApp Canal = "WHATSAPP"
)

type FollowUp struct {
	ID            string         `json:"id"`
	LeadID        string         `json:"leadId"`
	SequenceIndex int            `json:"sequenceIndex"`
	AgendadoPara  time.Time      `json:"agendadoPara"`
	Status        FollowUpStatus `json:"status"`
	Canal         Canal          `json:"canal"`
	Resultado     *string        `json:"resultado"`
	Observacoes   *string        `json:"observacoes"`
	ExecutadoEm   *time.Time     `json:"executadoEm"`
	Tentativas    int            `json:"tentativas"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// DueFollowUp é um follow-up vencido junto com os dados de contato do lead
type DueFollowUp struct {
	FollowUp
	LeadNome        string `json:"leadNome"`
	LeadEmail       string `json:"leadEmail"`
	LeadTelefone    string `json:"leadTelefone"`
	LeadNomeEmpresa string `json:"leadNomeEmpresa"`
}

type UpdateFollowUpRequest struct {
	Status      *FollowUpStatus `json:"status,omitempty"`
	Resultado   *string         `json:"resultado,omitempty"`
	Observacoes *string         `json:"observacoes,omitempty"`
}

func (r UpdateFollowUpRequest) IsEmpty() bool {
	return r.Status == nil && r.Resultado == nil && r.Observacoes == nil
}

type FollowUpStats struct {
	Pendentes  int `json:"pendentes"`
	Realizados int `json:"realizados"`
	Cancelados int `json:"cancelados"`
	Atrasados  int `json:"atrasados"`
	Proximos   int `json:"proximos"`
	Total      int `json:"total"`
}

type FollowUpItemError struct {
	FollowUpID string `json:"followUpId"`
	LeadID     string `json:"leadId"`
	Erro       string `json:"erro"`
}

// ProcessamentoResultado agrega o resultado de uma execução do lote
type ProcessamentoResultado struct {
	Processed int                 `json:"processed"`
	Failed    int                 `json:"failed"`
	Skipped   int                 `json:"skipped"`
	Errors    []FollowUpItemError `json:"errors,omitempty"`
}

// Notificacao é a mensagem entregue ao notificador externo
type Notificacao struct {
	Canal    Canal
	Nome     string
	Email    string
	Telefone string
	Assunto  string
	Mensagem string
}
