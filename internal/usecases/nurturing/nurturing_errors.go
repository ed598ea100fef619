package nurturing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrEmptyUpdate       = errors.New("nenhum campo para atualizar")
	ErrInvalidStatus     = errors.New("status de follow-up inválido")
	ErrInvalidTransition = errors.New("transição de status inválida")

	// Erros de estado
	ErrLeadNotFound     = errors.New("lead não encontrado")
	ErrFollowUpNotFound = errors.New("follow-up não encontrado")
	ErrTerminalState    = errors.New("follow-up já está em estado terminal")
	ErrConflict         = errors.New("follow-up alterado por outro processo")

	// Erros de infraestrutura
	ErrPersistence  = errors.New("erro de persistência")
	ErrGenerateID   = errors.New("erro ao gerar identificador")
	ErrNotification = errors.New("erro ao enviar notificação")
)

// NurturingError é um erro com contexto adicional para follow-ups
type NurturingError struct {
	Err        error
	Code       string
	FollowUpID string
	Details    string
}

func (e *NurturingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *NurturingError) Unwrap() error {
	return e.Err
}

func NewNurturingError(err error, code string, details string) *NurturingError {
	return &NurturingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewNurturingErrorWithID(err error, code string, followUpID string, details string) *NurturingError {
	return &NurturingError{
		Err:        err,
		Code:       code,
		FollowUpID: followUpID,
		Details:    details,
	}
}

func persistenceError(details string, err error) *NurturingError {
	return NewNurturingError(ErrPersistence, apiErrors.ErrDatabaseOperation, fmt.Sprintf("%s: %v", details, err))
}
