package prospecting

import (
	"errors"
	"fmt"
)

var (
	ErrLeadNotFound      = errors.New("lead não encontrado")
	ErrInvalidStatus     = errors.New("status de lead inválido")
	ErrInvalidTransition = errors.New("transição de status do lead inválida")
	ErrPersistence       = errors.New("erro de persistência")
)

// ProspectingError é um erro da gestão de leads com o código da API
type ProspectingError struct {
	Err     error
	Code    string
	LeadID  string
	Details string
}

func (e *ProspectingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProspectingError) Unwrap() error {
	return e.Err
}

func NewProspectingError(err error, code string, leadID string, details string) *ProspectingError {
	return &ProspectingError{
		Err:     err,
		Code:    code,
		LeadID:  leadID,
		Details: details,
	}
}
