package reconciling

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSubmission = errors.New("submissão de lead inválida")
	ErrPersistence       = errors.New("erro de persistência")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
	ErrIdentityConflict  = errors.New("conflito de identidade do lead")
)

// ReconcileError é um erro da reconciliação com o código da API
type ReconcileError struct {
	Err     error
	Code    string
	LeadID  string
	Details string
}

func (e *ReconcileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

func NewReconcileError(err error, code string, details string) *ReconcileError {
	return &ReconcileError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewReconcileErrorWithID(err error, code string, leadID string, details string) *ReconcileError {
	return &ReconcileError{
		Err:     err,
		Code:    code,
		LeadID:  leadID,
		Details: details,
	}
}
