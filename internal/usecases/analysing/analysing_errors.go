package analysing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
)

var (
	ErrInvalidRequest = errors.New("requisição de análise inválida")
	ErrCanceled       = errors.New("análise interrompida")
)

type AnalysisError struct {
	Err     error
	Code    string
	Details string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func invalidRequest(details string) *AnalysisError {
	return NewAnalysisError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, details)
}
