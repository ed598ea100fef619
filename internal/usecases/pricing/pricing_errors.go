package pricing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
)

var (
	ErrSegmentoDesconhecido = errors.New("segmento desconhecido")
)

// PricingError é um erro do agente de precificação com o código da API
type PricingError struct {
	Err     error
	Code    string
	Details string
}

func (e *PricingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PricingError) Unwrap() error {
	return e.Err
}

func NewPricingError(baseErr error, details string) *PricingError {
	code := apiErrors.ErrInternalServer
	if errors.Is(baseErr, ErrSegmentoDesconhecido) {
		code = apiErrors.ErrInvalidRequest
	}

	return &PricingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
