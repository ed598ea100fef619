package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
)

var (
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrInvalidCronKey = errors.New("chave do cron inválida")
	ErrCronDisabled   = errors.New("gatilho externo do cron não configurado")
)

// AuthError carrega o código da API usado pelos middlewares ao recusar a requisição
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// CodeOf retorna o código da API de um erro de autenticação; outros erros viram token inválido
func CodeOf(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return apiErrors.ErrInvalidToken
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
