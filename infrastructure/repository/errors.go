package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrLeadAlreadyExists = errors.New("lead já existe para este e-mail e estabelecimento")
	ErrLeadNotFound      = errors.New("lead não encontrado")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
