package domain

import "errors"

// ErrPlaceNotFound indica que o Google não reconhece o place id informado
var ErrPlaceNotFound = errors.New("estabelecimento não encontrado")
