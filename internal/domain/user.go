package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims é o conteúdo do token emitido pelo painel administrativo
type Claims struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
