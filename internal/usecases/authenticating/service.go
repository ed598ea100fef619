package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(claims domain.Claims, ttl time.Duration) (string, error)
	ValidateCronKey(key string) error
}

type Service struct {
	secret      []byte
	cronKeyHash []byte
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		secret:      []byte(cfg.Secret),
		cronKeyHash: []byte(strings.TrimSpace(cfg.CronKeyHash)),
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// GenerateToken assina um token HS256 para uso do painel e de scripts internos
func (s *Service) GenerateToken(claims domain.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateCronKey compara a chave do cabeçalho X-Cron-Key com o hash bcrypt configurado
func (s *Service) ValidateCronKey(key string) error {
	if len(s.cronKeyHash) == 0 {
		return NewAuthError(ErrCronDisabled, apiErrors.ErrInvalidCronKey, "")
	}

	if key == "" {
		return NewAuthError(ErrInvalidCronKey, apiErrors.ErrInvalidCronKey, "cabeçalho X-Cron-Key ausente")
	}

	if err := bcrypt.CompareHashAndPassword(s.cronKeyHash, []byte(key)); err != nil {
		return NewAuthError(ErrInvalidCronKey, apiErrors.ErrInvalidCronKey, "")
	}

	return nil
}
