package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	HeaderCronKey = "X-Cron-Key"
)

type publicRoute struct {
	method string // vazio aceita qualquer método
	path   string
	prefix bool
}

// Rotas que não exigem token. As rotas do cron usam X-Cron-Key no lugar do token.
var publicRoutes = []publicRoute{
	{method: http.MethodGet, path: "/healthcheck"},
	{method: http.MethodPost, path: "/v1/leads"},
	{method: http.MethodPost, path: "/v1/analysis"},
	{method: http.MethodGet, path: "/v1/segments", prefix: true},
	{path: "/v1/cron/", prefix: true},
}

func isPublic(r *http.Request) bool {
	for _, route := range publicRoutes {
		if route.method != "" && route.method != r.Method {
			continue
		}
		if route.prefix && strings.HasPrefix(r.URL.Path, route.path) {
			return true
		}
		if r.URL.Path == route.path {
			return true
		}
	}
	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithField("error", err.Error()).Debug("Token recusado")
				apiErrors.WriteError(w, authenticating.CodeOf(err), "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CronKeyMiddleware protege os gatilhos externos do processamento em lote
func CronKeyMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authService.ValidateCronKey(r.Header.Get(HeaderCronKey)); err != nil {
				log.ForContext(r.Context()).WithField("error", err.Error()).Warn("Chamada ao cron recusada")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCronKey, "Chave do cron inválida", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext retorna o usuário autenticado da requisição
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
