package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"github.com/vfg2006/lead-intelligence-api/pkg/middleware"
)

var (
	adminClaims    = &domain.Claims{UserID: "admin-1", UserRoleID: middleware.RoleAdmin}
	vendedorClaims = &domain.Claims{UserID: "vend-7", UserRoleID: middleware.RoleVendedor}
)

// serve executa a requisição pelo router, com o usuário já autenticado quando informado
func serve(t *testing.T, routes []router.Route, method, target, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()
	log.SetupTestLogger()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}

