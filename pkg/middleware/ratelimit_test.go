package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

func TestIPRateLimiter(t *testing.T) {
	log.SetupTestLogger()
	handler := NewIPRateLimiter(0.001, 2).RateLimit()(echoClaims())

	request := func(remoteAddr, forwarded string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", nil)
		req.RemoteAddr = remoteAddr
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1:5000", "").Code)
	assert.Equal(t, http.StatusOK, request("10.0.0.1:5001", "").Code)

	rec := request("10.0.0.1:5002", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, apiErrors.ErrTooManyRequests, errorCode(t, rec))

	// outro IP tem a própria cota
	assert.Equal(t, http.StatusOK, request("10.0.0.2:5000", "").Code)

	// atrás do proxy vale o primeiro IP do X-Forwarded-For
	assert.Equal(t, http.StatusOK, request("10.0.0.1:5003", "200.1.1.1, 10.0.0.1").Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{name: "remote addr com porta", remoteAddr: "192.0.2.10:443", expected: "192.0.2.10"},
		{name: "remote addr sem porta", remoteAddr: "192.0.2.10", expected: "192.0.2.10"},
		{name: "x-forwarded-for", remoteAddr: "10.0.0.1:80", forwarded: " 200.1.1.1 , 10.0.0.1", expected: "200.1.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}
