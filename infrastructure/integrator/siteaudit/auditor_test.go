package siteaudit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

const completePage = `<!doctype html>
<html><head>
<title> Clínica Sorriso </title>
<meta name="description" content="Clínica odontológica em Campinas">
<meta name="viewport" content="width=device-width, initial-scale=1">
</head><body>
<h1>Clínica Sorriso</h1>
<a href="tel:+551933334444">Ligue</a>
<a href="https://www.instagram.com/clinicasorriso/">Instagram</a>
<a href="https://facebook.com/clinicasorriso">Facebook</a>
<script>var x = "<h1>não conta</h1>";</script>
</body></html>`

const emptyPage = `<html><body><p>Em construção</p></body></html>`

func newTestAuditor(client *http.Client) *SiteAuditor {
	return &SiteAuditor{
		httpClient:    client,
		userAgent:     "teste",
		fastThreshold: 2 * time.Second,
		slowThreshold: 4 * time.Second,
		now:           time.Now,
	}
}

func codes(findings []domain.Finding) []string {
	result := []string{}
	for _, f := range findings {
		result = append(result, f.Code)
	}
	return result
}

func TestSiteAuditor_Audit(t *testing.T) {
	t.Run("página completa via HTTPS", func(t *testing.T) {
		server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "teste", r.Header.Get("User-Agent"))
			w.Write([]byte(completePage))
		}))
		defer server.Close()

		audit, err := newTestAuditor(server.Client()).Audit(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Equal(t, 100, audit.ScoreSite)
		assert.Equal(t, []string{domain.FindingSiteRapido}, codes(audit.Findings))
		assert.Equal(t, "https://www.instagram.com/clinicasorriso/", audit.RedesSociais["instagram"])
		assert.Equal(t, "https://facebook.com/clinicasorriso", audit.RedesSociais["facebook"])
	})

	t.Run("página vazia sem HTTPS", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(emptyPage))
		}))
		defer server.Close()

		audit, err := newTestAuditor(server.Client()).Audit(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Equal(t, pontosVelocidade, audit.ScoreSite)
		assert.Equal(t, []string{
			domain.FindingSiteSemHTTPS,
			domain.FindingSiteSemTitulo,
			domain.FindingSiteSemMetaDescricao,
			domain.FindingSiteNaoResponsivo,
			domain.FindingSiteSemH1,
			domain.FindingSiteRapido,
			domain.FindingSiteSemContato,
			domain.FindingSiteSemRedes,
		}, codes(audit.Findings))
	})

	t.Run("site lento", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completePage))
		}))
		defer server.Close()

		auditor := newTestAuditor(server.Client())
		calls := 0
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		auditor.now = func() time.Time {
			calls++
			if calls == 1 {
				return base
			}
			return base.Add(5 * time.Second)
		}

		audit, err := auditor.Audit(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, codes(audit.Findings), domain.FindingSiteLento)
		assert.Equal(t, 100-pontosHTTPS-pontosVelocidade, audit.ScoreSite)
	})

	t.Run("status de erro falha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestAuditor(server.Client()).Audit(context.Background(), server.URL)
		assert.Error(t, err)
	})

	t.Run("contexto cancelado falha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := newTestAuditor(server.Client()).Audit(ctx, server.URL)
		assert.Error(t, err)
	})
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "exemplo.com.br", want: "http://exemplo.com.br"},
		{input: " https://exemplo.com.br/ ", want: "https://exemplo.com.br/"},
		{input: "ftp://exemplo.com.br", wantErr: true},
		{input: "", wantErr: true},
		{input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := NormalizeURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestParsePage_LinksDeContato(t *testing.T) {
	base, _ := url.Parse("https://exemplo.com.br/")
	page := `<a href="https://wa.me/5511999999999">Zap</a><a href="mailto:oi@exemplo.com.br">Email</a>
	<a href="https://instagram.com/">raiz não conta</a><a href="#topo">topo</a>`

	signals, err := ParsePage(strings.NewReader(page), base)
	require.NoError(t, err)

	assert.True(t, signals.HasWhatsApp)
	assert.True(t, signals.HasEmailLink)
	assert.False(t, signals.HasPhoneLink)
	assert.Empty(t, signals.SocialLinks)
}
