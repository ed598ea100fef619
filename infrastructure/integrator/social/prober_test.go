package social

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

func newTestProber(base string) *SocialProber {
	return &SocialProber{
		httpClient:    &http.Client{Timeout: 2 * time.Second},
		userAgent:     "lead-intelligence-test",
		instagramBase: base + "/ig",
		facebookBase:  base + "/fb",
	}
}

func findingCodes(findings []domain.Finding) []string {
	result := make([]string, 0, len(findings))
	for _, f := range findings {
		result = append(result, f.Code)
	}
	return result
}

func TestSocialProber_Probe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/site-com-redes", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<a href="https://instagram.com/padariacentral">ig</a>
			<a href="https://www.facebook.com/padariacentral">fb</a>
		</body></html>`)
	})
	mux.HandleFunc("/site-sem-redes", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h1>Padaria</h1></body></html>`)
	})
	mux.HandleFunc("/ig/padaria.central/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	tests := []struct {
		name          string
		nome          string
		siteURL       string
		expectedScore int
		expectedIG    string
		expectedFB    string
		expectedCodes []string
	}{
		{
			name:          "redes encontradas no site",
			nome:          "Padaria Central",
			siteURL:       server.URL + "/site-com-redes",
			expectedScore: pontosInstagram + pontosFacebook + 2*pontosNoSite,
			expectedIG:    origemSite,
			expectedFB:    origemSite,
			expectedCodes: []string{domain.FindingRedesEncontradas},
		},
		{
			name:          "instagram encontrado pela busca e fora do site",
			nome:          "Padaria Central",
			siteURL:       server.URL + "/site-sem-redes",
			expectedScore: pontosInstagram,
			expectedIG:    origemBusca,
			expectedCodes: []string{
				domain.FindingSemFacebook,
				domain.FindingRedesForaDoSite,
				domain.FindingRedesEncontradas,
			},
		},
		{
			name:          "sem site e sem redes",
			nome:          "Mecânica do Zé",
			expectedScore: 0,
			expectedCodes: []string{domain.FindingSemRedesSociais},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := newTestProber(server.URL)

			presence, err := prober.Probe(context.Background(), tt.nome, tt.siteURL)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedScore, presence.Score)
			assert.Equal(t, tt.expectedIG, presence.Instagram.Origem)
			assert.Equal(t, tt.expectedFB, presence.Facebook.Origem)
			assert.Equal(t, tt.expectedCodes, findingCodes(presence.Findings))
			assert.NotEmpty(t, presence.Recomendacoes)
		})
	}
}

func TestSocialProber_Probe_ContextoCancelado(t *testing.T) {
	prober := newTestProber("http://127.0.0.1:1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	presence, err := prober.Probe(ctx, "Padaria Central", "")

	assert.Nil(t, presence)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCandidateHandles(t *testing.T) {
	tests := []struct {
		name     string
		nome     string
		expected []string
	}{
		{name: "nome simples", nome: "Academia", expected: []string{"academia"}},
		{name: "acentos e stopwords", nome: "Padaria São João da Vila", expected: []string{"padariasaojoaovila", "padaria.sao.joao.vila", "padaria_sao_joao_vila"}},
		{name: "símbolos", nome: "Pães & Cia LTDA", expected: []string{"paescia", "paes.cia", "paes_cia"}},
		{name: "vazio", nome: "   ", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CandidateHandles(tt.nome))
		})
	}
}
