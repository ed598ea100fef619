package googleclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googledomain "github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
)

func newTestClient(url string, qps float64) Client {
	return NewClient(&config.Config{
		Google: config.Google{PlacesURL: url, APIKey: "chave", Language: "pt-BR", QPS: qps, Burst: 1},
	})
}

func TestGoogleClient_GetPlaceDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/details/json", r.URL.Path)
		assert.Equal(t, "ChIJ1", r.URL.Query().Get("place_id"))
		assert.Equal(t, "chave", r.URL.Query().Get("key"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		w.Write([]byte(`{"status":"OK","result":{"name":"Oficina do Zé","rating":4.1,"user_ratings_total":12}}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL+"/maps/api/place", 10).GetPlaceDetails(context.Background(), "ChIJ1")
	require.NoError(t, err)
	assert.Equal(t, googledomain.StatusOK, resp.Status)
	assert.Equal(t, "Oficina do Zé", resp.Result.Name)
	assert.Equal(t, 12, resp.Result.UserRatingsTotal)
}

func TestGoogleClient_StatusHTTPInesperado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 10).GetPlaceDetails(context.Background(), "ChIJ1")
	assert.Error(t, err)
}

func TestGoogleClient_LimiteRespeitaContexto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0.01)

	_, err := client.GetPlaceDetails(context.Background(), "ChIJ1")
	require.NoError(t, err)

	// o segundo pedido precisaria esperar 100s pelo limitador
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.GetPlaceDetails(ctx, "ChIJ1")
	assert.Error(t, err)
}
