package googleclient

import (
	"context"
	"net/http"
	"time"

	googledomain "github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"golang.org/x/time/rate"
)

type Client interface {
	GetPlaceDetails(ctx context.Context, placeID string) (*googledomain.PlaceDetailsResponse, error)
}

type GoogleClient struct {
	httpClient *http.Client
	config     config.Google
	limiter    *rate.Limiter
}

// NewClient cria o cliente da Places API com limite de requisições por segundo
func NewClient(cfg *config.Config) Client {
	qps := cfg.Google.QPS
	if qps <= 0 {
		qps = 1
	}
	burst := cfg.Google.Burst
	if burst <= 0 {
		burst = 1
	}

	return &GoogleClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		config:  cfg.Google,
		limiter: rate.NewLimiter(rate.Limit(qps), burst),
	}
}
