package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/lead-intelligence-api/internal/api/handler"
	"github.com/vfg2006/lead-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/prospecting"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/reconciling"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"github.com/vfg2006/lead-intelligence-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Reconciler    reconciling.Reconciler
	Analyzer      analysing.Analyzer
	Pricer        pricing.Pricer
	Leads         prospecting.LeadService
	FollowUps     nurturing.FollowUpService
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
	Database      handler.Pinger
}

func New(config *config.Config, services Services) (*Server, error) {
	limiter := middleware.NewIPRateLimiter(config.Server.PublicRPS, config.Server.PublicBurst)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services, limiter),
			ReadHeaderTimeout: 2 * time.Second,
			// a análise síncrona soma os timeouts dos coletores
			WriteTimeout: 30 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, services Services, limiter *middleware.IPRateLimiter) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.PublicLeads(services.Reconciler, services.Analyzer, limiter)...),
		router.WithRoutes(handler.Leads(services.Leads)...),
		router.WithRoutes(handler.Pricing(services.Pricer)...),
		router.WithRoutes(handler.FollowUps(services.FollowUps)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs, services.Authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithField("error", err.Error()).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithField("error", err.Error()).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
