package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/siteaudit"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/social"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/notifier"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/lead-intelligence-api/internal/api"
	"github.com/vfg2006/lead-intelligence-api/internal/api/handler"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/scheduler"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/prospecting"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/reconciling"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/scoring"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !log.Configure(cfg.App.LogLevel) {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	leadRepo := repository.NewLeadRepository(pgConn)
	followUpRepo := repository.NewFollowUpRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)

	// Coletores de presença digital
	googleIntegrator := google.New(googleclient.NewClient(cfg))
	auditor := siteaudit.New(cfg)
	prober := social.New(cfg)

	weights := scoring.WeightsFromConfig(cfg.Scoring)
	aggregator := scoring.NewAggregator(weights)

	pricingConfig := pricing.DefaultConfig()
	pricingConfig.Weights = weights
	pricer := pricing.NewAgent(pricingConfig)

	analyzer := analysing.NewService(googleIntegrator, auditor, prober, aggregator, pricer, cfg)

	router := notifier.NewRouter(
		notifier.NewEmailNotifier(cfg),
		notifier.NewWhatsAppNotifier(cfg),
		cfg.WhatsApp.Enabled,
	)

	followUpService := nurturing.NewService(leadRepo, followUpRepo, router, cfg)
	leadService := prospecting.NewService(leadRepo, followUpService)
	reconciler := reconciling.NewService(leadRepo, analyzer, followUpService, router, cfg)

	followUpProcessingService := scheduler.NewFollowUpProcessingService(followUpService, cfg)
	if err := followUpProcessingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de follow-ups")
	} else {
		logrus.Info("Agendador de follow-ups iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reconciler:    reconciler,
		Analyzer:      analyzer,
		Pricer:        pricer,
		Leads:         leadService,
		FollowUps:     followUpService,
		Authenticator: authenticator,
		CronJobs:      handler.CronJobServices{FollowUps: followUpProcessingService},
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
