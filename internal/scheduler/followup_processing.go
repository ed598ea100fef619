package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

var ErrAlreadyRunning = errors.New("processamento de follow-ups já em andamento")

// FollowUpProcessingConfig representa a configuração do agendador de follow-ups
type FollowUpProcessingConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MaxTentativas int
	BatchLimit    int
}

// FollowUpProcessingService agenda e executa o processamento em lote dos follow-ups vencidos
type FollowUpProcessingService struct {
	scheduler *gocron.Scheduler
	config    FollowUpProcessingConfig
	followUps nurturing.FollowUpService

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.ProcessamentoResultado
	lastError           string
}

func NewFollowUpProcessingService(followUps nurturing.FollowUpService, appConfig *config.Config) *FollowUpProcessingService {
	processingConfig := FollowUpProcessingConfig{
		CronSchedule:  appConfig.FollowUp.CronSchedule,
		SyncEnabled:   appConfig.FollowUp.Enabled,
		MaxTentativas: appConfig.FollowUp.MaxTentativas,
		BatchLimit:    appConfig.FollowUp.BatchLimit,
	}

	log.L.WithFields(log.Fields{
		"followup_cron":           processingConfig.CronSchedule,
		"followup_sync_enabled":   processingConfig.SyncEnabled,
		"followup_max_tentativas": processingConfig.MaxTentativas,
		"followup_batch_limit":    processingConfig.BatchLimit,
	}).Info("Configuração do agendador de follow-ups carregada")

	return &FollowUpProcessingService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    processingConfig,
		followUps: followUps,
	}
}

// Start inicia o agendador. Com o agendador desabilitado o lote ainda pode ser
// disparado pelo endpoint do cron.
func (s *FollowUpProcessingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Processamento agendado de follow-ups desabilitado por configuração")
		return nil
	}

	log.L.WithField("followup_cron", s.config.CronSchedule).Info("Iniciando agendador de follow-ups")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(ctx); err != nil && !errors.Is(err, ErrAlreadyRunning) {
			log.L.WithField("error", err.Error()).Error("Erro no processamento agendado de follow-ups")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar processamento de follow-ups: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de follow-ups")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa um lote e devolve o agregado. Execuções sobrepostas na mesma
// instância retornam ErrAlreadyRunning; entre instâncias a exclusão fica a cargo
// do claim de cada follow-up.
func (s *FollowUpProcessingService) Run(ctx context.Context) (domain.ProcessamentoResultado, error) {
	if !s.begin() {
		log.ForContext(ctx).Info("Processamento de follow-ups já em andamento, ignorando")
		return domain.ProcessamentoResultado{}, ErrAlreadyRunning
	}
	return s.execute(ctx)
}

// TriggerManualSync reserva a execução e processa o lote em segundo plano.
// O lote não herda o cancelamento de ctx, apenas os seus valores.
func (s *FollowUpProcessingService) TriggerManualSync(ctx context.Context) error {
	if !s.begin() {
		log.ForContext(ctx).Info("Processamento de follow-ups já em andamento, ignorando solicitação manual")
		return ErrAlreadyRunning
	}

	log.ForContext(ctx).Info("Iniciando processamento manual de follow-ups")
	go func() {
		if _, err := s.execute(context.WithoutCancel(ctx)); err != nil {
			log.ForContext(ctx).WithField("error", err.Error()).Error("Erro no processamento manual de follow-ups")
		}
	}()
	return nil
}

func (s *FollowUpProcessingService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *FollowUpProcessingService) execute(ctx context.Context) (domain.ProcessamentoResultado, error) {
	startTime := time.Now()
	result, err := s.followUps.ProcessarFollowUpsPendentes(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastResult = &result
	}
	s.syncMutex.Unlock()

	if err != nil {
		return result, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"duration_ms":        time.Since(startTime).Milliseconds(),
		"followup_processed": result.Processed,
		"followup_failed":    result.Failed,
		"followup_skipped":   result.Skipped,
	}).Info("Processamento de follow-ups concluído")

	return result, nil
}

// GetStatus retorna o status atual do agendador
func (s *FollowUpProcessingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"max_tentativas":         s.config.MaxTentativas,
		"batch_limit":            s.config.BatchLimit,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}
