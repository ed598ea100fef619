package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/scheduler"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFollowUps = "followups"
)

// BatchJob é um job que pode ser disparado pelo chamador externo
type BatchJob interface {
	Run(ctx context.Context) (domain.ProcessamentoResultado, error)
	TriggerManualSync(ctx context.Context) error
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis para execução externa
type CronJobServices struct {
	FollowUps BatchJob
}

// RunCronJob executa um lote de forma síncrona e devolve o agregado.
// O lote continua mesmo que o chamador desista da requisição.
// Com ?async=true o lote roda em segundo plano e a resposta é 202.
func RunCronJob(cronType string, job BatchJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de "+cronType+" não disponível", nil)
			return
		}

		async := r.URL.Query().Get("async") == "true"
		log.ForContext(r.Context()).WithFields(log.Fields{
			"cron_type": cronType,
			"async":     async,
		}).Info("Cron job disparada externamente")

		if async {
			if err := job.TriggerManualSync(r.Context()); err != nil {
				writeCronError(w, r, err)
				return
			}
			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"type":   cronType,
				"status": "started",
			})
			return
		}

		result, err := job.Run(context.WithoutCancel(r.Context()))
		if err != nil {
			writeCronError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"type":   cronType,
			"result": result,
		})
	}
}

func writeCronError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, scheduler.ErrAlreadyRunning) {
		apiErrors.WriteError(w, apiErrors.ErrBatchAlreadyRunning, "Cron job já está em execução", nil)
		return
	}
	writeUsecaseError(w, r, err, "Erro ao executar cron job")
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.FollowUps != nil {
			status[CronJobTypeFollowUps] = services.FollowUps.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
