package nurturing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"github.com/vfg2006/lead-intelligence-api/pkg/utils"
)

const (
	defaultUpcomingLimit = 20
	maxUpcomingLimit     = 100
	resultadoEnviado     = "ENVIADO"
	defaultNotifyTimeout = time.Minute
)

// Notifier entrega o contato de um follow-up pelo canal escolhido
type Notifier interface {
	Notify(ctx context.Context, n domain.Notificacao) error
}

type FollowUpService interface {
	AgendarFollowUpsParaLead(ctx context.Context, leadID string) ([]*domain.FollowUp, error)
	ProcessarFollowUpsPendentes(ctx context.Context) (domain.ProcessamentoResultado, error)
	ListarProximosFollowUps(ctx context.Context, limit int) ([]*domain.FollowUp, error)
	ObterEstatisticasFollowUp(ctx context.Context) (*domain.FollowUpStats, error)
	AtualizarFollowUp(ctx context.Context, id string, req domain.UpdateFollowUpRequest) (*domain.FollowUp, error)
	CancelarPendentesDoLead(ctx context.Context, leadID string) (int64, error)
}

type Service struct {
	leadRepository     repository.LeadRepository
	followUpRepository repository.FollowUpRepository
	notifier           Notifier
	cfg                config.FollowUp
	now                func() time.Time
	newToken           func() string
	newID              func() (string, error)
}

func NewService(
	leadRepository repository.LeadRepository,
	followUpRepository repository.FollowUpRepository,
	notifier Notifier,
	cfg *config.Config,
) FollowUpService {
	return &Service{
		leadRepository:     leadRepository,
		followUpRepository: followUpRepository,
		notifier:           notifier,
		cfg:                cfg.FollowUp,
		now:                time.Now,
		newToken:           func() string { return uuid.New().String() },
		newID:              utils.GenerateID,
	}
}

// AgendarFollowUpsParaLead cria a cadência de contatos a partir da data da pesquisa.
// Chamadas repetidas não duplicam o lote enquanto houver follow-ups pendentes.
func (s *Service) AgendarFollowUpsParaLead(ctx context.Context, leadID string) ([]*domain.FollowUp, error) {
	lead, err := s.leadRepository.GetByID(ctx, leadID)
	if err != nil {
		return nil, persistenceError("falha ao buscar lead", err)
	}
	if lead == nil {
		return nil, NewNurturingError(ErrLeadNotFound, apiErrors.ErrLeadNotFound, leadID)
	}
	if lead.Status.IsClosed() {
		log.ForContext(ctx).WithField("lead_id", leadID).Info("lead encerrado, follow-ups não agendados")
		return []*domain.FollowUp{}, nil
	}

	now := s.now().UTC()
	canal := s.canalFor(lead)

	followUps := make([]*domain.FollowUp, 0, len(s.cfg.Cadence))
	for i, offset := range s.cfg.Cadence {
		id, err := s.newID()
		if err != nil {
			return nil, NewNurturingError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}

		followUps = append(followUps, &domain.FollowUp{
			ID:            id,
			LeadID:        lead.ID,
			SequenceIndex: i,
			AgendadoPara:  lead.PesquisaEm.Add(offset).UTC(),
			Status:        domain.FollowUpPendente,
			Canal:         canal,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	created, err := s.followUpRepository.CreateBatchIfNoPending(ctx, lead.ID, followUps)
	if err != nil {
		return nil, persistenceError("falha ao agendar follow-ups", err)
	}
	if !created {
		log.ForContext(ctx).WithField("lead_id", leadID).Debug("lead já possui follow-ups pendentes")
		return []*domain.FollowUp{}, nil
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"lead_id":        leadID,
		"followup_count": len(followUps),
		"followup_canal": canal,
	}).Info("follow-ups agendados")

	return followUps, nil
}

// ProcessarFollowUpsPendentes reivindica e executa os follow-ups vencidos.
// Falhas individuais entram no resultado; apenas a falha da listagem é retornada como erro.
func (s *Service) ProcessarFollowUpsPendentes(ctx context.Context) (domain.ProcessamentoResultado, error) {
	result := domain.ProcessamentoResultado{Errors: []domain.FollowUpItemError{}}

	now := s.now().UTC()
	cutoff := now.Add(-s.cfg.ClaimLease)

	due, err := s.followUpRepository.ListDue(ctx, repository.DueQuery{
		Now:           now,
		LeaseCutoff:   cutoff,
		MaxTentativas: s.cfg.MaxTentativas,
		Limit:         s.cfg.BatchLimit,
	})
	if err != nil {
		return result, persistenceError("falha ao listar follow-ups vencidos", err)
	}

	for _, d := range due {
		if ctx.Err() != nil {
			break
		}
		s.processOne(ctx, d, cutoff, &result)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"followup_processed": result.Processed,
		"followup_failed":    result.Failed,
		"followup_skipped":   result.Skipped,
	}).Info("processamento de follow-ups concluído")

	return result, nil
}

func (s *Service) processOne(ctx context.Context, d *domain.DueFollowUp, cutoff time.Time, result *domain.ProcessamentoResultado) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"followup_id": d.ID,
		"lead_id":     d.LeadID,
	})

	fail := func(err error) {
		result.Failed++
		result.Errors = append(result.Errors, domain.FollowUpItemError{
			FollowUpID: d.ID,
			LeadID:     d.LeadID,
			Erro:       err.Error(),
		})
	}

	token := s.newToken()
	claimed, err := s.followUpRepository.Claim(ctx, d.ID, token, s.now().UTC(), cutoff)
	if err != nil {
		logger.WithError(err).Error("falha ao reivindicar follow-up")
		fail(err)
		return
	}
	if !claimed {
		result.Skipped++
		return
	}

	if err := s.notify(ctx, d); err != nil {
		logger.WithError(err).Warn("falha ao notificar lead, follow-up devolvido para a fila")
		if releaseErr := s.followUpRepository.Release(ctx, d.ID, token, s.now().UTC()); releaseErr != nil {
			logger.WithError(releaseErr).Error("falha ao liberar follow-up")
		}
		fail(fmt.Errorf("%w: %v", ErrNotification, err))
		return
	}

	completed, err := s.followUpRepository.Complete(ctx, d.ID, token, s.now().UTC(), resultadoEnviado)
	if err != nil {
		logger.WithError(err).Error("falha ao concluir follow-up")
		fail(err)
		return
	}
	if !completed {
		logger.Warn("reivindicação expirada antes da conclusão")
		result.Skipped++
		return
	}

	result.Processed++
}

// notify limita o envio a NotifyTimeout, que a configuração mantém abaixo do lease do claim
func (s *Service) notify(ctx context.Context, d *domain.DueFollowUp) error {
	timeout := s.cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	notifyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return s.notifier.Notify(notifyCtx, buildNotification(d))
}

func (s *Service) ListarProximosFollowUps(ctx context.Context, limit int) ([]*domain.FollowUp, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	if limit > maxUpcomingLimit {
		limit = maxUpcomingLimit
	}

	followUps, err := s.followUpRepository.ListUpcoming(ctx, limit)
	if err != nil {
		return nil, persistenceError("falha ao listar próximos follow-ups", err)
	}

	return followUps, nil
}

func (s *Service) ObterEstatisticasFollowUp(ctx context.Context) (*domain.FollowUpStats, error) {
	stats, err := s.followUpRepository.Stats(ctx, s.now().UTC())
	if err != nil {
		return nil, persistenceError("falha ao calcular estatísticas", err)
	}

	return stats, nil
}

// AtualizarFollowUp aplica a edição manual. Estados terminais não aceitam mudança de status.
func (s *Service) AtualizarFollowUp(ctx context.Context, id string, req domain.UpdateFollowUpRequest) (*domain.FollowUp, error) {
	if req.IsEmpty() {
		return nil, NewNurturingErrorWithID(ErrEmptyUpdate, apiErrors.ErrMissingRequiredData, id, "")
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, NewNurturingErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, id, string(*req.Status))
	}

	current, err := s.followUpRepository.GetByID(ctx, id)
	if err != nil {
		return nil, persistenceError("falha ao buscar follow-up", err)
	}
	if current == nil {
		return nil, NewNurturingErrorWithID(ErrFollowUpNotFound, apiErrors.ErrFollowUpNotFound, id, "")
	}

	var executadoEm *time.Time
	if req.Status != nil {
		if current.Status.IsTerminal() {
			return nil, NewNurturingErrorWithID(ErrTerminalState, apiErrors.ErrFollowUpTerminal, id, string(current.Status))
		}
		if !current.Status.CanTransitionTo(*req.Status) {
			return nil, NewNurturingErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidRequest, id,
				fmt.Sprintf("%s -> %s", current.Status, *req.Status))
		}
		now := s.now().UTC()
		executadoEm = &now
	}

	if req.Resultado != nil {
		trimmed := strings.TrimSpace(*req.Resultado)
		req.Resultado = &trimmed
	}

	updated, err := s.followUpRepository.Update(ctx, id, req, executadoEm, s.now().UTC())
	if err != nil {
		return nil, persistenceError("falha ao atualizar follow-up", err)
	}
	if !updated {
		return nil, NewNurturingErrorWithID(ErrConflict, apiErrors.ErrFollowUpConflict, id, "")
	}

	result, err := s.followUpRepository.GetByID(ctx, id)
	if err != nil {
		return nil, persistenceError("falha ao buscar follow-up", err)
	}
	if result == nil {
		return nil, NewNurturingErrorWithID(ErrFollowUpNotFound, apiErrors.ErrFollowUpNotFound, id, "")
	}

	return result, nil
}

// CancelarPendentesDoLead encerra a cadência de um lead convertido ou perdido
func (s *Service) CancelarPendentesDoLead(ctx context.Context, leadID string) (int64, error) {
	cancelled, err := s.followUpRepository.CancelPendingByLead(ctx, leadID, s.now().UTC())
	if err != nil {
		return 0, persistenceError("falha ao cancelar follow-ups", err)
	}

	if cancelled > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"lead_id":        leadID,
			"followup_count": cancelled,
		}).Info("follow-ups pendentes cancelados")
	}

	return cancelled, nil
}

// canalFor cai para e-mail quando o lead não tem telefone para WhatsApp
func (s *Service) canalFor(lead *domain.Lead) domain.Canal {
	canal := domain.Canal(strings.ToUpper(strings.TrimSpace(s.cfg.Canal)))
	if canal == domain.CanalWhatsApp && strings.TrimSpace(lead.Telefone) != "" {
		return domain.CanalWhatsApp
	}
	return domain.CanalEmail
}
