package prospecting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/lead-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

type LeadService interface {
	ListarLeads(ctx context.Context, filter domain.LeadFilter) (*domain.LeadPage, error)
	ObterLead(ctx context.Context, id string) (*domain.Lead, error)
	AtualizarStatus(ctx context.Context, id string, req domain.UpdateLeadStatusRequest) (*domain.Lead, error)
}

type Service struct {
	leadRepository repository.LeadRepository
	followUps      nurturing.FollowUpService
	now            func() time.Time
}

func NewService(leadRepository repository.LeadRepository, followUps nurturing.FollowUpService) LeadService {
	return &Service{
		leadRepository: leadRepository,
		followUps:      followUps,
		now:            time.Now,
	}
}

func (s *Service) ListarLeads(ctx context.Context, filter domain.LeadFilter) (*domain.LeadPage, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, NewProspectingError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, "", string(*filter.Status))
	}

	page, err := s.leadRepository.List(ctx, filter)
	if err != nil {
		return nil, NewProspectingError(ErrPersistence, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return page, nil
}

func (s *Service) ObterLead(ctx context.Context, id string) (*domain.Lead, error) {
	lead, err := s.leadRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewProspectingError(ErrPersistence, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if lead == nil {
		return nil, NewProspectingError(ErrLeadNotFound, apiErrors.ErrLeadNotFound, id, "")
	}

	return lead, nil
}

// AtualizarStatus avança o lead no funil. O primeiro contato registra contatadoEm e
// o encerramento cancela os follow-ups pendentes.
func (s *Service) AtualizarStatus(ctx context.Context, id string, req domain.UpdateLeadStatusRequest) (*domain.Lead, error) {
	if !req.Status.IsValid() {
		return nil, NewProspectingError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, id, string(req.Status))
	}

	lead, err := s.ObterLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if lead.Status != req.Status && !lead.Status.CanTransitionTo(req.Status) {
		return nil, NewProspectingError(ErrInvalidTransition, apiErrors.ErrInvalidLeadTransition, id,
			fmt.Sprintf("%s -> %s", lead.Status, req.Status))
	}

	now := s.now().UTC()
	lead.Status = req.Status
	lead.UpdatedAt = now
	if req.VendedorID != nil {
		lead.VendedorID = req.VendedorID
	}
	if lead.ContatadoEm == nil && req.Status != domain.LeadStatusNovo {
		lead.ContatadoEm = &now
	}

	if err := s.leadRepository.UpdateStatus(ctx, lead); err != nil {
		return nil, NewProspectingError(ErrPersistence, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if lead.Status.IsClosed() {
		if _, err := s.followUps.CancelarPendentesDoLead(ctx, lead.ID); err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"lead_id": lead.ID,
				"error":   err.Error(),
			}).Error("falha ao cancelar follow-ups do lead encerrado")
			return nil, err
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"lead_id":     lead.ID,
		"lead_status": lead.Status,
	}).Info("status do lead atualizado")

	return lead, nil
}
