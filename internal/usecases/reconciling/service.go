package reconciling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/lead-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"github.com/vfg2006/lead-intelligence-api/pkg/phone"
	"github.com/vfg2006/lead-intelligence-api/pkg/task"
	"github.com/vfg2006/lead-intelligence-api/pkg/utils"
	"github.com/vfg2006/lead-intelligence-api/pkg/validation"
)

// ReconcileResult é a resposta de uma submissão. Pendencias acompanha os efeitos
// colaterais assíncronos de um lead criado.
type ReconcileResult struct {
	Decision   domain.ReconcileDecision     `json:"decision"`
	Motivos    []string                     `json:"motivos,omitempty"`
	Lead       *domain.Lead                 `json:"lead"`
	Report     domain.DigitalPresenceReport `json:"report"`
	Proposal   domain.PricingProposal       `json:"proposal"`
	Pendencias *task.Task                   `json:"-"`
}

type Reconciler interface {
	ReconcileLead(ctx context.Context, submission domain.LeadSubmission) (*ReconcileResult, error)
}

type Service struct {
	leadRepository repository.LeadRepository
	analyzer       analysing.Analyzer
	followUps      nurturing.FollowUpService
	notifier       nurturing.Notifier
	salesTeamEmail string
	now            func() time.Time
	newID          func() (string, error)
}

func NewService(
	leadRepository repository.LeadRepository,
	analyzer analysing.Analyzer,
	followUps nurturing.FollowUpService,
	notifier nurturing.Notifier,
	cfg *config.Config,
) Reconciler {
	return &Service{
		leadRepository: leadRepository,
		analyzer:       analyzer,
		followUps:      followUps,
		notifier:       notifier,
		salesTeamEmail: cfg.Notification.SalesTeamEmail,
		now:            time.Now,
		newID:          utils.GenerateID,
	}
}

// ReconcileLead trata a submissão como uma operação atômica sobre a identidade (email, placeId):
// a restrição única do banco resolve submissões simultâneas, e o perdedor segue como REFRESH ou REUSE.
func (s *Service) ReconcileLead(ctx context.Context, submission domain.LeadSubmission) (*ReconcileResult, error) {
	submission = normalizeSubmission(submission)
	if err := validation.Struct(submission); err != nil {
		return nil, NewReconcileError(ErrInvalidSubmission, apiErrors.ErrInvalidRequest, validation.Details(err))
	}

	identity := submission.Identity()
	existing, err := s.leadRepository.GetByIdentity(ctx, identity)
	if err != nil {
		return nil, NewReconcileError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	decision := Decide(existing, submission.SiteURL)
	if decision.Decision != domain.DecisionCreate {
		return s.reconcileExisting(ctx, existing, submission, decision, nil)
	}

	analysis, err := s.analyzer.AnalyzeAndScore(ctx, analyzeRequest(submission, submission.SiteURL))
	if err != nil {
		return nil, err
	}

	lead, err := s.newLead(submission, analysis)
	if err != nil {
		return nil, err
	}

	err = s.leadRepository.Create(ctx, lead)
	if errors.Is(err, repository.ErrLeadAlreadyExists) {
		return s.retryAfterConflict(ctx, submission, analysis)
	}
	if err != nil {
		return nil, NewReconcileError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"lead_id":     lead.ID,
		"place_id":    lead.PlaceID,
		"decision":    domain.DecisionCreate,
		"score_geral": lead.ScoreGeral,
	}).Info("lead criado")

	return &ReconcileResult{
		Decision:   domain.DecisionCreate,
		Lead:       lead,
		Report:     lead.Relatorio,
		Proposal:   lead.Proposta,
		Pendencias: s.startSideEffects(ctx, lead),
	}, nil
}

// retryAfterConflict recarrega o lead criado por outra submissão e decide de novo,
// aproveitando a análise já calculada
func (s *Service) retryAfterConflict(ctx context.Context, submission domain.LeadSubmission, analysis *domain.AnalysisResult) (*ReconcileResult, error) {
	existing, err := s.leadRepository.GetByIdentity(ctx, submission.Identity())
	if err != nil {
		return nil, NewReconcileError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing == nil {
		return nil, NewReconcileError(ErrIdentityConflict, apiErrors.ErrDatabaseOperation, "lead concorrente não encontrado após conflito")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"lead_id":  existing.ID,
		"place_id": existing.PlaceID,
	}).Info("submissão simultânea detectada, reconciliando com o lead existente")

	return s.reconcileExisting(ctx, existing, submission, Decide(existing, submission.SiteURL), analysis)
}

func (s *Service) reconcileExisting(
	ctx context.Context,
	existing *domain.Lead,
	submission domain.LeadSubmission,
	decision Decision,
	analysis *domain.AnalysisResult,
) (*ReconcileResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"lead_id":  existing.ID,
		"decision": decision.Decision,
	})

	if decision.Decision == domain.DecisionReuse {
		logger.Info("análise existente reutilizada")
		return &ReconcileResult{
			Decision: domain.DecisionReuse,
			Lead:     existing,
			Report:   existing.Relatorio,
			Proposal: existing.Proposta,
		}, nil
	}

	siteURL := submission.SiteURL
	if siteURL == "" && existing.SiteURL != nil {
		siteURL = *existing.SiteURL
	}

	req := refreshRequest(existing, submission, siteURL)
	if analysis == nil || req != analyzeRequest(submission, submission.SiteURL) {
		var err error
		analysis, err = s.analyzer.AnalyzeAndScore(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	lead := *existing
	applyContact(&lead, submission, analysis.Profile)
	lead.SiteURL = optional(siteURL)
	lead.ApplyAnalysis(analysis)
	lead.PesquisaEm = s.now().UTC()
	lead.UpdatedAt = lead.PesquisaEm

	if err := s.leadRepository.UpdateAnalysis(ctx, &lead); err != nil {
		return nil, NewReconcileErrorWithID(ErrPersistence, apiErrors.ErrDatabaseOperation, lead.ID, err.Error())
	}

	logger.WithField("motivos", strings.Join(decision.Motivos, ",")).Info("análise do lead atualizada")

	return &ReconcileResult{
		Decision: domain.DecisionRefresh,
		Motivos:  decision.Motivos,
		Lead:     &lead,
		Report:   lead.Relatorio,
		Proposal: lead.Proposta,
	}, nil
}

func (s *Service) newLead(submission domain.LeadSubmission, analysis *domain.AnalysisResult) (*domain.Lead, error) {
	id, err := s.newID()
	if err != nil {
		return nil, NewReconcileError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	identity := submission.Identity()
	now := s.now().UTC()

	lead := &domain.Lead{
		ID:         id,
		Email:      identity.Email,
		PlaceID:    identity.PlaceID,
		SiteURL:    optional(submission.SiteURL),
		Status:     domain.LeadStatusNovo,
		PesquisaEm: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyContact(lead, submission, analysis.Profile)
	lead.ApplyAnalysis(analysis)

	return lead, nil
}

// startSideEffects agenda a cadência e avisa o time comercial sem prender a resposta.
// O contexto da tarefa sobrevive ao fim da requisição.
func (s *Service) startSideEffects(ctx context.Context, lead *domain.Lead) *task.Task {
	t := task.New(context.WithoutCancel(ctx))

	t.Go(func(ctx context.Context) error {
		if _, err := s.followUps.AgendarFollowUpsParaLead(ctx, lead.ID); err != nil {
			return fmt.Errorf("agendar follow-ups do lead %s: %w", lead.ID, err)
		}
		return nil
	})

	if s.salesTeamEmail != "" {
		t.Go(func(ctx context.Context) error {
			if err := s.notifier.Notify(ctx, salesTeamNotification(s.salesTeamEmail, lead)); err != nil {
				return fmt.Errorf("notificar time comercial sobre o lead %s: %w", lead.ID, err)
			}
			return nil
		})
	}

	return t
}

func salesTeamNotification(email string, lead *domain.Lead) domain.Notificacao {
	return domain.Notificacao{
		Canal:   domain.CanalEmail,
		Nome:    "Time comercial",
		Email:   email,
		Assunto: fmt.Sprintf("Novo lead: %s (score %d)", lead.NomeEmpresa, lead.ScoreGeral),
		Mensagem: fmt.Sprintf(
			"%s <%s> pediu a análise da %s.\nScore geral: %d\nSegmento: %s\nImplantação sugerida: R$ %.2f\nMensalidade sugerida: R$ %.2f",
			lead.Nome, lead.Email, lead.NomeEmpresa, lead.ScoreGeral, lead.Proposta.Segmento,
			lead.Proposta.ValorImplantacao, lead.Proposta.ValorMensal),
	}
}

// applyContact atualiza os dados de contato com os valores informados na submissão
func applyContact(lead *domain.Lead, submission domain.LeadSubmission, profile *domain.BusinessProfile) {
	lead.Nome = submission.Nome
	if submission.Telefone != "" {
		lead.Telefone = phone.NormalizeE164(submission.Telefone)
	}
	if submission.Segmento != "" {
		lead.Segmento = submission.Segmento
	}

	switch {
	case submission.NomeEmpresa != "":
		lead.NomeEmpresa = submission.NomeEmpresa
	case lead.NomeEmpresa == "" && profile != nil:
		lead.NomeEmpresa = profile.Nome
	}
}

func analyzeRequest(submission domain.LeadSubmission, siteURL string) analysing.AnalyzeRequest {
	return analysing.AnalyzeRequest{
		PlaceID:      submission.PlaceID,
		SiteURL:      siteURL,
		NomeEmpresa:  submission.NomeEmpresa,
		Segmento:     submission.Segmento,
		Concorrentes: submission.Concorrentes,
	}
}

// refreshRequest completa a submissão com o segmento e o nome já salvos no lead,
// para a nova proposta não cair no segmento padrão
func refreshRequest(existing *domain.Lead, submission domain.LeadSubmission, siteURL string) analysing.AnalyzeRequest {
	req := analyzeRequest(submission, siteURL)
	if req.Segmento == "" {
		req.Segmento = existing.Segmento
	}
	if req.NomeEmpresa == "" {
		req.NomeEmpresa = existing.NomeEmpresa
	}
	return req
}

func normalizeSubmission(s domain.LeadSubmission) domain.LeadSubmission {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.PlaceID = strings.TrimSpace(s.PlaceID)
	s.Nome = strings.TrimSpace(s.Nome)
	s.Telefone = strings.TrimSpace(s.Telefone)
	s.NomeEmpresa = strings.TrimSpace(s.NomeEmpresa)
	s.Segmento = strings.ToLower(strings.TrimSpace(s.Segmento))
	s.SiteURL = strings.TrimSpace(s.SiteURL)
	return s
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
