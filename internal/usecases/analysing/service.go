package analysing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/siteaudit"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/social"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/pricing"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/scoring"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"github.com/vfg2006/lead-intelligence-api/pkg/validation"
)

// AnalyzeRequest identifica o negócio a ser analisado
type AnalyzeRequest struct {
	PlaceID      string `json:"placeId" validate:"required"`
	SiteURL      string `json:"siteUrl" validate:"omitempty,url"`
	NomeEmpresa  string `json:"nomeEmpresa" validate:"omitempty,max=160"`
	Segmento     string `json:"segmento" validate:"omitempty,max=40"`
	Concorrentes *int   `json:"concorrentes" validate:"omitempty,min=0"`
}

type Analyzer interface {
	AnalyzeAndScore(ctx context.Context, req AnalyzeRequest) (*domain.AnalysisResult, error)
}

type Service struct {
	google     google.GoogleIntegrator
	auditor    siteaudit.Auditor
	prober     social.Prober
	aggregator *scoring.Aggregator
	pricer     pricing.Pricer
	timeouts   config.Collectors
}

func NewService(
	googleService google.GoogleIntegrator,
	auditor siteaudit.Auditor,
	prober social.Prober,
	aggregator *scoring.Aggregator,
	pricer pricing.Pricer,
	cfg *config.Config,
) Analyzer {
	return &Service{
		google:     googleService,
		auditor:    auditor,
		prober:     prober,
		aggregator: aggregator,
		pricer:     pricer,
		timeouts:   cfg.Collectors,
	}
}

type collected struct {
	profile *domain.BusinessProfile
	gbp     domain.PartialScore
	site    *domain.PartialScore
	social  *domain.PartialScore
}

// AnalyzeAndScore executa os coletores em paralelo, agrega os scores e gera a proposta.
// A falha de um coletor degrada apenas o eixo correspondente.
func (s *Service) AnalyzeAndScore(ctx context.Context, req AnalyzeRequest) (*domain.AnalysisResult, error) {
	req.PlaceID = strings.TrimSpace(req.PlaceID)
	req.SiteURL = strings.TrimSpace(req.SiteURL)
	if err := validation.Struct(req); err != nil {
		return nil, invalidRequest(validation.Details(err))
	}

	c := s.collect(ctx, req)
	if err := ctx.Err(); err != nil {
		return nil, NewAnalysisError(ErrCanceled, apiErrors.ErrInternalServer, err.Error())
	}

	report := s.aggregator.Aggregate(scoring.Input{
		GBP:           c.gbp,
		Site:          c.site,
		Social:        c.social,
		SiteInformado: req.SiteURL != "",
	})

	proposal := s.pricer.GerarProposta(pricingInput(req, report, c.profile))

	log.ForContext(ctx).WithFields(log.Fields{
		"place_id":    req.PlaceID,
		"score_geral": report.ScoreGeral,
		"segmento":    proposal.Segmento,
	}).Info("análise concluída")

	return &domain.AnalysisResult{
		Report:   report,
		Proposal: proposal,
		Profile:  c.profile,
	}, nil
}

func (s *Service) collect(ctx context.Context, req AnalyzeRequest) collected {
	var (
		wg  sync.WaitGroup
		out collected
	)

	// nome do negócio para a sondagem de redes quando não informado na requisição
	nameCh := make(chan string, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		profile, partial := s.collectGBP(ctx, req.PlaceID)
		out.profile, out.gbp = profile, partial

		nome := ""
		if profile != nil {
			nome = profile.Nome
		}
		nameCh <- nome
	}()

	if req.SiteURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.site = s.collectSite(ctx, req.SiteURL)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		nome := req.NomeEmpresa
		if nome == "" {
			select {
			case nome = <-nameCh:
			case <-ctx.Done():
				return
			}
		}
		out.social = s.collectSocial(ctx, nome, req.SiteURL)
	}()

	wg.Wait()

	return out
}

func (s *Service) collectGBP(ctx context.Context, placeID string) (*domain.BusinessProfile, domain.PartialScore) {
	ctx, cancel := withTimeout(ctx, s.timeouts.GBPTimeout)
	defer cancel()

	profile, err := s.google.GetBusinessProfile(ctx, placeID)
	if errors.Is(err, domain.ErrPlaceNotFound) {
		return nil, scoring.ScoreProfile(nil)
	}
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"place_id": placeID,
			"error":    err.Error(),
		}).Warn("coletor GBP indisponível")
		return nil, domain.UnavailableScore(domain.AxisGBP, err.Error())
	}

	return profile, scoring.ScoreProfile(profile)
}

// collectSite retorna nil quando a auditoria falha para o agregador marcar o eixo como indisponível
func (s *Service) collectSite(ctx context.Context, siteURL string) *domain.PartialScore {
	ctx, cancel := withTimeout(ctx, s.timeouts.SiteTimeout)
	defer cancel()

	audit, err := s.auditor.Audit(ctx, siteURL)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"site_url": siteURL,
			"error":    err.Error(),
		}).Warn("auditoria do site indisponível")
		return nil
	}

	return &domain.PartialScore{
		Axis:     domain.AxisSite,
		Value:    audit.ScoreSite,
		Findings: audit.Findings,
	}
}

func (s *Service) collectSocial(ctx context.Context, nome, siteURL string) *domain.PartialScore {
	ctx, cancel := withTimeout(ctx, s.timeouts.SocialTimeout)
	defer cancel()

	presence, err := s.prober.Probe(ctx, nome, siteURL)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"empresa": nome,
			"error":   err.Error(),
		}).Warn("sondagem de redes sociais indisponível")
		unavailable := domain.UnavailableScore(domain.AxisSocial, err.Error())
		return &unavailable
	}

	return &domain.PartialScore{
		Axis:     domain.AxisSocial,
		Value:    presence.Score,
		Findings: presence.Findings,
	}
}

func pricingInput(req AnalyzeRequest, report domain.DigitalPresenceReport, profile *domain.BusinessProfile) domain.AnaliseInput {
	temSite := req.SiteURL != ""
	in := domain.AnaliseInput{
		ScoreGBP:     &report.GBP.Value,
		ScoreSite:    &report.Site.Value,
		ScoreRedes:   &report.Social.Value,
		Segmento:     req.Segmento,
		TemSite:      &temSite,
		Concorrentes: req.Concorrentes,
	}

	if profile != nil {
		avaliacoes, nota := profile.TotalAvaliacoes, profile.NotaMedia
		in.Avaliacoes = &avaliacoes
		in.NotaMedia = &nota
	}

	return in
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
