package reconciling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/repository"
	repomocks "github.com/vfg2006/lead-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing"
	analysingmocks "github.com/vfg2006/lead-intelligence-api/internal/usecases/analysing/mocks"
	nurturingmocks "github.com/vfg2006/lead-intelligence-api/internal/usecases/nurturing/mocks"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	leads     *repomocks.MockLeadRepository
	analyzer  *analysingmocks.MockAnalyzer
	followUps *nurturingmocks.MockFollowUpService
	notifier  *nurturingmocks.MockNotifier
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		leads:     repomocks.NewMockLeadRepository(ctrl),
		analyzer:  analysingmocks.NewMockAnalyzer(ctrl),
		followUps: nurturingmocks.NewMockFollowUpService(ctrl),
		notifier:  nurturingmocks.NewMockNotifier(ctrl),
	}

	return &Service{
		leadRepository: m.leads,
		analyzer:       m.analyzer,
		followUps:      m.followUps,
		notifier:       m.notifier,
		salesTeamEmail: "comercial@agencia.com.br",
		now:            func() time.Time { return fixedNow },
		newID:          func() (string, error) { return "lead-novo", nil },
	}, m
}

func analysisWith(scoreGeral, scoreSite int) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Report: domain.DigitalPresenceReport{
			SchemaVersion: domain.ReportSchemaVersion,
			GBP:           domain.PartialScore{Axis: domain.AxisGBP, Value: 60},
			Site:          domain.PartialScore{Axis: domain.AxisSite, Value: scoreSite},
			Social:        domain.PartialScore{Axis: domain.AxisSocial, Value: 20},
			ScoreGeral:    scoreGeral,
		},
		Proposal: domain.PricingProposal{Segmento: "restaurante", ValorImplantacao: 1500, ValorMensal: 860, ScoreGeral: scoreGeral},
		Profile:  &domain.BusinessProfile{Nome: "Cantina da Nona"},
	}
}

func submission(site string) domain.LeadSubmission {
	return domain.LeadSubmission{
		Email:    "  Maria@Exemplo.com.br ",
		PlaceID:  "ChIJ-cantina",
		Nome:     "Maria",
		Telefone: "(11) 98888-7777",
		Segmento: "Restaurante",
		SiteURL:  site,
	}
}

func existingLead(site *string, scoreSite int) *domain.Lead {
	return &domain.Lead{
		ID:          "lead-1",
		Email:       "maria@exemplo.com.br",
		PlaceID:     "ChIJ-cantina",
		Nome:        "Maria Antiga",
		Telefone:    "+551133334444",
		NomeEmpresa: "Cantina da Nona",
		SiteURL:     site,
		Status:      domain.LeadStatusContatado,
		ScoreGeral:  41,
		ScoreSite:   scoreSite,
		Relatorio:   domain.DigitalPresenceReport{ScoreGeral: 41, Site: domain.PartialScore{Value: scoreSite}},
		Proposta:    domain.PricingProposal{ValorImplantacao: 1200},
		PesquisaEm:  fixedNow.Add(-48 * time.Hour),
	}
}

func TestService_ReconcileLead_Create(t *testing.T) {
	log.SetupTestLogger()
	svc, m := newTestService(t)

	identity := domain.NewLeadIdentity("maria@exemplo.com.br", "ChIJ-cantina")
	m.leads.EXPECT().GetByIdentity(gomock.Any(), identity).Return(nil, nil)
	m.analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), analysing.AnalyzeRequest{
		PlaceID: "ChIJ-cantina", SiteURL: "https://cantina.com.br", Segmento: "restaurante",
	}).Return(analysisWith(52, 70), nil)
	m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, lead *domain.Lead) error {
		assert.Equal(t, "lead-novo", lead.ID)
		assert.Equal(t, "maria@exemplo.com.br", lead.Email)
		assert.Equal(t, "+5511988887777", lead.Telefone)
		assert.Equal(t, "Cantina da Nona", lead.NomeEmpresa)
		assert.Equal(t, domain.LeadStatusNovo, lead.Status)
		assert.Equal(t, 52, lead.ScoreGeral)
		assert.Equal(t, lead.Proposta.ValorImplantacao, lead.ValorSugerido)
		assert.Equal(t, fixedNow, lead.PesquisaEm)
		return nil
	})
	m.followUps.EXPECT().AgendarFollowUpsParaLead(gomock.Any(), "lead-novo").Return([]*domain.FollowUp{}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n domain.Notificacao) error {
		assert.Equal(t, "comercial@agencia.com.br", n.Email)
		assert.Contains(t, n.Assunto, "Cantina da Nona")
		return nil
	})

	result, err := svc.ReconcileLead(context.Background(), submission("https://cantina.com.br"))

	require.NoError(t, err)
	assert.Equal(t, domain.DecisionCreate, result.Decision)
	assert.Equal(t, 52, result.Report.ScoreGeral)
	require.NotNil(t, result.Pendencias)
	assert.NoError(t, result.Pendencias.Wait())
}

func TestService_ReconcileLead_CreateFalhaNosEfeitosColaterais(t *testing.T) {
	log.SetupTestLogger()
	svc, m := newTestService(t)
	svc.salesTeamEmail = ""

	m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), gomock.Any()).Return(analysisWith(52, 70), nil)
	m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.followUps.EXPECT().AgendarFollowUpsParaLead(gomock.Any(), "lead-novo").Return(nil, errors.New("banco fora"))

	result, err := svc.ReconcileLead(context.Background(), submission(""))

	require.NoError(t, err)
	assert.Nil(t, result.Lead.SiteURL)
	assert.ErrorContains(t, result.Pendencias.Wait(), "banco fora")
}

func TestService_ReconcileLead_Reuse(t *testing.T) {
	log.SetupTestLogger()
	svc, m := newTestService(t)

	site := "https://cantina.com.br"
	existing := existingLead(&site, 70)
	m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(existing, nil)

	result, err := svc.ReconcileLead(context.Background(), submission(site))

	require.NoError(t, err)
	assert.Equal(t, domain.DecisionReuse, result.Decision)
	assert.Equal(t, existing.Relatorio, result.Report)
	assert.Equal(t, existing.ScoreGeral, result.Report.ScoreGeral)
	assert.Equal(t, "Maria Antiga", result.Lead.Nome, "reutilização não altera o lead")
	assert.Nil(t, result.Pendencias)
}

func TestService_ReconcileLead_Refresh(t *testing.T) {
	log.SetupTestLogger()

	failedSite := "https://cantina.com.br"

	tests := []struct {
		name            string
		existing        *domain.Lead
		incomingSite    string
		expectedSite    string
		expectedMotivos []string
	}{
		{
			name:            "site informado pela primeira vez",
			existing:        existingLead(nil, 0),
			incomingSite:    "https://cantina.com.br",
			expectedSite:    "https://cantina.com.br",
			expectedMotivos: []string{MotivoSiteURLMudou},
		},
		{
			name:            "falha anterior sem site na submissão reanalisa o site salvo",
			existing:        existingLead(&failedSite, 0),
			incomingSite:    "",
			expectedSite:    failedSite,
			expectedMotivos: []string{MotivoAnaliseDoSiteFalhou},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)

			m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(tt.existing, nil)
			m.analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req analysing.AnalyzeRequest) (*domain.AnalysisResult, error) {
					assert.Equal(t, tt.expectedSite, req.SiteURL)
					return analysisWith(63, 75), nil
				})
			m.leads.EXPECT().UpdateAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, lead *domain.Lead) error {
				assert.Equal(t, "lead-1", lead.ID)
				assert.Equal(t, "Maria", lead.Nome)
				assert.Equal(t, "+5511988887777", lead.Telefone)
				assert.Equal(t, 63, lead.ScoreGeral)
				assert.Equal(t, 75, lead.ScoreSite)
				assert.Equal(t, domain.LeadStatusContatado, lead.Status)
				require.NotNil(t, lead.SiteURL)
				assert.Equal(t, tt.expectedSite, *lead.SiteURL)
				return nil
			})

			result, err := svc.ReconcileLead(context.Background(), submission(tt.incomingSite))

			require.NoError(t, err)
			assert.Equal(t, domain.DecisionRefresh, result.Decision)
			assert.Equal(t, tt.expectedMotivos, result.Motivos)
			assert.Equal(t, 63, result.Report.ScoreGeral)
			assert.Nil(t, result.Pendencias, "reanálise não agenda novos follow-ups")
		})
	}
}

func TestService_ReconcileLead_RefreshSemSegmento(t *testing.T) {
	log.SetupTestLogger()
	svc, m := newTestService(t)

	existing := existingLead(nil, 0)
	existing.Segmento = "clinica"

	sub := submission("https://cantina.com.br")
	sub.Segmento = ""

	m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(existing, nil)
	m.analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), analysing.AnalyzeRequest{
		PlaceID:     "ChIJ-cantina",
		SiteURL:     "https://cantina.com.br",
		NomeEmpresa: "Cantina da Nona",
		Segmento:    "clinica",
	}).Return(analysisWith(63, 75), nil)
	m.leads.EXPECT().UpdateAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, lead *domain.Lead) error {
		assert.Equal(t, "clinica", lead.Segmento)
		assert.Equal(t, "Cantina da Nona", lead.NomeEmpresa)
		return nil
	})

	result, err := svc.ReconcileLead(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, domain.DecisionRefresh, result.Decision)
}

func TestService_ReconcileLead_SubmissaoSimultanea(t *testing.T) {
	log.SetupTestLogger()

	site := "https://cantina.com.br"

	tests := []struct {
		name             string
		winner           *domain.Lead
		expectedDecision domain.ReconcileDecision
		expectUpdate     bool
	}{
		{
			name:             "concorrente sem site vira reanálise com a análise já feita",
			winner:           existingLead(nil, 0),
			expectedDecision: domain.DecisionRefresh,
			expectUpdate:     true,
		},
		{
			name:             "concorrente com o mesmo site vira reutilização",
			winner:           existingLead(&site, 70),
			expectedDecision: domain.DecisionReuse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)

			gomock.InOrder(
				m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(nil, nil),
				m.analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), gomock.Any()).Return(analysisWith(52, 70), nil).Times(1),
				m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrLeadAlreadyExists),
				m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(tt.winner, nil),
			)
			if tt.expectUpdate {
				m.leads.EXPECT().UpdateAnalysis(gomock.Any(), gomock.Any()).Return(nil)
			}

			sub := submission(site)
			sub.NomeEmpresa = "Cantina da Nona"

			result, err := svc.ReconcileLead(context.Background(), sub)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDecision, result.Decision)
			assert.Equal(t, "lead-1", result.Lead.ID)
		})
	}
}

func TestService_ReconcileLead_Erros(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name         string
		submission   domain.LeadSubmission
		mockSetup    func(m serviceMocks)
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "e-mail inválido",
			submission:   domain.LeadSubmission{Email: "não-é-email", PlaceID: "ChIJ", Nome: "Ana"},
			mockSetup:    func(m serviceMocks) {},
			expectedErr:  ErrInvalidSubmission,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:       "falha ao buscar lead",
			submission: submission(""),
			mockSetup: func(m serviceMocks) {
				m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedErr:  ErrPersistence,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
		{
			name:       "falha ao inserir lead",
			submission: submission(""),
			mockSetup: func(m serviceMocks) {
				m.leads.EXPECT().GetByIdentity(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.analyzer.EXPECT().AnalyzeAndScore(gomock.Any(), gomock.Any()).Return(analysisWith(52, 0), nil)
				m.leads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))
			},
			expectedErr:  ErrPersistence,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.mockSetup(m)

			_, err := svc.ReconcileLead(context.Background(), tt.submission)

			assert.ErrorIs(t, err, tt.expectedErr)
			var reconcileErr *ReconcileError
			require.True(t, errors.As(err, &reconcileErr))
			assert.Equal(t, tt.expectedCode, reconcileErr.Code)
		})
	}
}
