package siteaudit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

const maxBodyBytes = 2 << 20

// Pontuação de cada verificação. A soma é 100.
const (
	pontosHTTPS         = 20
	pontosTitulo        = 10
	pontosMetaDescricao = 15
	pontosViewport      = 20
	pontosH1            = 10
	pontosVelocidade    = 10
	pontosContato       = 10
	pontosRedes         = 5
)

type Auditor interface {
	Audit(ctx context.Context, siteURL string) (*domain.SiteAudit, error)
}

type SiteAuditor struct {
	httpClient    *http.Client
	userAgent     string
	fastThreshold time.Duration
	slowThreshold time.Duration
	now           func() time.Time
}

func New(cfg *config.Config) Auditor {
	return &SiteAuditor{
		httpClient: NewPublicClient(cfg.Collectors.SiteTimeout),
		userAgent:     cfg.Collectors.UserAgent,
		fastThreshold: 2 * time.Second,
		slowThreshold: 4 * time.Second,
		now:           time.Now,
	}
}

// NormalizeURL completa o esquema quando o usuário informa apenas o domínio
func NormalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("url vazia")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "url inválida")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New(fmt.Sprintf("esquema não suportado: %s", u.Scheme))
	}
	if u.Host == "" {
		return nil, errors.New("url sem domínio")
	}

	return u, nil
}

// Audit baixa a página inicial e pontua os sinais técnicos. Qualquer falha de
// rede ou resposta não 2xx retorna erro para que o eixo seja tratado como indisponível.
func (a *SiteAuditor) Audit(ctx context.Context, siteURL string) (*domain.SiteAudit, error) {
	target, err := NormalizeURL(siteURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "text/html")

	start := a.now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao acessar o site")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(fmt.Sprintf("site respondeu com status: %s", resp.Status))
	}

	finalURL := resp.Request.URL
	signals, err := ParsePage(io.LimitReader(resp.Body, maxBodyBytes), finalURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o HTML")
	}
	elapsed := a.now().Sub(start)

	audit := a.evaluate(finalURL, signals, elapsed)

	logrus.WithFields(logrus.Fields{
		"url":        finalURL.String(),
		"score_site": audit.ScoreSite,
		"elapsed_ms": elapsed.Milliseconds(),
	}).Debug("siteaudit: auditoria concluída")

	return audit, nil
}

func (a *SiteAuditor) evaluate(finalURL *url.URL, s *PageSignals, elapsed time.Duration) *domain.SiteAudit {
	audit := &domain.SiteAudit{
		URL:          finalURL.String(),
		Findings:     []domain.Finding{},
		RedesSociais: s.SocialLinks,
	}
	score := 0

	if finalURL.Scheme == "https" {
		score += pontosHTTPS
	} else {
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteSemHTTPS, "Site sem HTTPS",
			"Navegadores exibem o site como não seguro.", finalURL.String()))
	}

	if s.Title != "" {
		score += pontosTitulo
	} else {
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteSemTitulo, "Página sem título",
			"A página inicial não define a tag title.", ""))
	}

	if s.MetaDescription != "" {
		score += pontosMetaDescricao
	} else {
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteSemMetaDescricao, "Sem meta descrição",
			"O Google monta o resumo do resultado sem uma descrição definida.", ""))
	}

	if s.HasViewport {
		score += pontosViewport
	} else {
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteNaoResponsivo, "Site não adaptado para celular",
			"A página não declara viewport para dispositivos móveis.", ""))
	}

	if s.H1Count > 0 {
		score += pontosH1
	} else {
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteSemH1, "Sem título principal",
			"A página inicial não tem um H1.", ""))
	}

	switch {
	case elapsed <= a.fastThreshold:
		score += pontosVelocidade
		audit.Findings = append(audit.Findings, domain.Finding{
			Code:       domain.FindingSiteRapido,
			Titulo:     "Site rápido",
			Descricao:  "A página inicial carrega em pouco tempo.",
			Severidade: domain.SeverityOpportunity,
			Evidencia:  fmt.Sprintf("%dms", elapsed.Milliseconds()),
		})
	case elapsed <= a.slowThreshold:
		score += pontosVelocidade / 2
	default:
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteLento, "Site lento",
			"A página inicial demora para carregar.", fmt.Sprintf("%dms", elapsed.Milliseconds())))
	}

	if s.HasPhoneLink || s.HasWhatsApp || s.HasEmailLink {
		score += pontosContato
	} else {
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteSemContato, "Sem canal de contato direto",
			"Não há link de telefone, WhatsApp ou e-mail na página inicial.", ""))
	}

	if len(s.SocialLinks) > 0 {
		score += pontosRedes
	} else {
		audit.Findings = append(audit.Findings, problem(domain.FindingSiteSemRedes, "Site sem links para redes sociais",
			"A página inicial não aponta para Instagram ou Facebook.", ""))
	}

	audit.ScoreSite = score
	return audit
}

func problem(code, titulo, descricao, evidencia string) domain.Finding {
	return domain.Finding{
		Code:       code,
		Titulo:     titulo,
		Descricao:  descricao,
		Severidade: domain.SeverityProblem,
		Evidencia:  evidencia,
	}
}
