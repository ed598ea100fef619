package social

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/siteaudit"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

const (
	origemSite  = "site"
	origemBusca = "busca"

	pontosInstagram = 45
	pontosFacebook  = 35
	pontosNoSite    = 10

	maxPageBytes = 1 << 20
)

// Endereços base dos perfis de cada rede
var (
	InstagramBaseURL = "https://www.instagram.com"
	FacebookBaseURL  = "https://www.facebook.com"
)

type Prober interface {
	Probe(ctx context.Context, nomeEmpresa, siteURL string) (*domain.SocialPresence, error)
}

type SocialProber struct {
	httpClient    *http.Client
	userAgent     string
	instagramBase string
	facebookBase  string
}

func New(cfg *config.Config) Prober {
	return &SocialProber{
		httpClient: siteaudit.NewPublicClient(cfg.Collectors.SocialTimeout),
		userAgent:     cfg.Collectors.UserAgent,
		instagramBase: InstagramBaseURL,
		facebookBase:  FacebookBaseURL,
	}
}

// Probe procura os perfis primeiro nos links do site e depois em handles derivados do nome.
// Retorna erro apenas quando o contexto termina antes da sondagem.
func (p *SocialProber) Probe(ctx context.Context, nomeEmpresa, siteURL string) (*domain.SocialPresence, error) {
	presence := &domain.SocialPresence{
		Recomendacoes: []string{},
		Findings:      []domain.Finding{},
	}

	if strings.TrimSpace(siteURL) != "" {
		links := p.linksFromSite(ctx, siteURL)
		if link, ok := links["instagram"]; ok {
			presence.Instagram = domain.SocialProfile{Encontrado: true, URL: link, Origem: origemSite}
		}
		if link, ok := links["facebook"]; ok {
			presence.Facebook = domain.SocialProfile{Encontrado: true, URL: link, Origem: origemSite}
		}
	}

	handles := CandidateHandles(nomeEmpresa)
	if !presence.Instagram.Encontrado {
		presence.Instagram = p.probeHandles(ctx, p.instagramBase, handles)
	}
	if !presence.Facebook.Encontrado {
		presence.Facebook = p.probeHandles(ctx, p.facebookBase, handles)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	evaluate(presence, strings.TrimSpace(siteURL) != "")

	logrus.WithFields(logrus.Fields{
		"empresa":   nomeEmpresa,
		"instagram": presence.Instagram.Encontrado,
		"facebook":  presence.Facebook.Encontrado,
		"score":     presence.Score,
	}).Debug("social: sondagem concluída")

	return presence, nil
}

func (p *SocialProber) linksFromSite(ctx context.Context, siteURL string) map[string]string {
	target, err := siteaudit.NormalizeURL(siteURL)
	if err != nil {
		return nil
	}

	resp, err := p.get(ctx, target.String())
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	signals, err := siteaudit.ParsePage(io.LimitReader(resp.Body, maxPageBytes), resp.Request.URL)
	if err != nil {
		return nil
	}

	return signals.SocialLinks
}

func (p *SocialProber) probeHandles(ctx context.Context, base string, handles []string) domain.SocialProfile {
	for _, handle := range handles {
		if ctx.Err() != nil {
			break
		}

		profileURL := fmt.Sprintf("%s/%s/", strings.TrimSuffix(base, "/"), handle)
		resp, err := p.get(ctx, profileURL)
		if err != nil {
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return domain.SocialProfile{Encontrado: true, URL: profileURL, Origem: origemBusca}
		}
	}

	return domain.SocialProfile{}
}

func (p *SocialProber) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html")

	return p.httpClient.Do(req)
}

func evaluate(presence *domain.SocialPresence, temSite bool) {
	score := 0
	ig, fb := presence.Instagram, presence.Facebook

	if ig.Encontrado {
		score += pontosInstagram
		if ig.Origem == origemSite {
			score += pontosNoSite
		}
	}
	if fb.Encontrado {
		score += pontosFacebook
		if fb.Origem == origemSite {
			score += pontosNoSite
		}
	}
	presence.Score = score

	switch {
	case !ig.Encontrado && !fb.Encontrado:
		presence.Findings = append(presence.Findings, problem(domain.FindingSemRedesSociais,
			"Sem redes sociais", "Nenhum perfil de Instagram ou Facebook foi encontrado."))
		presence.Recomendacoes = append(presence.Recomendacoes, "Criar perfis comerciais no Instagram e no Facebook.")
		return
	case !ig.Encontrado:
		presence.Findings = append(presence.Findings, problem(domain.FindingSemInstagram,
			"Sem Instagram", "Nenhum perfil de Instagram foi encontrado."))
		presence.Recomendacoes = append(presence.Recomendacoes, "Criar um perfil comercial no Instagram.")
	case !fb.Encontrado:
		presence.Findings = append(presence.Findings, problem(domain.FindingSemFacebook,
			"Sem Facebook", "Nenhuma página de Facebook foi encontrada."))
		presence.Recomendacoes = append(presence.Recomendacoes, "Criar uma página no Facebook.")
	}

	if temSite && (ig.Origem == origemBusca || fb.Origem == origemBusca) {
		presence.Findings = append(presence.Findings, problem(domain.FindingRedesForaDoSite,
			"Redes não divulgadas no site", "Há perfis nas redes que o site não menciona."))
		presence.Recomendacoes = append(presence.Recomendacoes, "Adicionar os links das redes sociais no site.")
	}

	presence.Findings = append(presence.Findings, domain.Finding{
		Code:       domain.FindingRedesEncontradas,
		Titulo:     "Perfis nas redes sociais",
		Descricao:  "Os perfis encontrados podem receber campanhas de conteúdo.",
		Severidade: domain.SeverityOpportunity,
		Evidencia:  strings.TrimSpace(ig.URL + " " + fb.URL),
	})
}

func problem(code, titulo, descricao string) domain.Finding {
	return domain.Finding{
		Code:       code,
		Titulo:     titulo,
		Descricao:  descricao,
		Severidade: domain.SeverityProblem,
	}
}
