package reconciling

import (
	"net/url"
	"strings"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

// Motivos de uma reanálise
const (
	MotivoSiteURLMudou        = "siteUrlMudou"
	MotivoAnaliseDoSiteFalhou = "analiseDoSiteFalhou"
	MotivoSiteURLDiferente    = "siteUrlDiferente"
)

type Decision struct {
	Decision domain.ReconcileDecision `json:"decision"`
	Motivos  []string                 `json:"motivos,omitempty"`
}

// Decide escolhe entre criar, reanalisar ou reutilizar a análise de um lead.
// Um site vazio na submissão não conta como site diferente.
func Decide(existing *domain.Lead, incomingSiteURL string) Decision {
	if existing == nil {
		return Decision{Decision: domain.DecisionCreate}
	}

	incoming := normalizeSite(incomingSiteURL)
	stored := ""
	if existing.SiteURL != nil {
		stored = normalizeSite(*existing.SiteURL)
	}

	motivos := make([]string, 0, 3)
	if incoming != "" && stored == "" {
		motivos = append(motivos, MotivoSiteURLMudou)
	}
	if stored != "" && existing.ScoreSite == 0 {
		motivos = append(motivos, MotivoAnaliseDoSiteFalhou)
	}
	if incoming != "" && stored != "" && incoming != stored {
		motivos = append(motivos, MotivoSiteURLDiferente)
	}

	if len(motivos) == 0 {
		return Decision{Decision: domain.DecisionReuse}
	}
	return Decision{Decision: domain.DecisionRefresh, Motivos: motivos}
}

// normalizeSite ignora espaços, a barra final e a caixa do esquema e do domínio.
// Caminho e query mantêm a caixa original.
func normalizeSite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	hasScheme := strings.Contains(raw, "://")
	toParse := raw
	if !hasScheme {
		toParse = "//" + raw
	}

	u, err := url.Parse(toParse)
	if err != nil {
		return strings.TrimSuffix(raw, "/")
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	normalized := u.String()
	if !hasScheme {
		normalized = strings.TrimPrefix(normalized, "//")
	}
	return strings.TrimSuffix(normalized, "/")
}
