package scoring

import (
	"fmt"
	"strings"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

var recommendations = map[string]string{
	domain.FindingAnaliseIndisponivel: "Refazer a análise deste canal assim que ele estiver acessível para completar o diagnóstico.",
	domain.FindingSemSite:             "Criar um site profissional com informações de contato e serviços para transmitir confiança.",
	domain.FindingPerfilNaoEncontrado: "Criar e verificar o perfil da empresa no Google para aparecer nas buscas locais.",

	domain.FindingPoucasAvaliacoes:    "Implantar uma rotina de pedido de avaliações após cada atendimento.",
	domain.FindingNotaBaixa:           "Responder às avaliações negativas e corrigir os pontos citados para recuperar a nota média.",
	domain.FindingPoucasFotos:         "Publicar fotos recentes da fachada, do ambiente e dos produtos no perfil do Google.",
	domain.FindingHorariosIncompletos: "Completar os horários de funcionamento de todos os dias da semana no perfil do Google.",
	domain.FindingSemTelefone:         "Cadastrar um telefone de contato no perfil do Google.",
	domain.FindingPerfilSemSite:       "Vincular o site da empresa ao perfil do Google.",
	domain.FindingPerfilFechado:       "Atualizar o status de funcionamento do perfil, que hoje aparece como fechado.",

	domain.FindingSiteSemHTTPS:         "Instalar um certificado SSL para servir o site via HTTPS.",
	domain.FindingSiteSemTitulo:        "Definir um título descritivo na página inicial do site.",
	domain.FindingSiteSemMetaDescricao: "Escrever uma meta descrição com os serviços e a cidade para melhorar o resultado nas buscas.",
	domain.FindingSiteNaoResponsivo:    "Adaptar o site para celulares, onde acontece a maior parte das buscas locais.",
	domain.FindingSiteSemH1:            "Incluir um título principal (H1) que descreva o negócio na página inicial.",
	domain.FindingSiteLento:            "Otimizar imagens e hospedagem para reduzir o tempo de carregamento do site.",
	domain.FindingSiteSemContato:       "Exibir telefone ou botão de WhatsApp em destaque no site.",
	domain.FindingSiteSemRedes:         "Adicionar links para as redes sociais da empresa no site.",

	domain.FindingSemInstagram:    "Criar um perfil comercial no Instagram com publicações regulares.",
	domain.FindingSemFacebook:     "Criar uma página no Facebook com os dados de contato da empresa.",
	domain.FindingSemRedesSociais: "Iniciar presença nas redes sociais, começando pelo Instagram.",
	domain.FindingRedesForaDoSite: "Divulgar os perfis das redes sociais no site e no perfil do Google.",
}

// Recommend gera uma recomendação por problema, na ordem dos problemas e sem repetição
func Recommend(problemas []domain.Finding) []string {
	result := make([]string, 0, len(problemas))
	seen := make(map[string]struct{}, len(problemas))

	for _, p := range problemas {
		sentence := recommendationFor(p)
		if _, ok := seen[sentence]; ok {
			continue
		}
		seen[sentence] = struct{}{}
		result = append(result, sentence)
	}

	return result
}

func recommendationFor(f domain.Finding) string {
	if sentence, ok := recommendations[f.Code]; ok {
		return sentence
	}

	title := strings.TrimSpace(f.Titulo)
	if title == "" {
		title = "ponto identificado na análise"
	}
	return fmt.Sprintf("Corrigir: %s.", strings.TrimSuffix(title, "."))
}
