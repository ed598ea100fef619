package nurturing

import (
	"strings"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

type touch struct {
	assunto  string
	mensagem string
}

// touches segue a ordem da cadência; índices além da lista repetem o último
var touches = []touch{
	{
		assunto:  "Sua análise de presença digital está pronta",
		mensagem: "Olá {nome}, preparamos a análise da presença digital da {empresa}. Podemos apresentar os pontos de melhoria em uma conversa rápida?",
	},
	{
		assunto:  "Três ajustes rápidos para a {empresa} aparecer mais no Google",
		mensagem: "Olá {nome}, separamos os ajustes de maior impacto para a {empresa}. Quer que a gente mostre como aplicar?",
	},
	{
		assunto:  "Como negócios do seu segmento estão atraindo clientes",
		mensagem: "Olá {nome}, negócios parecidos com a {empresa} estão ganhando clientes com um perfil completo e avaliações em dia. Vamos conversar?",
	},
	{
		assunto:  "Ainda faz sentido melhorar a presença digital da {empresa}?",
		mensagem: "Olá {nome}, este é nosso último contato sobre a análise da {empresa}. Se quiser retomar, é só responder esta mensagem.",
	},
}

func buildNotification(d *domain.DueFollowUp) domain.Notificacao {
	t := touches[len(touches)-1]
	if d.SequenceIndex >= 0 && d.SequenceIndex < len(touches) {
		t = touches[d.SequenceIndex]
	}

	empresa := d.LeadNomeEmpresa
	if empresa == "" {
		empresa = "sua empresa"
	}

	r := strings.NewReplacer("{nome}", d.LeadNome, "{empresa}", empresa)

	return domain.Notificacao{
		Canal:    d.Canal,
		Nome:     d.LeadNome,
		Email:    d.LeadEmail,
		Telefone: d.LeadTelefone,
		Assunto:  r.Replace(t.assunto),
		Mensagem: r.Replace(t.mensagem),
	}
}
