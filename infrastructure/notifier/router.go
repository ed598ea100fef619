package notifier

import (
	"context"
	"errors"

	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
	"github.com/vfg2006/lead-intelligence-api/pkg/phone"
)

var ErrInvalidRecipient = errors.New("destinatário ausente ou inválido")

// Channel é a interface comum aos canais de entrega
type Channel interface {
	Notify(ctx context.Context, n domain.Notificacao) error
}

// Router escolhe o canal de cada notificação. WhatsApp só é usado quando está habilitado
// e o telefone é um celular válido; nos demais casos a entrega vai por e-mail.
type Router struct {
	email           Channel
	whatsApp        Channel
	whatsAppEnabled bool
}

func NewRouter(email, whatsApp Channel, whatsAppEnabled bool) *Router {
	return &Router{
		email:           email,
		whatsApp:        whatsApp,
		whatsAppEnabled: whatsAppEnabled,
	}
}

func (r *Router) Notify(ctx context.Context, n domain.Notificacao) error {
	if n.Canal == domain.CanalWhatsApp {
		if r.whatsAppEnabled && r.whatsApp != nil && phone.IsMobile(n.Telefone) {
			return r.whatsApp.Notify(ctx, n)
		}

		log.ForContext(ctx).WithField("error", "whatsapp indisponível para o destinatário").Debug("notificação redirecionada para e-mail")
	}

	return r.email.Notify(ctx, n)
}
