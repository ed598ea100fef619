package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"gopkg.in/gomail.v2"
)

var emailTemplate = template.Must(template.New("followup").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif; color: #222;">
{{range .Paragrafos}}<p>{{.}}</p>
{{end}}<p style="color: #888; font-size: 12px;">Você recebeu este e-mail porque solicitou uma análise de presença digital.</p>
</body>
</html>`))

// Sender é a parte do gomail.Dialer usada pelo notificador
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailNotifier struct {
	sender   Sender
	from     string
	fromName string
}

func NewEmailNotifier(cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{
		sender:   gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:     cfg.SMTP.From,
		fromName: cfg.SMTP.FromName,
	}
}

func (e *EmailNotifier) Notify(ctx context.Context, n domain.Notificacao) error {
	if strings.TrimSpace(n.Email) == "" {
		return ErrInvalidRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	data := struct{ Paragrafos []string }{Paragrafos: strings.Split(n.Mensagem, "\n")}
	if err := emailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.from, e.fromName)
	m.SetAddressHeader("To", n.Email, n.Nome)
	m.SetHeader("Subject", n.Assunto)
	m.SetBody("text/plain", n.Mensagem)
	m.AddAlternative("text/html", body.String())

	// o gomail não aceita contexto; o envio segue em segundo plano se o prazo acabar
	done := make(chan error, 1)
	go func() { done <- e.sender.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("erro ao enviar email SMTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("envio de email SMTP interrompido: %w", ctx.Err())
	}
}
