package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

type blockingSender struct {
	release chan struct{}
}

func (b *blockingSender) DialAndSend(m ...*gomail.Message) error {
	<-b.release
	return nil
}

func TestEmailNotifier_Notify_Prazo(t *testing.T) {
	sender := &blockingSender{release: make(chan struct{})}
	defer close(sender.release)

	n := &EmailNotifier{sender: sender, from: "contato@agencia.com.br", fromName: "Agência"}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := n.Notify(ctx, domain.Notificacao{Canal: domain.CanalEmail, Email: "maria@exemplo.com.br", Mensagem: "Olá"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEmailNotifier_Notify(t *testing.T) {
	notificacao := domain.Notificacao{
		Canal:    domain.CanalEmail,
		Nome:     "Maria",
		Email:    "maria@exemplo.com.br",
		Assunto:  "Seu diagnóstico digital",
		Mensagem: "Olá Maria\nVimos seu relatório.",
	}

	tests := []struct {
		name          string
		notificacao   domain.Notificacao
		senderErr     error
		expectedErr   error
		expectedSends int
	}{
		{
			name:          "envia com sucesso",
			notificacao:   notificacao,
			expectedSends: 1,
		},
		{
			name: "sem destinatário",
			notificacao: domain.Notificacao{
				Canal:    domain.CanalEmail,
				Mensagem: "Olá",
			},
			expectedErr: ErrInvalidRecipient,
		},
		{
			name:        "falha no SMTP",
			notificacao: notificacao,
			senderErr:   errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{err: tt.senderErr}
			n := &EmailNotifier{sender: sender, from: "contato@agencia.com.br", fromName: "Agência"}

			err := n.Notify(context.Background(), tt.notificacao)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.senderErr != nil:
				assert.ErrorIs(t, err, tt.senderErr)
			default:
				require.NoError(t, err)
			}
			assert.Len(t, sender.sent, tt.expectedSends)

			if tt.expectedSends > 0 {
				msg := sender.sent[0]
				assert.Equal(t, []string{tt.notificacao.Assunto}, msg.GetHeader("Subject"))
				assert.Equal(t, []string{`"Maria" <maria@exemplo.com.br>`}, msg.GetHeader("To"))
			}
		})
	}
}
