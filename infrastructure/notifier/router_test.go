package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/pkg/log"
)

type countingChannel struct {
	calls int
}

func (c *countingChannel) Notify(_ context.Context, _ domain.Notificacao) error {
	c.calls++
	return nil
}

func TestRouter_Notify(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name             string
		canal            domain.Canal
		telefone         string
		whatsAppEnabled  bool
		expectedEmail    int
		expectedWhatsApp int
	}{
		{
			name:          "canal email",
			canal:         domain.CanalEmail,
			telefone:      "+5511987654321",
			expectedEmail: 1,
		},
		{
			name:             "whatsapp com celular",
			canal:            domain.CanalWhatsApp,
			telefone:         "+5511987654321",
			whatsAppEnabled:  true,
			expectedWhatsApp: 1,
		},
		{
			name:            "whatsapp com telefone fixo cai para email",
			canal:           domain.CanalWhatsApp,
			telefone:        "+551133334444",
			whatsAppEnabled: true,
			expectedEmail:   1,
		},
		{
			name:          "whatsapp desabilitado cai para email",
			canal:         domain.CanalWhatsApp,
			telefone:      "+5511987654321",
			expectedEmail: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, whatsApp := &countingChannel{}, &countingChannel{}
			router := NewRouter(email, whatsApp, tt.whatsAppEnabled)

			err := router.Notify(context.Background(), domain.Notificacao{
				Canal:    tt.canal,
				Telefone: tt.telefone,
				Email:    "cliente@exemplo.com.br",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedEmail, email.calls)
			assert.Equal(t, tt.expectedWhatsApp, whatsApp.calls)
		})
	}
}
