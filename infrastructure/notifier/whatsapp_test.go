package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
)

func TestWhatsAppNotifier_Notify(t *testing.T) {
	tests := []struct {
		name        string
		telefone    string
		status      int
		response    string
		expectErr   bool
		expectedErr error
		expectCall  bool
	}{
		{
			name:       "envia mensagem de texto",
			telefone:   "(11) 98765-4321",
			status:     http.StatusOK,
			response:   `{"messages":[{"id":"wamid.1"}]}`,
			expectCall: true,
		},
		{
			name:        "telefone inválido",
			telefone:    "abc",
			expectErr:   true,
			expectedErr: ErrInvalidRecipient,
		},
		{
			name:       "erro da api",
			telefone:   "+5511987654321",
			status:     http.StatusBadRequest,
			response:   `{"error":{"message":"Invalid parameter","code":100}}`,
			expectErr:  true,
			expectCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "/12345/messages", r.URL.Path)
				assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))

				body, _ := io.ReadAll(r.Body)
				var msg whatsAppMessage
				require.NoError(t, json.Unmarshal(body, &msg))
				assert.Equal(t, "whatsapp", msg.MessagingProduct)
				assert.Equal(t, "5511987654321", msg.To)
				assert.Equal(t, "Olá", msg.Text.Body)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			n := &WhatsAppNotifier{
				httpClient:    server.Client(),
				baseURL:       server.URL,
				token:         "token-teste",
				phoneNumberID: "12345",
			}

			err := n.Notify(context.Background(), domain.Notificacao{
				Canal:    domain.CanalWhatsApp,
				Telefone: tt.telefone,
				Mensagem: "Olá",
			})

			if tt.expectErr {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectCall, called)
		})
	}
}
