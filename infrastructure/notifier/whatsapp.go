package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-intelligence-api/internal/config"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/pkg/phone"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

type whatsAppErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// WhatsAppNotifier envia mensagens de texto pela WhatsApp Cloud API
type WhatsAppNotifier struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	phoneNumberID string
}

func NewWhatsAppNotifier(cfg *config.Config) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		baseURL:       strings.TrimSuffix(cfg.WhatsApp.URL, "/"),
		token:         cfg.WhatsApp.Token,
		phoneNumberID: cfg.WhatsApp.PhoneNumberID,
	}
}

func (w *WhatsAppNotifier) Notify(ctx context.Context, n domain.Notificacao) error {
	if !phone.IsMobile(n.Telefone) {
		return ErrInvalidRecipient
	}
	to := phone.WhatsAppID(n.Telefone)

	payload, err := json.Marshal(whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             whatsAppText{Body: n.Mensagem},
	})
	if err != nil {
		return errors.Wrap(err, "whatsapp: failed to encode message")
	}

	url := fmt.Sprintf("%s/%s/messages", w.baseURL, w.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "whatsapp: failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "whatsapp: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr whatsAppErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return errors.Errorf("whatsapp: status %d: %s (code %d)", resp.StatusCode, apiErr.Error.Message, apiErr.Error.Code)
		}
		return errors.Errorf("whatsapp: status %d", resp.StatusCode)
	}

	return nil
}
