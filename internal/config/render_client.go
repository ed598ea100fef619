package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	renderBaseURL  = "https://api.render.com/v1"
	renderPageSize = 100
)

// SecretStorage fornece os secret files com as credenciais das integrações
type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

type RenderClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		BaseURL:    renderBaseURL,
		APIKey:     config.Render.APIKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type renderSecretFile struct {
	SecretFile struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	} `json:"secretFile"`
	Cursor string `json:"cursor"`
}

// ListSecrets percorre todas as páginas de secret files do serviço
func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	secrets := make(map[string]string)

	cursor := ""
	for {
		page, err := c.secretFilesPage(ctx, serviceID, cursor)
		if err != nil {
			return nil, err
		}

		for _, sf := range page {
			secrets[sf.SecretFile.Name] = sf.SecretFile.Content
		}

		if len(page) < renderPageSize {
			return secrets, nil
		}
		cursor = page[len(page)-1].Cursor
		if cursor == "" {
			return secrets, nil
		}
	}
}

func (c *RenderClient) secretFilesPage(ctx context.Context, serviceID, cursor string) ([]renderSecretFile, error) {
	query := url.Values{"limit": {fmt.Sprint(renderPageSize)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, url.PathEscape(serviceID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config: erro ao consultar secret files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("config: erro ao listar secret files (status %d): %s", resp.StatusCode, body)
	}

	var page []renderSecretFile
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("config: resposta de secret files inválida: %w", err)
	}
	return page, nil
}
