package googleclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	googledomain "github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const detailsFields = "place_id,name,formatted_address,formatted_phone_number,international_phone_number," +
	"website,rating,user_ratings_total,photos,opening_hours,types,business_status"

func (c *GoogleClient) GetPlaceDetails(ctx context.Context, placeID string) (*googledomain.PlaceDetailsResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "aguardando limite de requisições da Places API")
	}

	endpoint, err := url.Parse(c.config.PlacesURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/details/json")

	query := endpoint.Query()
	query.Set("place_id", placeID)
	query.Set("fields", detailsFields)
	query.Set("language", c.config.Language)
	query.Set("key", c.config.APIKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(fmt.Sprintf("requisição falhou com status: %s", resp.Status))
	}

	var response googledomain.PlaceDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &response, nil
}
