package google

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/lead-intelligence-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/lead-intelligence-api/internal/domain"
	"github.com/vfg2006/lead-intelligence-api/pkg/phone"
)

type GoogleIntegrator interface {
	GetBusinessProfile(ctx context.Context, placeID string) (*domain.BusinessProfile, error)
}

type GoogleService struct {
	Client googleclient.Client
}

func New(client googleclient.Client) GoogleIntegrator {
	return &GoogleService{
		Client: client,
	}
}

// GetBusinessProfile busca os detalhes do estabelecimento e retorna domain.ErrPlaceNotFound
// quando o Google não reconhece o place id
func (s *GoogleService) GetBusinessProfile(ctx context.Context, placeID string) (*domain.BusinessProfile, error) {
	resp, err := s.Client.GetPlaceDetails(ctx, placeID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"place_id": placeID,
			"error":    err.Error(),
		}).Error("google: failed to get place details from API")
		return nil, err
	}

	switch resp.Status {
	case googledomain.StatusOK:
	case googledomain.StatusNotFound, googledomain.StatusZeroResults, googledomain.StatusInvalidRequest:
		return nil, domain.ErrPlaceNotFound
	default:
		return nil, errors.New(fmt.Sprintf("places api retornou status %s: %s", resp.Status, resp.ErrorMessage))
	}

	profile := FactoryBusinessProfile(&resp.Result)
	if profile.PlaceID == "" {
		profile.PlaceID = placeID
	}

	logrus.WithFields(logrus.Fields{
		"place_id": placeID,
		"nome":     profile.Nome,
	}).Debug("google: successfully retrieved business profile")

	return profile, nil
}

func FactoryBusinessProfile(details *googledomain.PlaceDetails) *domain.BusinessProfile {
	telefone := details.InternationalPhoneNumber
	if telefone == "" {
		telefone = details.FormattedPhoneNumber
	}

	return &domain.BusinessProfile{
		PlaceID:             details.PlaceID,
		Nome:                details.Name,
		Endereco:            details.FormattedAddress,
		Telefone:            phone.NormalizeE164(telefone),
		Website:             details.Website,
		NotaMedia:           details.Rating,
		TotalAvaliacoes:     details.UserRatingsTotal,
		TotalFotos:          len(details.Photos),
		HorariosCompletos:   hoursCompleteness(details.OpeningHours),
		Categorias:          details.Types,
		StatusFuncionamento: details.BusinessStatus,
	}
}

// hoursCompleteness retorna a fração dos 7 dias da semana com horário cadastrado
func hoursCompleteness(hours *googledomain.OpeningHours) float64 {
	if hours == nil {
		return 0
	}

	// um único período aberto sem fechamento indica funcionamento 24h todos os dias
	if len(hours.Periods) == 1 && hours.Periods[0].Close == nil {
		return 1
	}

	days := make(map[int]struct{}, 7)
	for _, p := range hours.Periods {
		if p.Open.Day >= 0 && p.Open.Day <= 6 {
			days[p.Open.Day] = struct{}{}
		}
	}

	if len(days) == 0 && len(hours.WeekdayText) > 0 {
		filled := len(hours.WeekdayText)
		if filled > 7 {
			filled = 7
		}
		return float64(filled) / 7
	}

	return float64(len(days)) / 7
}
