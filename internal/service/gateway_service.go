package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/weathergate/backend/internal/domain"
)

// ForecastDays is the number of daily entries requested from the provider
const ForecastDays = 7

// GatewayService validates queries and classifies provider results into
// a response, domain.ErrCityNotFound or *domain.UpstreamError.
type GatewayService struct {
	provider domain.WeatherProvider
}

// NewGatewayService creates a new gateway service
func NewGatewayService(provider domain.WeatherProvider) *GatewayService {
	return &GatewayService{provider: provider}
}

// GetCurrentConditions returns the first current-conditions record for city.
// An upstream HTTP 404 is reported as domain.ErrCityNotFound.
func (s *GatewayService) GetCurrentConditions(ctx context.Context, city string) (domain.CurrentConditions, error) {
	if city == "" {
		return domain.CurrentConditions{}, domain.ErrCityRequired
	}

	current, err := s.provider.CurrentConditions(ctx, city)
	if err != nil {
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) && upErr.StatusCode == http.StatusNotFound {
			return domain.CurrentConditions{}, domain.ErrCityNotFound
		}
		return domain.CurrentConditions{}, asUpstreamError(opCurrent, err)
	}

	if current == nil {
		return domain.CurrentConditions{}, domain.ErrCityNotFound
	}

	return *current, nil
}

// GetForecast returns the daily forecast for city. Unlike
// GetCurrentConditions, an upstream HTTP 404 stays an upstream failure;
// only an empty day list means the city was not found.
func (s *GatewayService) GetForecast(ctx context.Context, city string) (domain.ForecastResponse, error) {
	if city == "" {
		return domain.ForecastResponse{}, domain.ErrCityRequired
	}

	forecast, err := s.provider.DailyForecast(ctx, city, ForecastDays)
	if err != nil {
		return domain.ForecastResponse{}, asUpstreamError(opForecast, err)
	}

	if len(forecast.Forecast) == 0 {
		return domain.ForecastResponse{}, domain.ErrCityNotFound
	}

	return forecast, nil
}

func asUpstreamError(op string, err error) error {
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return err
	}
	return &domain.UpstreamError{Op: op, Err: err}
}
