package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/weathergate/backend/internal/domain"
)

const (
	opCurrent  = "current"
	opForecast = "forecast/daily"

	// metric units
	unitsMetric = "M"
)

var errMissingWeather = errors.New("record has no weather object")

// WeatherbitClient fetches data from the Weatherbit v2.0 API
type WeatherbitClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWeatherbitClient creates a new Weatherbit client
func NewWeatherbitClient(baseURL, apiKey string, timeout time.Duration) *WeatherbitClient {
	return &WeatherbitClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// weatherbitCondition is the nested "weather" object of every record.
// Only the fields copied into responses are decoded.
type weatherbitCondition struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// CurrentResponse represents the Weatherbit /current response. Records stay
// raw so that only the first one is decoded.
type CurrentResponse struct {
	Data []json.RawMessage `json:"data"`
}

// CurrentRecord is one entry of the /current data array
type CurrentRecord struct {
	CityName    *string              `json:"city_name"`
	CountryCode *string              `json:"country_code"`
	Temp        *float64             `json:"temp"`
	AppTemp     *float64             `json:"app_temp"`
	RH          *float64             `json:"rh"`
	WindSpd     *float64             `json:"wind_spd"`
	WindCdir    *string              `json:"wind_cdir"`
	Pres        *float64             `json:"pres"`
	Precip      *float64             `json:"precip"`
	Weather     *weatherbitCondition `json:"weather"`
	Sunrise     *string              `json:"sunrise"`
	Sunset      *string              `json:"sunset"`
	UV          *float64             `json:"uv"`
	Vis         *float64             `json:"vis"`
}

// DailyForecastResponse represents the Weatherbit /forecast/daily response
type DailyForecastResponse struct {
	CityName    *string `json:"city_name"`
	CountryCode *string `json:"country_code"`
	Data        []struct {
		ValidDate *string              `json:"valid_date"`
		MaxTemp   *float64             `json:"max_temp"`
		MinTemp   *float64             `json:"min_temp"`
		Pop       *float64             `json:"pop"`
		Weather   *weatherbitCondition `json:"weather"`
		UV        *float64             `json:"uv"`
		WindSpd   *float64             `json:"wind_spd"`
		WindCdir  *string              `json:"wind_cdir"`
	} `json:"data"`
}

// CurrentConditions fetches current conditions for a city in metric units.
// Only the first record is read; nil means the provider matched nothing.
func (c *WeatherbitClient) CurrentConditions(ctx context.Context, city string) (*domain.CurrentConditions, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("units", unitsMetric)

	var resp CurrentResponse
	if err := c.get(ctx, opCurrent, params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}

	var d CurrentRecord
	if err := json.Unmarshal(resp.Data[0], &d); err != nil {
		return nil, &domain.UpstreamError{Op: opCurrent, StatusCode: http.StatusOK, Err: fmt.Errorf("weatherbit: failed to decode record: %w", err)}
	}
	if d.Weather == nil {
		return nil, &domain.UpstreamError{Op: opCurrent, Err: errMissingWeather}
	}

	return &domain.CurrentConditions{
		City:          d.CityName,
		Country:       d.CountryCode,
		Temperature:   d.Temp,
		FeelsLike:     d.AppTemp,
		Humidity:      d.RH,
		WindSpeed:     d.WindSpd,
		WindDirection: d.WindCdir,
		Pressure:      d.Pres,
		Precipitation: d.Precip,
		Description:   d.Weather.Description,
		Icon:          d.Weather.Icon,
		Sunrise:       d.Sunrise,
		Sunset:        d.Sunset,
		UV:            d.UV,
		Visibility:    d.Vis,
	}, nil
}

// DailyForecast fetches a daily forecast for a city in metric units
func (c *WeatherbitClient) DailyForecast(ctx context.Context, city string, days int) (domain.ForecastResponse, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("days", strconv.Itoa(days))
	params.Set("units", unitsMetric)

	var resp DailyForecastResponse
	if err := c.get(ctx, opForecast, params, &resp); err != nil {
		return domain.ForecastResponse{}, err
	}

	forecast := domain.ForecastResponse{
		City:     resp.CityName,
		Country:  resp.CountryCode,
		Forecast: make([]domain.ForecastDay, 0, len(resp.Data)),
	}
	for _, d := range resp.Data {
		if d.Weather == nil {
			return domain.ForecastResponse{}, &domain.UpstreamError{Op: opForecast, Err: errMissingWeather}
		}
		forecast.Forecast = append(forecast.Forecast, domain.ForecastDay{
			Date:          d.ValidDate,
			MaxTemp:       d.MaxTemp,
			MinTemp:       d.MinTemp,
			Pop:           d.Pop,
			Description:   d.Weather.Description,
			Icon:          d.Weather.Icon,
			UV:            d.UV,
			WindSpeed:     d.WindSpd,
			WindDirection: d.WindCdir,
		})
	}

	return forecast, nil
}

// get performs one GET against the provider and decodes the body into out.
// Weatherbit answers 204 with no body when nothing matches; out is left
// untouched in that case.
func (c *WeatherbitClient) get(ctx context.Context, op string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, op, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.UpstreamError{Op: op, Err: fmt.Errorf("weatherbit: failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Op: op, Err: fmt.Errorf("weatherbit: request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &domain.UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("weatherbit: unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("weatherbit: failed to read response: %w", err)}
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("weatherbit: failed to decode response: %w", err)}
	}

	return nil
}
