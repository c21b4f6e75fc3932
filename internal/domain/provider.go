package domain

import "context"

// WeatherProvider defines the upstream weather data source.
// Implementations return *UpstreamError for every failure; an empty result
// is not an error.
type WeatherProvider interface {
	// CurrentConditions returns the first current-conditions record matching
	// the city, or nil when the provider has none
	CurrentConditions(ctx context.Context, city string) (*CurrentConditions, error)

	// DailyForecast returns up to days daily entries for the city
	DailyForecast(ctx context.Context, city string, days int) (ForecastResponse, error)
}
