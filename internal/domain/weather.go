package domain

// CurrentConditions is a single point-in-time weather snapshot for a city.
// Every field is copied verbatim from the provider's current-conditions
// record; nil means the provider sent null or left the field out.
type CurrentConditions struct {
	City          *string  `json:"city"`
	Country       *string  `json:"country"`
	Temperature   *float64 `json:"temperature"`
	FeelsLike     *float64 `json:"feels_like"`
	Humidity      *float64 `json:"humidity"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection *string  `json:"wind_dir"`
	Pressure      *float64 `json:"pressure"`
	Precipitation *float64 `json:"precipitation"`
	Description   *string  `json:"description"`
	Icon          *string  `json:"icon"`
	Sunrise       *string  `json:"sunrise"`
	Sunset        *string  `json:"sunset"`
	UV            *float64 `json:"uv"`
	Visibility    *float64 `json:"visibility"`
}

// ForecastDay is one day of a multi-day forecast
type ForecastDay struct {
	Date          *string  `json:"date"`
	MaxTemp       *float64 `json:"max_temp"`
	MinTemp       *float64 `json:"min_temp"`
	Pop           *float64 `json:"pop"` // probability of precipitation, percent
	Description   *string  `json:"description"`
	Icon          *string  `json:"icon"`
	UV            *float64 `json:"uv"`
	WindSpeed     *float64 `json:"wind_spd"`
	WindDirection *string  `json:"wind_dir"`
}

// ForecastResponse holds the daily forecast in the order the provider returned it
type ForecastResponse struct {
	City     *string       `json:"city"`
	Country  *string       `json:"country"`
	Forecast []ForecastDay `json:"forecast"`
}

// ErrorResponse is the envelope for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
