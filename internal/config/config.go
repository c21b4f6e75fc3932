package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "5000"
	DefaultWeatherbitURL   = "https://api.weatherbit.io/v2.0"
	DefaultUpstreamTimeout = 10 * time.Second
)

// Config holds process configuration, read once at startup
type Config struct {
	Port              string
	WeatherbitAPIKey  string
	WeatherbitBaseURL string
	UpstreamTimeout   time.Duration
	Env               string
}

// Load reads an optional .env file and then the process environment.
// A missing API key is not rejected here; upstream calls will fail instead.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() *Config {
	return &Config{
		Port:              getEnv("PORT", DefaultPort),
		WeatherbitAPIKey:  getEnv("WEATHERBIT_API_KEY", ""),
		WeatherbitBaseURL: getEnv("WEATHERBIT_BASE_URL", DefaultWeatherbitURL),
		UpstreamTimeout:   getDuration("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout),
		Env:               getEnv("GO_ENV", "development"),
	}
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
