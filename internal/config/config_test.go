package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("WEATHERBIT_API_KEY", "")
	t.Setenv("WEATHERBIT_BASE_URL", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("GO_ENV", "")

	cfg := FromEnv()

	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %q", cfg.Port)
	}
	if cfg.WeatherbitAPIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.WeatherbitAPIKey)
	}
	if cfg.WeatherbitBaseURL != "https://api.weatherbit.io/v2.0" {
		t.Errorf("unexpected base URL %q", cfg.WeatherbitBaseURL)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.UpstreamTimeout)
	}
	if cfg.Env != "development" {
		t.Errorf("expected development env, got %q", cfg.Env)
	}
	if cfg.Addr() != ":5000" {
		t.Errorf("expected :5000, got %q", cfg.Addr())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("WEATHERBIT_API_KEY", "secret")
	t.Setenv("WEATHERBIT_BASE_URL", "http://localhost:9999")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg := FromEnv()

	if cfg.Port != "8081" {
		t.Errorf("expected port 8081, got %q", cfg.Port)
	}
	if cfg.WeatherbitAPIKey != "secret" {
		t.Errorf("expected API key secret, got %q", cfg.WeatherbitAPIKey)
	}
	if cfg.WeatherbitBaseURL != "http://localhost:9999" {
		t.Errorf("unexpected base URL %q", cfg.WeatherbitBaseURL)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.UpstreamTimeout)
	}
}

func TestFromEnvInvalidTimeout(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0"} {
		t.Setenv("UPSTREAM_TIMEOUT", v)
		if got := FromEnv().UpstreamTimeout; got != DefaultUpstreamTimeout {
			t.Errorf("UPSTREAM_TIMEOUT=%q: expected default timeout, got %v", v, got)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WEATHERBIT_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv never overrides variables that are already set
	t.Setenv("WEATHERBIT_API_KEY", "")
	os.Unsetenv("WEATHERBIT_API_KEY")

	cfg := Load(path)

	if cfg.WeatherbitAPIKey != "from-dotenv" {
		t.Errorf("expected key from .env, got %q", cfg.WeatherbitAPIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Port != "7000" {
		t.Errorf("expected port from environment, got %q", cfg.Port)
	}
}
