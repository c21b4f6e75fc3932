package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weathergate/backend/internal/config"
	"github.com/weathergate/backend/internal/delivery/http"
	"github.com/weathergate/backend/internal/service"
)

func main() {
	cfg := config.Load()

	if cfg.WeatherbitAPIKey == "" {
		log.Println("Warning: WEATHERBIT_API_KEY is not set, upstream requests will fail")
	}

	// Dependency Injection
	client := service.NewWeatherbitClient(cfg.WeatherbitBaseURL, cfg.WeatherbitAPIKey, cfg.UpstreamTimeout)
	gateway := service.NewGatewayService(client)

	app := http.NewApp(gateway, cfg)

	// Graceful shutdown
	go func() {
		log.Printf("Server running on port %s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
