package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weathergate/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, gateway *service.GatewayService) {
	handler := NewHandler(gateway)

	// Health check
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api")
	{
		api.Get("/weather", handler.GetWeather)
		api.Get("/forecast", handler.GetForecast)
	}
}
