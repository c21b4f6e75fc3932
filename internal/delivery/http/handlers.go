package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/weathergate/backend/internal/domain"
	"github.com/weathergate/backend/internal/service"
)

const (
	msgCityRequired   = "City parameter is required"
	msgCityNotFound   = "City not found"
	msgWeatherFailed  = "Error fetching weather data"
	msgForecastFailed = "Error fetching forecast data"
)

// Handler contains all HTTP handlers
type Handler struct {
	gateway *service.GatewayService
}

// NewHandler creates a new handler
func NewHandler(gateway *service.GatewayService) *Handler {
	return &Handler{gateway: gateway}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weather-gateway",
		"version": "1.0.0",
	})
}

// GetWeather returns current conditions for the city query parameter
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	weather, err := h.gateway.GetCurrentConditions(c.Context(), c.Query("city"))
	if err != nil {
		return toFiberError(c, err, msgWeatherFailed)
	}

	return c.JSON(weather)
}

// GetForecast returns the daily forecast for the city query parameter
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	forecast, err := h.gateway.GetForecast(c.Context(), c.Query("city"))
	if err != nil {
		return toFiberError(c, err, msgForecastFailed)
	}

	return c.JSON(forecast)
}

// toFiberError maps domain errors to HTTP errors. Upstream causes are only
// logged; the caller sees failMessage.
func toFiberError(c *fiber.Ctx, err error, failMessage string) error {
	switch {
	case errors.Is(err, domain.ErrCityRequired):
		return fiber.NewError(fiber.StatusBadRequest, msgCityRequired)
	case errors.Is(err, domain.ErrCityNotFound):
		return fiber.NewError(fiber.StatusNotFound, msgCityNotFound)
	}

	requestID, _ := c.Locals("requestid").(string)
	log.Printf("%s [%s]: %v", failMessage, requestID, err)
	return fiber.NewError(fiber.StatusInternalServerError, failMessage)
}
