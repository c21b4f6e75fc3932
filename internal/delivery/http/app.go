package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/weathergate/backend/internal/config"
	"github.com/weathergate/backend/internal/domain"
	"github.com/weathergate/backend/internal/service"
)

const (
	minServerTimeout = 10 * time.Second
	// headroom for reading the request and writing the response
	serverTimeoutSlack = 5 * time.Second
)

// NewApp builds the fiber application with middleware and routes
func NewApp(gateway *service.GatewayService, cfg *config.Config) *fiber.App {
	timeout := serverTimeout(cfg.UpstreamTimeout)
	app := fiber.New(fiber.Config{
		AppName:      "Weather Gateway v1.0",
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	SetupRoutes(app, gateway)

	return app
}

// serverTimeout keeps the server timeouts above the upstream timeout
func serverTimeout(upstream time.Duration) time.Duration {
	if t := upstream + serverTimeoutSlack; t > minServerTimeout {
		return t
	}
	return minServerTimeout
}

// ErrorHandler renders every error as {"error": message}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(domain.ErrorResponse{Error: message})
}
