// Package rest exposes the quote API over HTTP.
package rest

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/MdShadmanLabib/phonevalue-backend/internal/config"
	"github.com/MdShadmanLabib/phonevalue-backend/internal/quote"
)

type Server struct {
	app *fiber.App
}

func New(cfg *config.Config, svc *quote.Service) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	qc := newQuoteController(svc)
	api := app.Group("/api")
	api.Post("/get-quote", qc.getQuoteHandler)
	api.Post("/v2/get-quote", qc.getQuoteV2Handler)

	return &Server{app: app}
}

func (s *Server) Listen(port string) error {
	return s.app.Listen(":" + port)
}

// errorHandler shapes every error as {"error": ...}. Anything that is not
// a deliberate fiber.Error is an unexpected orchestration failure and
// turns into a generic 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	log.Printf("[rest] %v unhandled error: %v", c.Locals("requestid"), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
