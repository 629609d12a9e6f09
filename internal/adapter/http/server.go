// Package http exposes the ledger over a REST API built on Fiber.
package http

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// NewApp builds the Fiber application with all routes registered
func NewApp(h *Handler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ledger",
		ErrorHandler: errorHandler,
	})

	app.Use(RequestLogger(logger))

	app.Get("/health", h.Health)

	app.Post("/v1/accounts", h.CreateAccount)
	app.Put("/v1/accounts/transfer", h.TransferAmount)
	app.Get("/v1/accounts/:id", h.GetAccount)

	app.Get("/v1/ledger/total", h.LedgerTotal)

	return app
}
