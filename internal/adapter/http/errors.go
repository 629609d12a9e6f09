package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// statusFor maps a use-case error to an HTTP status
// Every business rule violation is a client error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrDuplicateAccountID),
		errors.Is(err, domain.ErrEmptyAccountID),
		errors.Is(err, domain.ErrNegativeBalance):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

// errorHandler renders errors that escape a handler, e.g. unknown routes
func errorHandler(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return writeError(c, status, err)
}
