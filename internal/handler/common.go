package handler

import (
	"errors"

	"go-commerce-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

// getCaller builds the caller identity from the JWT context set by the
// auth middleware.
func getCaller(c *fiber.Ctx) service.Caller {
	caller := service.Caller{}
	if v, ok := c.Locals("account_id").(string); ok {
		caller.AccountID = v
	}
	if v, ok := c.Locals("role_code").(string); ok {
		caller.Role = v
	}
	return caller
}

// statusFor maps the service error taxonomy onto HTTP statuses. Every
// error is terminal for its operation; callers may resubmit.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrAlreadyRegistered):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrCompanyNotActive),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrInsufficientAllowance),
		errors.Is(err, service.ErrInsufficientTokenBalance):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusBadRequest
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}
