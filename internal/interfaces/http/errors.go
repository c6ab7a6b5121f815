package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// errorBody traduce un error de dominio a status HTTP + cuerpo. Distingue
// rechazos de negocio (mostrables al usuario final) de fallas de sistema
// (reintentar/alertar) según la taxonomía de errores del dominio.
func errorBody(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrBuyerNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrInsufficientStock):
		// Resultado de negocio, no una falla: 422 para que el cliente lo muestre.
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrConcurrencyConflict):
		// Sin escritura parcial: el caller puede reintentar.
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	}
}

// respondError responde con el mapeo estándar de errores.
func respondError(c *fiber.Ctx, err error) error {
	status, body := errorBody(err)
	return c.Status(status).JSON(body)
}
