package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/domain"
)

// responderError traduce errores de dominio a estados HTTP. Los fallos de
// escritura remota salen como 502 con los pasos ya aplicados en el cuerpo,
// porque el API remoto no compensa y el operador necesita saber qué quedó hecho.
func responderError(c *fiber.Ctx, err error) error {
	var remoto *movimientos.ErrEscrituraRemota
	if errors.As(err, &remoto) {
		pasos := make([]dto.PasoAplicado, len(remoto.Completados))
		for i, p := range remoto.Completados {
			pasos[i] = dto.PasoAplicado{Paso: string(p.Paso), ID: p.ID, Recurso: p.Recurso}
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:           "REMOTE_WRITE_FAILED",
			Message:        remoto.Error(),
			PasosAplicados: pasos,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: "hay un envío en curso"})
	case errors.Is(err, domain.ErrEmptyBasket):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY", Message: "el movimiento no tiene líneas"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
