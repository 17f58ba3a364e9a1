package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain"
)

// batchError mapea los errores del motor de reconciliación a respuestas HTTP:
// fallos de validación → 400, conflictos de clave o referencia → 409, el
// resto → 500 genérico (la transacción ya se revirtió; el cliente reenvía).
func batchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyBatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BATCH", Message: "el lote no puede estar vacío"})
	case errors.Is(err, domain.ErrMissingStore):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_STORE", Message: "todos los registros requieren store_id"})
	case errors.Is(err, domain.ErrDuplicateKey):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_KEY", Message: "clave compuesta ya existente"})
	case errors.Is(err, domain.ErrForeignKey):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FOREIGN_KEY", Message: "referencia a venta o producto inexistente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
