package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/smartretail-api/internal/application/batch"
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP para Customer (protegido).
type CustomerHandler struct {
	reads *usecase.CustomerUseCase
	batch *batch.CustomerBatchUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(reads *usecase.CustomerUseCase, b *batch.CustomerBatchUseCase) *CustomerHandler {
	return &CustomerHandler{reads: reads, batch: b}
}

// List devuelve todos los clientes.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.reads.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByKey devuelve un cliente por (id, tienda); 404 si no existe.
func (h *CustomerHandler) GetByKey(c *fiber.Ctx) error {
	out, err := h.reads.GetByKey(c.Params("id"), c.Params("storeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// Upsert procesa un lote de clientes con política upsert.
func (h *CustomerHandler) Upsert(c *fiber.Ctx) error {
	var in []dto.CustomerRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyUpsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(out)
}

// StrictInsert procesa un lote de clientes con política estricta (409 ante duplicados).
func (h *CustomerHandler) StrictInsert(c *fiber.Ctx) error {
	var in []dto.CustomerRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyStrictInsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(dto.InsertResult{InsertedCount: out.InsertedCount})
}
