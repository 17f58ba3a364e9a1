package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/smartretail-api/internal/application/batch"
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/application/usecase"
)

// SaleLineHandler maneja las peticiones HTTP para líneas de venta sueltas (protegido).
type SaleLineHandler struct {
	reads *usecase.SaleUseCase
	batch *batch.SaleLineBatchUseCase
}

// NewSaleLineHandler construye el handler.
func NewSaleLineHandler(reads *usecase.SaleUseCase, b *batch.SaleLineBatchUseCase) *SaleLineHandler {
	return &SaleLineHandler{reads: reads, batch: b}
}

// List devuelve todas las líneas de venta.
func (h *SaleLineHandler) List(c *fiber.Ctx) error {
	out, err := h.reads.ListLines()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByKey devuelve una línea por (venta, producto, tienda); 404 si no existe.
func (h *SaleLineHandler) GetByKey(c *fiber.Ctx) error {
	out, err := h.reads.GetLineByKey(c.Params("saleId"), c.Params("productId"), c.Params("storeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de venta no encontrada"})
	}
	return c.JSON(out)
}

// Upsert procesa un lote de líneas sueltas con política upsert.
func (h *SaleLineHandler) Upsert(c *fiber.Ctx) error {
	var in []dto.SaleLineRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyUpsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(out)
}

// StrictInsert procesa un lote de líneas con política estricta (409 ante duplicados).
func (h *SaleLineHandler) StrictInsert(c *fiber.Ctx) error {
	var in []dto.SaleLineRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyStrictInsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(dto.InsertResult{InsertedCount: out.InsertedCount})
}
