package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/smartretail-api/internal/application/batch"
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP para Sale (protegido).
type SaleHandler struct {
	reads *usecase.SaleUseCase
	batch *batch.SaleBatchUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(reads *usecase.SaleUseCase, b *batch.SaleBatchUseCase) *SaleHandler {
	return &SaleHandler{reads: reads, batch: b}
}

// List godoc
// @Summary      Listar ventas con sus líneas (?summary=true para la proyección sin líneas)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        summary  query  bool  false  "Proyección resumida"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("summary") {
		out, err := h.reads.ListSummaries()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.reads.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByKey devuelve una venta con sus líneas por (id, tienda); 404 si no existe.
func (h *SaleHandler) GetByKey(c *fiber.Ctx) error {
	out, err := h.reads.GetByKey(c.Params("id"), c.Params("storeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Lote de ventas (upsert; en actualización el conjunto de líneas se reemplaza completo)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.SaleRecord  true  "Lote de ventas"
// @Success      200   {object}  dto.UpsertResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Upsert(c *fiber.Ctx) error {
	var in []dto.SaleRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyUpsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(out)
}

// StrictInsert procesa un lote de ventas con política estricta (409 ante duplicados).
func (h *SaleHandler) StrictInsert(c *fiber.Ctx) error {
	var in []dto.SaleRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyStrictInsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(dto.InsertResult{InsertedCount: out.InsertedCount})
}
