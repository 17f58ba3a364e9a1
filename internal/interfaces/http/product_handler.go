package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/smartretail-api/internal/application/batch"
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	reads *usecase.ProductUseCase
	batch *batch.ProductBatchUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(reads *usecase.ProductUseCase, b *batch.ProductBatchUseCase) *ProductHandler {
	return &ProductHandler{reads: reads, batch: b}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.reads.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByKey godoc
// @Summary      Obtener producto por clave compuesta
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID del producto"
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/{storeId} [get]
func (h *ProductHandler) GetByKey(c *fiber.Ctx) error {
	out, err := h.reads.GetByKey(c.Params("id"), c.Params("storeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Lote de productos (upsert por clave compuesta)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.ProductRecord  true  "Lote de productos"
// @Success      200   {object}  dto.UpsertResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Upsert(c *fiber.Ctx) error {
	var in []dto.ProductRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyUpsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(out)
}

// StrictInsert godoc
// @Summary      Lote de productos (inserción estricta, 409 ante duplicados)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.ProductRecord  true  "Lote de productos"
// @Success      200   {object}  dto.InsertResult
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/strict [post]
func (h *ProductHandler) StrictInsert(c *fiber.Ctx) error {
	var in []dto.ProductRecord
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.Run(c.Context(), batch.PolicyStrictInsert, in)
	if err != nil {
		return batchError(c, err)
	}
	return c.JSON(dto.InsertResult{InsertedCount: out.InsertedCount})
}
