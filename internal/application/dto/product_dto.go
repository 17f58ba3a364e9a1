package dto

import "github.com/shopspring/decimal"

// ProductRecord registro de producto dentro de un lote (clave provista por el
// llamador: product_id + store_id).
type ProductRecord struct {
	ProductID string          `json:"product_id" validate:"required"`
	StoreID   string          `json:"store_id" validate:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock_quantity"`
}

// Store devuelve el identificador de tienda del registro (gate de validación).
func (r ProductRecord) Store() string { return r.StoreID }

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID string          `json:"product_id"`
	StoreID   string          `json:"store_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock_quantity"`
}
