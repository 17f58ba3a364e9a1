package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord registro de venta dentro de un lote. Lines es el conjunto
// autoritativo de líneas de la venta: en una actualización reemplaza por
// completo al conjunto almacenado. Cualquier objeto padre/hermano embebido
// que venga en el JSON se ignora en la frontera; las relaciones viajan solo
// como claves (customer_id, y en cada línea sale_id/product_id/store_id
// heredados de la venta).
type SaleRecord struct {
	SaleID     string           `json:"sale_id" validate:"required"`
	StoreID    string           `json:"store_id" validate:"required"`
	Date       time.Time        `json:"date"`
	Total      decimal.Decimal  `json:"total_amount"`
	CustomerID string           `json:"customer_id"`
	Lines      []SaleLineRecord `json:"lines"`
}

// Store devuelve el identificador de tienda del registro.
func (r SaleRecord) Store() string { return r.StoreID }

// SaleLineRecord registro de línea de venta. Dentro de un SaleRecord los
// campos SaleID y StoreID se ignoran y se toman de la venta padre; como lote
// suelto (endpoint de sale-lines) los tres componentes de la clave son
// obligatorios.
type SaleLineRecord struct {
	SaleID    string          `json:"sale_id"`
	ProductID string          `json:"product_id" validate:"required"`
	StoreID   string          `json:"store_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Store devuelve el identificador de tienda del registro.
func (r SaleLineRecord) Store() string { return r.StoreID }

// SaleResponse salida de una venta, con sus líneas.
type SaleResponse struct {
	SaleID     string             `json:"sale_id"`
	StoreID    string             `json:"store_id"`
	Date       time.Time          `json:"date"`
	Total      decimal.Decimal    `json:"total_amount"`
	CustomerID string             `json:"customer_id"`
	Lines      []SaleLineResponse `json:"lines,omitempty"`
}

// SaleSummaryResponse proyección reducida de una venta (sin líneas), para
// listados que no quieren serializar la colección propiedad.
type SaleSummaryResponse struct {
	SaleID     string          `json:"sale_id"`
	StoreID    string          `json:"store_id"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total_amount"`
	CustomerID string          `json:"customer_id"`
	LineCount  int             `json:"line_count"`
}

// SaleLineResponse salida de una línea de venta.
type SaleLineResponse struct {
	SaleID    string          `json:"sale_id"`
	ProductID string          `json:"product_id"`
	StoreID   string          `json:"store_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
