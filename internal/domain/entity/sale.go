package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleKey identidad compuesta de una venta: (venta, tienda).
type SaleKey struct {
	SaleID  string
	StoreID string
}

// Sale representa una venta realizada en una tienda. La fecha se almacena y
// compara siempre en UTC, sin importar la zona horaria de entrada.
// Lines contiene las líneas propiedad de la venta; en una actualización el
// conjunto completo se reemplaza, nunca se mezcla línea a línea.
type Sale struct {
	SaleID     string
	StoreID    string
	Date       time.Time
	Total      decimal.Decimal
	CustomerID string // referencia a Customer en la misma tienda
	Lines      []*SaleLine
}

// Key devuelve la clave compuesta de la venta.
func (s *Sale) Key() SaleKey {
	return SaleKey{SaleID: s.SaleID, StoreID: s.StoreID}
}

// NormalizeDate fuerza la fecha de la venta a UTC.
func (s *Sale) NormalizeDate() {
	s.Date = s.Date.UTC()
}
