package entity

import "github.com/shopspring/decimal"

// SaleLineKey identidad compuesta de una línea de venta: (venta, producto, tienda).
type SaleLineKey struct {
	SaleID    string
	ProductID string
	StoreID   string
}

// SaleLine representa una línea de una venta: producto vendido, cantidad y
// subtotal. Pertenece a una Sale y referencia un Product de la misma tienda;
// ambas relaciones viajan como claves, nunca como objetos embebidos.
type SaleLine struct {
	SaleID    string
	ProductID string
	StoreID   string
	Quantity  int // > 0
	Subtotal  decimal.Decimal
}

// Key devuelve la clave compuesta de la línea.
func (l *SaleLine) Key() SaleLineKey {
	return SaleLineKey{SaleID: l.SaleID, ProductID: l.ProductID, StoreID: l.StoreID}
}
