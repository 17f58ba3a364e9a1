package entity

import "github.com/shopspring/decimal"

// ProductKey identidad compuesta de un producto: (producto, tienda).
// Se usa como clave de mapa en el resolver de claves (igualdad por valor).
type ProductKey struct {
	ProductID string
	StoreID   string
}

// Product representa un producto disponible en una tienda, con su precio y stock.
// La identidad es compuesta; StoreID nunca se infiere ni se asume por defecto.
type Product struct {
	ProductID string
	StoreID   string
	Name      string
	UnitPrice decimal.Decimal // precio unitario, no negativo
	Stock     int             // cantidad disponible, >= 0
}

// Key devuelve la clave compuesta del producto.
func (p *Product) Key() ProductKey {
	return ProductKey{ProductID: p.ProductID, StoreID: p.StoreID}
}
