package entity

// CustomerKey identidad compuesta de un cliente: (cliente, tienda).
type CustomerKey struct {
	CustomerID string
	StoreID    string
}

// Customer representa un cliente de una tienda con datos básicos de contacto.
type Customer struct {
	CustomerID string
	StoreID    string
	Name       string
	Email      string // opcional
	Phone      string // opcional
}

// Key devuelve la clave compuesta del cliente.
func (c *Customer) Key() CustomerKey {
	return CustomerKey{CustomerID: c.CustomerID, StoreID: c.StoreID}
}
