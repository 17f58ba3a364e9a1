package dto

// CustomerRecord registro de cliente dentro de un lote.
type CustomerRecord struct {
	CustomerID string `json:"customer_id" validate:"required"`
	StoreID    string `json:"store_id" validate:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Store devuelve el identificador de tienda del registro.
func (r CustomerRecord) Store() string { return r.StoreID }

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
	StoreID    string `json:"store_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}
