package repository

import "github.com/jortega/smartretail-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas
// (la cabecera y el detalle se persisten juntos, como en una factura).
// Update solo toca los campos mutables de la cabecera; el reemplazo del
// detalle se hace con DeleteLinesBySale + InsertLine dentro de la misma
// transacción.
type SaleRepository interface {
	GetByKey(key entity.SaleKey) (*entity.Sale, error)
	ListAll() ([]*entity.Sale, error)
	ListByKeys(saleIDs, storeIDs []string) ([]*entity.Sale, error)
	Insert(sale *entity.Sale) error
	Update(sale *entity.Sale) error

	ListLinesBySale(key entity.SaleKey) ([]*entity.SaleLine, error)
	DeleteLinesBySale(key entity.SaleKey) error
	InsertLine(line *entity.SaleLine) error

	// Operaciones de línea suelta para el endpoint de sale-lines.
	GetLineByKey(key entity.SaleLineKey) (*entity.SaleLine, error)
	ListAllLines() ([]*entity.SaleLine, error)
	ListLinesByKeys(saleIDs, productIDs, storeIDs []string) ([]*entity.SaleLine, error)
	UpdateLine(line *entity.SaleLine) error
}
