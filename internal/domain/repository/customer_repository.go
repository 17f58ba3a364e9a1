package repository

import "github.com/jortega/smartretail-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	GetByKey(key entity.CustomerKey) (*entity.Customer, error)
	ListAll() ([]*entity.Customer, error)
	ListByKeys(customerIDs, storeIDs []string) ([]*entity.Customer, error)
	Insert(customer *entity.Customer) error
	Update(customer *entity.Customer) error
}
