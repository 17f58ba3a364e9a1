package usecase

import (
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
)

// CustomerUseCase lecturas de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	rows, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetByKey devuelve un cliente por su clave compuesta, o nil si no existe.
func (uc *CustomerUseCase) GetByKey(customerID, storeID string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByKey(entity.CustomerKey{CustomerID: customerID, StoreID: storeID})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CustomerID: c.CustomerID,
		StoreID:    c.StoreID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
	}
}
