package usecase

import (
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
)

// ProductUseCase lecturas de productos: listado completo y búsqueda por clave
// compuesta exacta.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	rows, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByKey devuelve un producto por su clave compuesta, o nil si no existe.
func (uc *ProductUseCase) GetByKey(productID, storeID string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByKey(entity.ProductKey{ProductID: productID, StoreID: storeID})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID: p.ProductID,
		StoreID:   p.StoreID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Stock:     p.Stock,
	}
}
