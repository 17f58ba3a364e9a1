package repository

import "github.com/jortega/smartretail-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// ListByKeys es la consulta masiva del resolver: trae candidatos cuyos
// componentes de clave intersectan los conjuntos del lote; el llamador debe
// re-verificar la igualdad exacta de la clave compuesta.
type ProductRepository interface {
	GetByKey(key entity.ProductKey) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	ListByKeys(productIDs, storeIDs []string) ([]*entity.Product, error)
	Insert(product *entity.Product) error
	Update(product *entity.Product) error
}
