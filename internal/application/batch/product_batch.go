package batch

import (
	"context"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
	"github.com/jortega/smartretail-api/pkg/logger"
)

// ProductBatchUseCase reconcilia lotes de productos contra las filas
// existentes: INSERT si la clave compuesta no existe, UPDATE (o rechazo, según
// la política) si existe. Identidad provista por el llamador, nunca asignada.
type ProductBatchUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewProductBatchUseCase construye el caso de uso.
func NewProductBatchUseCase(tx TxRunner, log *logger.Logger) *ProductBatchUseCase {
	return &ProductBatchUseCase{tx: tx, log: log}
}

// Run valida, resuelve claves y aplica el lote dentro de una transacción.
// Los registros se clasifican en orden de llegada; ante claves repetidas en el
// mismo lote el último registro gana (se muta la misma fila en staging).
func (uc *ProductBatchUseCase) Run(ctx context.Context, policy Policy, in []dto.ProductRecord) (*dto.UpsertResult, error) {
	if err := ValidateBatch(in); err != nil {
		return nil, err
	}
	var res dto.UpsertResult
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.CustomerRepository, _ repository.SaleRepository) error {
		existing, err := ResolveProducts(products, in)
		if err != nil {
			return err
		}
		if policy == PolicyStrictInsert {
			if err := checkProductConflicts(in, existing); err != nil {
				return err
			}
		}

		staged := make(map[entity.ProductKey]*entity.Product)
		touched := make(map[entity.ProductKey]bool)
		var inserts, updates []*entity.Product
		for _, r := range in {
			key := entity.ProductKey{ProductID: r.ProductID, StoreID: r.StoreID}
			switch {
			case existing[key] != nil:
				row := existing[key]
				if !touched[key] {
					touched[key] = true
					updates = append(updates, row)
				}
				applyProductFields(row, r)
			case staged[key] != nil:
				applyProductFields(staged[key], r)
			default:
				row := &entity.Product{ProductID: r.ProductID, StoreID: r.StoreID}
				applyProductFields(row, r)
				staged[key] = row
				inserts = append(inserts, row)
			}
		}

		for _, row := range inserts {
			if err := products.Insert(row); err != nil {
				return err
			}
		}
		for _, row := range updates {
			if err := products.Update(row); err != nil {
				return err
			}
		}
		res = dto.UpsertResult{
			InsertedCount:  len(inserts),
			UpdatedCount:   len(updates),
			ProcessedCount: len(inserts) + len(updates),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int("batch_size", len(in)).
		Int("inserted", res.InsertedCount).
		Int("updated", res.UpdatedCount).
		Msg("lote de productos reconciliado")
	return &res, nil
}

// applyProductFields copia solo los campos mutables; la identidad no se toca.
func applyProductFields(row *entity.Product, r dto.ProductRecord) {
	row.Name = r.Name
	row.UnitPrice = r.UnitPrice
	row.Stock = r.Stock
}

func checkProductConflicts(in []dto.ProductRecord, existing map[entity.ProductKey]*entity.Product) error {
	seen := make(map[entity.ProductKey]bool, len(in))
	for _, r := range in {
		key := entity.ProductKey{ProductID: r.ProductID, StoreID: r.StoreID}
		if existing[key] != nil || seen[key] {
			return domain.ErrDuplicateKey
		}
		seen[key] = true
	}
	return nil
}
