package batch

import (
	"context"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
	"github.com/jortega/smartretail-api/pkg/logger"
)

// CustomerBatchUseCase reconcilia lotes de clientes (misma mecánica que
// productos: clasificación por clave compuesta con política explícita).
type CustomerBatchUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewCustomerBatchUseCase construye el caso de uso.
func NewCustomerBatchUseCase(tx TxRunner, log *logger.Logger) *CustomerBatchUseCase {
	return &CustomerBatchUseCase{tx: tx, log: log}
}

// Run valida, resuelve claves y aplica el lote dentro de una transacción.
func (uc *CustomerBatchUseCase) Run(ctx context.Context, policy Policy, in []dto.CustomerRecord) (*dto.UpsertResult, error) {
	if err := ValidateBatch(in); err != nil {
		return nil, err
	}
	var res dto.UpsertResult
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, customers repository.CustomerRepository, _ repository.SaleRepository) error {
		existing, err := ResolveCustomers(customers, in)
		if err != nil {
			return err
		}
		if policy == PolicyStrictInsert {
			seen := make(map[entity.CustomerKey]bool, len(in))
			for _, r := range in {
				key := entity.CustomerKey{CustomerID: r.CustomerID, StoreID: r.StoreID}
				if existing[key] != nil || seen[key] {
					return domain.ErrDuplicateKey
				}
				seen[key] = true
			}
		}

		staged := make(map[entity.CustomerKey]*entity.Customer)
		touched := make(map[entity.CustomerKey]bool)
		var inserts, updates []*entity.Customer
		for _, r := range in {
			key := entity.CustomerKey{CustomerID: r.CustomerID, StoreID: r.StoreID}
			switch {
			case existing[key] != nil:
				row := existing[key]
				if !touched[key] {
					touched[key] = true
					updates = append(updates, row)
				}
				applyCustomerFields(row, r)
			case staged[key] != nil:
				applyCustomerFields(staged[key], r)
			default:
				row := &entity.Customer{CustomerID: r.CustomerID, StoreID: r.StoreID}
				applyCustomerFields(row, r)
				staged[key] = row
				inserts = append(inserts, row)
			}
		}

		for _, row := range inserts {
			if err := customers.Insert(row); err != nil {
				return err
			}
		}
		for _, row := range updates {
			if err := customers.Update(row); err != nil {
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
		Msg("lote de clientes reconciliado")
	return &res, nil
}

// applyCustomerFields copia solo los campos mutables; la identidad no se toca.
func applyCustomerFields(row *entity.Customer, r dto.CustomerRecord) {
	row.Name = r.Name
	row.Email = r.Email
	row.Phone = r.Phone
}
