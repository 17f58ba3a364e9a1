package batch

import (
	"context"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
	"github.com/jortega/smartretail-api/pkg/logger"
)

// SaleLineBatchUseCase reconcilia lotes de líneas sueltas por su clave de tres
// componentes (venta, producto, tienda). La integridad referencial contra la
// venta y el producto la garantiza la base de datos; una referencia rota
// aborta el lote completo con ErrForeignKey.
type SaleLineBatchUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewSaleLineBatchUseCase construye el caso de uso.
func NewSaleLineBatchUseCase(tx TxRunner, log *logger.Logger) *SaleLineBatchUseCase {
	return &SaleLineBatchUseCase{tx: tx, log: log}
}

// Run valida, resuelve claves y aplica el lote dentro de una transacción.
func (uc *SaleLineBatchUseCase) Run(ctx context.Context, policy Policy, in []dto.SaleLineRecord) (*dto.UpsertResult, error) {
	if err := ValidateBatch(in); err != nil {
		return nil, err
	}
	var res dto.UpsertResult
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, _ repository.CustomerRepository, sales repository.SaleRepository) error {
		existing, err := ResolveSaleLines(sales, in)
		if err != nil {
			return err
		}
		if policy == PolicyStrictInsert {
			seen := make(map[entity.SaleLineKey]bool, len(in))
			for _, r := range in {
				key := entity.SaleLineKey{SaleID: r.SaleID, ProductID: r.ProductID, StoreID: r.StoreID}
				if existing[key] != nil || seen[key] {
					return domain.ErrDuplicateKey
				}
				seen[key] = true
			}
		}

		staged := make(map[entity.SaleLineKey]*entity.SaleLine)
		touched := make(map[entity.SaleLineKey]bool)
		var inserts, updates []*entity.SaleLine
		for _, r := range in {
			key := entity.SaleLineKey{SaleID: r.SaleID, ProductID: r.ProductID, StoreID: r.StoreID}
			switch {
			case existing[key] != nil:
				row := existing[key]
				if !touched[key] {
					touched[key] = true
					updates = append(updates, row)
				}
				applySaleLineFields(row, r)
			case staged[key] != nil:
				applySaleLineFields(staged[key], r)
			default:
				row := &entity.SaleLine{SaleID: r.SaleID, ProductID: r.ProductID, StoreID: r.StoreID}
				applySaleLineFields(row, r)
				staged[key] = row
				inserts = append(inserts, row)
			}
		}

		for _, row := range inserts {
			if err := sales.InsertLine(row); err != nil {
				return err
			}
		}
		for _, row := range updates {
			if err := sales.UpdateLine(row); err != nil {
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
		Msg("lote de líneas de venta reconciliado")
	return &res, nil
}

// applySaleLineFields copia solo los campos mutables; la identidad no se toca.
func applySaleLineFields(row *entity.SaleLine, r dto.SaleLineRecord) {
	row.Quantity = r.Quantity
	row.Subtotal = r.Subtotal
}
