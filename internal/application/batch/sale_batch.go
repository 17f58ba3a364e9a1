package batch

import (
	"context"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
	"github.com/jortega/smartretail-api/pkg/logger"
)

// SaleBatchUseCase reconcilia lotes de ventas con sus líneas. Caso especial
// del motor: cuando una venta se clasifica como UPDATE, sus líneas almacenadas
// se borran y se reemplazan en bloque por las líneas del registro entrante,
// nunca se mezclan una a una. Todo ocurre en una sola transacción: un lector
// jamás observa una venta con solo parte de sus líneas nuevas.
type SaleBatchUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewSaleBatchUseCase construye el caso de uso.
func NewSaleBatchUseCase(tx TxRunner, log *logger.Logger) *SaleBatchUseCase {
	return &SaleBatchUseCase{tx: tx, log: log}
}

// Run valida, resuelve claves y aplica el lote dentro de una transacción.
func (uc *SaleBatchUseCase) Run(ctx context.Context, policy Policy, in []dto.SaleRecord) (*dto.UpsertResult, error) {
	if err := ValidateBatch(in); err != nil {
		return nil, err
	}
	var res dto.UpsertResult
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, _ repository.CustomerRepository, sales repository.SaleRepository) error {
		existing, err := ResolveSales(sales, in)
		if err != nil {
			return err
		}
		if policy == PolicyStrictInsert {
			seen := make(map[entity.SaleKey]bool, len(in))
			for _, r := range in {
				key := entity.SaleKey{SaleID: r.SaleID, StoreID: r.StoreID}
				if existing[key] != nil || seen[key] {
					return domain.ErrDuplicateKey
				}
				seen[key] = true
			}
		}

		staged := make(map[entity.SaleKey]*entity.Sale)
		touched := make(map[entity.SaleKey]bool)
		var inserts, updates []*entity.Sale
		for _, r := range in {
			key := entity.SaleKey{SaleID: r.SaleID, StoreID: r.StoreID}
			switch {
			case existing[key] != nil:
				row := existing[key]
				if !touched[key] {
					touched[key] = true
					updates = append(updates, row)
				}
				applySaleFields(row, r)
			case staged[key] != nil:
				applySaleFields(staged[key], r)
			default:
				row := &entity.Sale{SaleID: r.SaleID, StoreID: r.StoreID}
				applySaleFields(row, r)
				staged[key] = row
				inserts = append(inserts, row)
			}
		}

		for _, row := range inserts {
			if err := sales.Insert(row); err != nil {
				return err
			}
			for _, line := range row.Lines {
				if err := sales.InsertLine(line); err != nil {
					return err
				}
			}
		}
		for _, row := range updates {
			if err := sales.Update(row); err != nil {
				return err
			}
			if err := sales.DeleteLinesBySale(row.Key()); err != nil {
				return err
			}
			for _, line := range row.Lines {
				if err := sales.InsertLine(line); err != nil {
					return err
				}
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
		Msg("lote de ventas reconciliado")
	return &res, nil
}

// applySaleFields copia los campos mutables de la cabecera y construye el
// conjunto de líneas entrante como estado autoritativo. La fecha se normaliza
// a UTC y las claves de cada línea se heredan de la venta padre: cualquier
// referencia inversa (línea→venta, venta→cliente como objeto) que venga del
// exterior se descarta aquí para no confundir filas ya persistidas con filas
// nuevas a insertar.
func applySaleFields(row *entity.Sale, r dto.SaleRecord) {
	row.Date = r.Date.UTC()
	row.Total = r.Total
	row.CustomerID = r.CustomerID
	row.Lines = buildSaleLines(row, r.Lines)
}

// buildSaleLines materializa las líneas entrantes con la clave del padre.
// Ante productos repetidos dentro de la misma venta, la última línea gana.
func buildSaleLines(sale *entity.Sale, in []dto.SaleLineRecord) []*entity.SaleLine {
	byProduct := make(map[string]*entity.SaleLine, len(in))
	out := make([]*entity.SaleLine, 0, len(in))
	for _, l := range in {
		if row := byProduct[l.ProductID]; row != nil {
			row.Quantity = l.Quantity
			row.Subtotal = l.Subtotal
			continue
		}
		row := &entity.SaleLine{
			SaleID:    sale.SaleID,
			ProductID: l.ProductID,
			StoreID:   sale.StoreID,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal,
		}
		byProduct[l.ProductID] = row
		out = append(out, row)
	}
	return out
}
