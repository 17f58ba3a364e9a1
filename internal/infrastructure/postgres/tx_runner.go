package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jortega/smartretail-api/internal/application/batch"
	"github.com/jortega/smartretail-api/internal/domain/repository"
)

// Ensure TxRunner implements batch.TxRunner.
var _ batch.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El motor de reconciliación depende de esto para que el
// lote completo sea atómico.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	customerRepo := NewCustomerRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(productRepo, customerRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
