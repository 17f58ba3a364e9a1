package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jortega/smartretail-api/internal/domain"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByKey obtiene un producto por su clave compuesta. Devuelve nil si no existe.
func (r *ProductRepo) GetByKey(key entity.ProductKey) (*entity.Product, error) {
	query := `
		SELECT product_id, store_id, name, unit_price, stock
		FROM products WHERE product_id = $1 AND store_id = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, key.ProductID, key.StoreID).Scan(
		&p.ProductID, &p.StoreID, &p.Name, &p.UnitPrice, &p.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListAll lista todos los productos.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `
		SELECT product_id, store_id, name, unit_price, stock
		FROM products ORDER BY store_id, product_id`
	return r.list(query)
}

// ListByKeys consulta masiva del resolver: trae las filas cuyos componentes de
// clave están en los conjuntos del lote. Puede devolver filas que coinciden
// solo en parte de la clave; el llamador re-aplica la igualdad exacta.
func (r *ProductRepo) ListByKeys(productIDs, storeIDs []string) ([]*entity.Product, error) {
	if len(productIDs) == 0 || len(storeIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT product_id, store_id, name, unit_price, stock
		FROM products WHERE product_id = ANY($1) AND store_id = ANY($2)`
	return r.list(query, productIDs, storeIDs)
}

// Insert persiste un producto nuevo; la clave la provee el llamador.
func (r *ProductRepo) Insert(product *entity.Product) error {
	query := `
		INSERT INTO products (product_id, store_id, name, unit_price, stock)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.ProductID, product.StoreID, product.Name, product.UnitPrice, product.Stock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update sobreescribe los campos mutables; la identidad nunca se reescribe.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, unit_price = $4, stock = $5
		WHERE product_id = $1 AND store_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.ProductID, product.StoreID, product.Name, product.UnitPrice, product.Stock,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ProductID, &p.StoreID, &p.Name, &p.UnitPrice, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
