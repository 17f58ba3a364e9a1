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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository: cabecera y detalle juntos,
// como una factura con sus líneas (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// GetByKey obtiene una venta con sus líneas. Devuelve nil si no existe.
func (r *SaleRepo) GetByKey(key entity.SaleKey) (*entity.Sale, error) {
	query := `
		SELECT sale_id, store_id, date, total, customer_id
		FROM sales WHERE sale_id = $1 AND store_id = $2`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, key.SaleID, key.StoreID).Scan(
		&s.SaleID, &s.StoreID, &s.Date, &s.Total, &s.CustomerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.NormalizeDate()
	lines, err := r.ListLinesBySale(key)
	if err != nil {
		return nil, err
	}
	s.Lines = lines
	return &s, nil
}

// ListAll lista todas las ventas con sus líneas (dos consultas, agrupado en memoria).
func (r *SaleRepo) ListAll() ([]*entity.Sale, error) {
	sales, err := r.listHeaders(`
		SELECT sale_id, store_id, date, total, customer_id
		FROM sales ORDER BY store_id, sale_id`)
	if err != nil {
		return nil, err
	}
	lines, err := r.ListAllLines()
	if err != nil {
		return nil, err
	}
	byKey := make(map[entity.SaleKey]*entity.Sale, len(sales))
	for _, s := range sales {
		byKey[s.Key()] = s
	}
	for _, l := range lines {
		if s := byKey[entity.SaleKey{SaleID: l.SaleID, StoreID: l.StoreID}]; s != nil {
			s.Lines = append(s.Lines, l)
		}
	}
	return sales, nil
}

// ListByKeys consulta masiva del resolver, solo cabeceras: el motor no
// necesita las líneas existentes porque en una actualización las reemplaza en
// bloque.
func (r *SaleRepo) ListByKeys(saleIDs, storeIDs []string) ([]*entity.Sale, error) {
	if len(saleIDs) == 0 || len(storeIDs) == 0 {
		return nil, nil
	}
	return r.listHeaders(`
		SELECT sale_id, store_id, date, total, customer_id
		FROM sales WHERE sale_id = ANY($1) AND store_id = ANY($2)`, saleIDs, storeIDs)
}

// Insert persiste la cabecera de la venta; la clave la provee el llamador.
func (r *SaleRepo) Insert(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (sale_id, store_id, date, total, customer_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.SaleID, sale.StoreID, sale.Date, sale.Total, sale.CustomerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Update sobreescribe los campos mutables de la cabecera; la identidad nunca
// se reescribe y las líneas se manejan aparte.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET date = $3, total = $4, customer_id = $5
		WHERE sale_id = $1 AND store_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		sale.SaleID, sale.StoreID, sale.Date, sale.Total, sale.CustomerID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// ListLinesBySale obtiene todas las líneas de una venta.
func (r *SaleRepo) ListLinesBySale(key entity.SaleKey) ([]*entity.SaleLine, error) {
	query := `
		SELECT sale_id, product_id, store_id, quantity, subtotal
		FROM sale_lines WHERE sale_id = $1 AND store_id = $2 ORDER BY product_id`
	return r.listLines(query, key.SaleID, key.StoreID)
}

// DeleteLinesBySale borra el conjunto completo de líneas de una venta
// (reemplazo en bloque dentro de la transacción del lote).
func (r *SaleRepo) DeleteLinesBySale(key entity.SaleKey) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sale_lines WHERE sale_id = $1 AND store_id = $2`,
		key.SaleID, key.StoreID,
	)
	if err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	return nil
}

// InsertLine persiste una línea de venta.
func (r *SaleRepo) InsertLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (sale_id, product_id, store_id, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.SaleID, line.ProductID, line.StoreID, line.Quantity, line.Subtotal,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetLineByKey obtiene una línea por su clave de tres componentes. Devuelve nil si no existe.
func (r *SaleRepo) GetLineByKey(key entity.SaleLineKey) (*entity.SaleLine, error) {
	query := `
		SELECT sale_id, product_id, store_id, quantity, subtotal
		FROM sale_lines WHERE sale_id = $1 AND product_id = $2 AND store_id = $3`
	var l entity.SaleLine
	err := r.q.QueryRow(context.Background(), query, key.SaleID, key.ProductID, key.StoreID).Scan(
		&l.SaleID, &l.ProductID, &l.StoreID, &l.Quantity, &l.Subtotal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale line: %w", err)
	}
	return &l, nil
}

// ListAllLines lista todas las líneas de venta.
func (r *SaleRepo) ListAllLines() ([]*entity.SaleLine, error) {
	query := `
		SELECT sale_id, product_id, store_id, quantity, subtotal
		FROM sale_lines ORDER BY store_id, sale_id, product_id`
	return r.listLines(query)
}

// ListLinesByKeys consulta masiva del resolver para líneas sueltas
// (intersección de tres conjuntos de componentes; el llamador re-aplica la
// igualdad exacta de la clave).
func (r *SaleRepo) ListLinesByKeys(saleIDs, productIDs, storeIDs []string) ([]*entity.SaleLine, error) {
	if len(saleIDs) == 0 || len(productIDs) == 0 || len(storeIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT sale_id, product_id, store_id, quantity, subtotal
		FROM sale_lines
		WHERE sale_id = ANY($1) AND product_id = ANY($2) AND store_id = ANY($3)`
	return r.listLines(query, saleIDs, productIDs, storeIDs)
}

// UpdateLine sobreescribe los campos mutables de una línea.
func (r *SaleRepo) UpdateLine(line *entity.SaleLine) error {
	query := `
		UPDATE sale_lines SET quantity = $4, subtotal = $5
		WHERE sale_id = $1 AND product_id = $2 AND store_id = $3`
	_, err := r.q.Exec(context.Background(), query,
		line.SaleID, line.ProductID, line.StoreID, line.Quantity, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("update sale line: %w", err)
	}
	return nil
}

func (r *SaleRepo) listHeaders(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.SaleID, &s.StoreID, &s.Date, &s.Total, &s.CustomerID); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.NormalizeDate()
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SaleRepo) listLines(query string, args ...any) ([]*entity.SaleLine, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.SaleID, &l.ProductID, &l.StoreID, &l.Quantity, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
