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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByKey obtiene un cliente por su clave compuesta. Devuelve nil si no existe.
func (r *CustomerRepo) GetByKey(key entity.CustomerKey) (*entity.Customer, error) {
	query := `
		SELECT customer_id, store_id, name, COALESCE(email, ''), COALESCE(phone, '')
		FROM customers WHERE customer_id = $1 AND store_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, key.CustomerID, key.StoreID).Scan(
		&c.CustomerID, &c.StoreID, &c.Name, &c.Email, &c.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListAll lista todos los clientes.
func (r *CustomerRepo) ListAll() ([]*entity.Customer, error) {
	query := `
		SELECT customer_id, store_id, name, COALESCE(email, ''), COALESCE(phone, '')
		FROM customers ORDER BY store_id, customer_id`
	return r.list(query)
}

// ListByKeys consulta masiva del resolver (ver ProductRepo.ListByKeys).
func (r *CustomerRepo) ListByKeys(customerIDs, storeIDs []string) ([]*entity.Customer, error) {
	if len(customerIDs) == 0 || len(storeIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT customer_id, store_id, name, COALESCE(email, ''), COALESCE(phone, '')
		FROM customers WHERE customer_id = ANY($1) AND store_id = ANY($2)`
	return r.list(query, customerIDs, storeIDs)
}

// Insert persiste un cliente nuevo; la clave la provee el llamador.
func (r *CustomerRepo) Insert(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (customer_id, store_id, name, email, phone)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		customer.CustomerID, customer.StoreID, customer.Name,
		nullIfEmpty(customer.Email), nullIfEmpty(customer.Phone),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update sobreescribe los campos mutables; la identidad nunca se reescribe.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, email = $4, phone = $5
		WHERE customer_id = $1 AND store_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		customer.CustomerID, customer.StoreID, customer.Name,
		nullIfEmpty(customer.Email), nullIfEmpty(customer.Phone),
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) list(query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.CustomerID, &c.StoreID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
