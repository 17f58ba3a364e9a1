package batch

import (
	"context"

	"github.com/jortega/smartretail-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción.
// El lote completo se confirma o se revierte: ningún registro queda a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
	) error) error
}

// Policy política de reconciliación del motor, explícita por operación.
type Policy int

const (
	// PolicyUpsert inserta si la clave no existe y sobreescribe los campos
	// mutables si existe (política primaria).
	PolicyUpsert Policy = iota
	// PolicyStrictInsert rechaza el lote entero con ErrDuplicateKey si alguna
	// clave ya existe o se repite dentro del mismo lote.
	PolicyStrictInsert
)
