package batch

import "github.com/jortega/smartretail-api/internal/domain"

// StoreScoped es un registro de lote con identificador de tienda.
type StoreScoped interface {
	Store() string
}

// ValidateBatch aplica el gate estructural previo a cualquier acceso a base de
// datos: lote no vacío y store_id presente en todos los registros. La
// validación es todo o nada: un registro inválido rechaza el lote completo.
func ValidateBatch[T StoreScoped](batch []T) error {
	if len(batch) == 0 {
		return domain.ErrEmptyBatch
	}
	for _, r := range batch {
		if r.Store() == "" {
			return domain.ErrMissingStore
		}
	}
	return nil
}
