package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain"
)

// Lote nil o vacío → ErrEmptyBatch, antes de cualquier acceso a datos.
func TestValidateBatch_LoteVacio(t *testing.T) {
	assert.ErrorIs(t, ValidateBatch[dto.ProductRecord](nil), domain.ErrEmptyBatch)
	assert.ErrorIs(t, ValidateBatch([]dto.ProductRecord{}), domain.ErrEmptyBatch)
}

// Un solo registro sin store_id rechaza el lote completo, aunque el resto sea válido.
func TestValidateBatch_StoreFaltante(t *testing.T) {
	batch := []dto.ProductRecord{
		{ProductID: "P1", StoreID: "S1", Name: "Widget"},
		{ProductID: "P2", Name: "Gadget"}, // sin store_id
	}
	assert.ErrorIs(t, ValidateBatch(batch), domain.ErrMissingStore)
}

// Lote bien formado pasa el gate.
func TestValidateBatch_LoteValido(t *testing.T) {
	batch := []dto.CustomerRecord{
		{CustomerID: "C1", StoreID: "S1", Name: "Ana"},
		{CustomerID: "C2", StoreID: "S2", Name: "Luis"},
	}
	assert.NoError(t, ValidateBatch(batch))
}
