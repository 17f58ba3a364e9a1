package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain/entity"
)

// La consulta masiva por intersección de conjuntos puede traer filas que
// coinciden solo en parte de la clave: con el lote {(P1,S1),(P2,S2)} la fila
// (P1,S2) entra en ambos conjuntos pero no fue pedida. El resolver debe
// re-aplicar la igualdad exacta y dejarla fuera del mapa.
func TestResolveProducts_FiltraCandidatosParciales(t *testing.T) {
	store := newFakeStore()
	repo := &fakeProductRepo{s: store}
	store.products[entity.ProductKey{ProductID: "P1", StoreID: "S1"}] = entity.Product{ProductID: "P1", StoreID: "S1", Name: "en lote"}
	store.products[entity.ProductKey{ProductID: "P1", StoreID: "S2"}] = entity.Product{ProductID: "P1", StoreID: "S2", Name: "candidato parcial"}

	batch := []dto.ProductRecord{
		{ProductID: "P1", StoreID: "S1"},
		{ProductID: "P2", StoreID: "S2"},
	}
	existing, err := ResolveProducts(repo, batch)
	require.NoError(t, err)

	assert.Len(t, existing, 1)
	assert.NotNil(t, existing[entity.ProductKey{ProductID: "P1", StoreID: "S1"}])
	assert.Nil(t, existing[entity.ProductKey{ProductID: "P1", StoreID: "S2"}],
		"una fila que coincide solo en parte de la clave no debe entrar al mapa")
}

// Claves de tres componentes: misma exigencia de igualdad exacta.
func TestResolveSaleLines_IgualdadExacta(t *testing.T) {
	store := newFakeStore()
	repo := &fakeSaleRepo{s: store}
	store.lines[entity.SaleLineKey{SaleID: "V1", ProductID: "P1", StoreID: "S1"}] = entity.SaleLine{SaleID: "V1", ProductID: "P1", StoreID: "S1", Quantity: 2}
	store.lines[entity.SaleLineKey{SaleID: "V1", ProductID: "P2", StoreID: "S2"}] = entity.SaleLine{SaleID: "V1", ProductID: "P2", StoreID: "S2", Quantity: 5}

	batch := []dto.SaleLineRecord{
		{SaleID: "V1", ProductID: "P1", StoreID: "S1"},
		{SaleID: "V2", ProductID: "P2", StoreID: "S2"},
	}
	existing, err := ResolveSaleLines(repo, batch)
	require.NoError(t, err)

	assert.Len(t, existing, 1)
	assert.NotNil(t, existing[entity.SaleLineKey{SaleID: "V1", ProductID: "P1", StoreID: "S1"}])
}

// distinct conserva el orden de llegada y elimina repetidos.
func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"S1", "S2"}, distinct([]string{"S1", "S2", "S1", "S1"}))
	assert.Empty(t, distinct(nil))
}
