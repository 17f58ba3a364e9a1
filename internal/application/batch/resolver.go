package batch

import (
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
)

// Resolver de claves: una consulta masiva por tipo de entidad en lugar de una
// por registro. La consulta trae candidatos cuyos componentes de clave
// intersectan los conjuntos del lote (puede incluir filas que coinciden solo
// en parte de la clave, p.ej. (P1,S2) cuando el lote trae (P1,S1) y (P2,S2)),
// así que aquí se re-aplica la igualdad exacta de la clave compuesta antes de
// construir el mapa.

// ResolveProducts devuelve las filas existentes indexadas por clave compuesta.
func ResolveProducts(repo repository.ProductRepository, batch []dto.ProductRecord) (map[entity.ProductKey]*entity.Product, error) {
	ids := make([]string, 0, len(batch))
	stores := make([]string, 0, len(batch))
	wanted := make(map[entity.ProductKey]bool, len(batch))
	for _, r := range batch {
		ids = append(ids, r.ProductID)
		stores = append(stores, r.StoreID)
		wanted[entity.ProductKey{ProductID: r.ProductID, StoreID: r.StoreID}] = true
	}
	rows, err := repo.ListByKeys(distinct(ids), distinct(stores))
	if err != nil {
		return nil, err
	}
	out := make(map[entity.ProductKey]*entity.Product, len(rows))
	for _, row := range rows {
		if wanted[row.Key()] {
			out[row.Key()] = row
		}
	}
	return out, nil
}

// ResolveCustomers devuelve las filas existentes indexadas por clave compuesta.
func ResolveCustomers(repo repository.CustomerRepository, batch []dto.CustomerRecord) (map[entity.CustomerKey]*entity.Customer, error) {
	ids := make([]string, 0, len(batch))
	stores := make([]string, 0, len(batch))
	wanted := make(map[entity.CustomerKey]bool, len(batch))
	for _, r := range batch {
		ids = append(ids, r.CustomerID)
		stores = append(stores, r.StoreID)
		wanted[entity.CustomerKey{CustomerID: r.CustomerID, StoreID: r.StoreID}] = true
	}
	rows, err := repo.ListByKeys(distinct(ids), distinct(stores))
	if err != nil {
		return nil, err
	}
	out := make(map[entity.CustomerKey]*entity.Customer, len(rows))
	for _, row := range rows {
		if wanted[row.Key()] {
			out[row.Key()] = row
		}
	}
	return out, nil
}

// ResolveSales devuelve las cabeceras existentes indexadas por clave compuesta.
func ResolveSales(repo repository.SaleRepository, batch []dto.SaleRecord) (map[entity.SaleKey]*entity.Sale, error) {
	ids := make([]string, 0, len(batch))
	stores := make([]string, 0, len(batch))
	wanted := make(map[entity.SaleKey]bool, len(batch))
	for _, r := range batch {
		ids = append(ids, r.SaleID)
		stores = append(stores, r.StoreID)
		wanted[entity.SaleKey{SaleID: r.SaleID, StoreID: r.StoreID}] = true
	}
	rows, err := repo.ListByKeys(distinct(ids), distinct(stores))
	if err != nil {
		return nil, err
	}
	out := make(map[entity.SaleKey]*entity.Sale, len(rows))
	for _, row := range rows {
		if wanted[row.Key()] {
			out[row.Key()] = row
		}
	}
	return out, nil
}

// ResolveSaleLines devuelve las líneas existentes indexadas por clave compuesta
// (clave de tres componentes: venta, producto, tienda).
func ResolveSaleLines(repo repository.SaleRepository, batch []dto.SaleLineRecord) (map[entity.SaleLineKey]*entity.SaleLine, error) {
	saleIDs := make([]string, 0, len(batch))
	productIDs := make([]string, 0, len(batch))
	stores := make([]string, 0, len(batch))
	wanted := make(map[entity.SaleLineKey]bool, len(batch))
	for _, r := range batch {
		saleIDs = append(saleIDs, r.SaleID)
		productIDs = append(productIDs, r.ProductID)
		stores = append(stores, r.StoreID)
		wanted[entity.SaleLineKey{SaleID: r.SaleID, ProductID: r.ProductID, StoreID: r.StoreID}] = true
	}
	rows, err := repo.ListLinesByKeys(distinct(saleIDs), distinct(productIDs), distinct(stores))
	if err != nil {
		return nil, err
	}
	out := make(map[entity.SaleLineKey]*entity.SaleLine, len(rows))
	for _, row := range rows {
		if wanted[row.Key()] {
			out[row.Key()] = row
		}
	}
	return out, nil
}

// distinct conserva la primera aparición de cada valor, en orden de llegada.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
