package batch

import (
	"context"

	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory: se comportan como la base de datos real en lo que importa
// para el motor (devuelven copias, nunca los punteros almacenados, para que
// una mutación en memoria no persista sin pasar por Update).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[entity.ProductKey]entity.Product
	customers map[entity.CustomerKey]entity.Customer
	sales     map[entity.SaleKey]entity.Sale
	lines     map[entity.SaleLineKey]entity.SaleLine
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[entity.ProductKey]entity.Product),
		customers: make(map[entity.CustomerKey]entity.Customer),
		sales:     make(map[entity.SaleKey]entity.Sale),
		lines:     make(map[entity.SaleLineKey]entity.SaleLine),
	}
}

// fakeTxRunner ejecuta el callback directamente sobre el store en memoria.
type fakeTxRunner struct {
	s *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
) error) error {
	return fn(&fakeProductRepo{s: r.s}, &fakeCustomerRepo{s: r.s}, &fakeSaleRepo{s: r.s})
}

// ── productos ────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) GetByKey(key entity.ProductKey) (*entity.Product, error) {
	if p, ok := r.s.products[key]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

// ListByKeys imita la semántica = ANY($1) AND = ANY($2): intersección por
// componente, no igualdad de clave completa.
func (r *fakeProductRepo) ListByKeys(productIDs, storeIDs []string) ([]*entity.Product, error) {
	ids := toSet(productIDs)
	stores := toSet(storeIDs)
	var out []*entity.Product
	for _, p := range r.s.products {
		if ids[p.ProductID] && stores[p.StoreID] {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Insert(p *entity.Product) error {
	r.s.products[p.Key()] = *p
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.s.products[p.Key()] = *p
	return nil
}

// ── clientes ─────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct{ s *fakeStore }

func (r *fakeCustomerRepo) GetByKey(key entity.CustomerKey) (*entity.Customer, error) {
	if c, ok := r.s.customers[key]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) ListAll() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) ListByKeys(customerIDs, storeIDs []string) ([]*entity.Customer, error) {
	ids := toSet(customerIDs)
	stores := toSet(storeIDs)
	var out []*entity.Customer
	for _, c := range r.s.customers {
		if ids[c.CustomerID] && stores[c.StoreID] {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Insert(c *entity.Customer) error {
	r.s.customers[c.Key()] = *c
	return nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.s.customers[c.Key()] = *c
	return nil
}

// ── ventas y líneas ──────────────────────────────────────────────────────────

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) GetByKey(key entity.SaleKey) (*entity.Sale, error) {
	s, ok := r.s.sales[key]
	if !ok {
		return nil, nil
	}
	s.Lines, _ = r.ListLinesBySale(key)
	return &s, nil
}

func (r *fakeSaleRepo) ListAll() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for key, s := range r.s.sales {
		s := s
		s.Lines, _ = r.ListLinesBySale(key)
		out = append(out, &s)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByKeys(saleIDs, storeIDs []string) ([]*entity.Sale, error) {
	ids := toSet(saleIDs)
	stores := toSet(storeIDs)
	var out []*entity.Sale
	for _, s := range r.s.sales {
		if ids[s.SaleID] && stores[s.StoreID] {
			s := s
			s.Lines = nil
			out = append(out, &s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Insert(s *entity.Sale) error {
	header := *s
	header.Lines = nil
	r.s.sales[s.Key()] = header
	return nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	header := *s
	header.Lines = nil
	r.s.sales[s.Key()] = header
	return nil
}

func (r *fakeSaleRepo) ListLinesBySale(key entity.SaleKey) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range r.s.lines {
		if l.SaleID == key.SaleID && l.StoreID == key.StoreID {
			l := l
			out = append(out, &l)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) DeleteLinesBySale(key entity.SaleKey) error {
	for k, l := range r.s.lines {
		if l.SaleID == key.SaleID && l.StoreID == key.StoreID {
			delete(r.s.lines, k)
		}
	}
	return nil
}

func (r *fakeSaleRepo) InsertLine(l *entity.SaleLine) error {
	r.s.lines[l.Key()] = *l
	return nil
}

func (r *fakeSaleRepo) GetLineByKey(key entity.SaleLineKey) (*entity.SaleLine, error) {
	if l, ok := r.s.lines[key]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r *fakeSaleRepo) ListAllLines() ([]*entity.SaleLine, error) {
	out := make([]*entity.SaleLine, 0, len(r.s.lines))
	for _, l := range r.s.lines {
		l := l
		out = append(out, &l)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListLinesByKeys(saleIDs, productIDs, storeIDs []string) ([]*entity.SaleLine, error) {
	sales := toSet(saleIDs)
	products := toSet(productIDs)
	stores := toSet(storeIDs)
	var out []*entity.SaleLine
	for _, l := range r.s.lines {
		if sales[l.SaleID] && products[l.ProductID] && stores[l.StoreID] {
			l := l
			out = append(out, &l)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateLine(l *entity.SaleLine) error {
	r.s.lines[l.Key()] = *l
	return nil
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}
