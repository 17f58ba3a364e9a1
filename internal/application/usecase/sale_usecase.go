package usecase

import (
	"github.com/jortega/smartretail-api/internal/application/dto"
	"github.com/jortega/smartretail-api/internal/domain/entity"
	"github.com/jortega/smartretail-api/internal/domain/repository"
)

// SaleUseCase lecturas de ventas: listado con líneas, proyección resumida sin
// la colección propiedad, búsqueda por clave compuesta y líneas sueltas.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// List devuelve todas las ventas con sus líneas.
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	rows, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// ListSummaries devuelve todas las ventas en proyección reducida (sin líneas).
func (uc *SaleUseCase) ListSummaries() ([]dto.SaleSummaryResponse, error) {
	rows, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.SaleSummaryResponse{
			SaleID:     s.SaleID,
			StoreID:    s.StoreID,
			Date:       s.Date,
			Total:      s.Total,
			CustomerID: s.CustomerID,
			LineCount:  len(s.Lines),
		})
	}
	return out, nil
}

// GetByKey devuelve una venta con sus líneas, o nil si no existe.
func (uc *SaleUseCase) GetByKey(saleID, storeID string) (*dto.SaleResponse, error) {
	s, err := uc.repo.GetByKey(entity.SaleKey{SaleID: saleID, StoreID: storeID})
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	resp := toSaleResponse(s)
	return &resp, nil
}

// ListLines devuelve todas las líneas de venta.
func (uc *SaleUseCase) ListLines() ([]dto.SaleLineResponse, error) {
	rows, err := uc.repo.ListAllLines()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleLineResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, toSaleLineResponse(l))
	}
	return out, nil
}

// GetLineByKey devuelve una línea por su clave de tres componentes, o nil.
func (uc *SaleUseCase) GetLineByKey(saleID, productID, storeID string) (*dto.SaleLineResponse, error) {
	l, err := uc.repo.GetLineByKey(entity.SaleLineKey{SaleID: saleID, ProductID: productID, StoreID: storeID})
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	resp := toSaleLineResponse(l)
	return &resp, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, toSaleLineResponse(l))
	}
	return dto.SaleResponse{
		SaleID:     s.SaleID,
		StoreID:    s.StoreID,
		Date:       s.Date,
		Total:      s.Total,
		CustomerID: s.CustomerID,
		Lines:      lines,
	}
}

func toSaleLineResponse(l *entity.SaleLine) dto.SaleLineResponse {
	return dto.SaleLineResponse{
		SaleID:    l.SaleID,
		ProductID: l.ProductID,
		StoreID:   l.StoreID,
		Quantity:  l.Quantity,
		Subtotal:  l.Subtotal,
	}
}
