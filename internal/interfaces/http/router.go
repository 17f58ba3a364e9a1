package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/smartretail-api/internal/application/auth"
	"github.com/jortega/smartretail-api/internal/application/batch"
	"github.com/jortega/smartretail-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *usecase.CustomerUseCase
	SaleUC        *usecase.SaleUseCase
	ProductBatch  *batch.ProductBatchUseCase
	CustomerBatch *batch.CustomerBatchUseCase
	SaleBatch     *batch.SaleBatchUseCase
	SaleLineBatch *batch.SaleLineBatchUseCase
	AuthUC        *auth.AuthUseCase
	DB            Pinger
	JWT           JWTSettings
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público, para probes)
	healthHandler := NewHealthHandler(deps.DB)
	app.Get("/healthz", healthHandler.Check)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ProductBatch)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Upsert)
	products.Post("/strict", productHandler.StrictInsert)
	products.Get("/:id/:storeId", productHandler.GetByKey)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.CustomerBatch)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Upsert)
	customers.Post("/strict", customerHandler.StrictInsert)
	customers.Get("/:id/:storeId", customerHandler.GetByKey)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.SaleBatch)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Upsert)
	sales.Post("/strict", saleHandler.StrictInsert)
	sales.Get("/:id/:storeId", saleHandler.GetByKey)

	// Sale lines (protegido)
	saleLines := protected.Group("/sale-lines")
	saleLineHandler := NewSaleLineHandler(deps.SaleUC, deps.SaleLineBatch)
	saleLines.Get("/", saleLineHandler.List)
	saleLines.Post("/", saleLineHandler.Upsert)
	saleLines.Post("/strict", saleLineHandler.StrictInsert)
	saleLines.Get("/:saleId/:productId/:storeId", saleLineHandler.GetByKey)
}
