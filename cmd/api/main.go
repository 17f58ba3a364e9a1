package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jortega/smartretail-api/internal/application/auth"
	"github.com/jortega/smartretail-api/internal/application/batch"
	"github.com/jortega/smartretail-api/internal/application/usecase"
	"github.com/jortega/smartretail-api/internal/infrastructure/postgres"
	httpRouter "github.com/jortega/smartretail-api/internal/interfaces/http"
	"github.com/jortega/smartretail-api/pkg/config"
	"github.com/jortega/smartretail-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo)

	productBatch := batch.NewProductBatchUseCase(txRunner, log)
	customerBatch := batch.NewCustomerBatchUseCase(txRunner, log)
	saleBatch := batch.NewSaleBatchUseCase(txRunner, log)
	saleLineBatch := batch.NewSaleLineBatchUseCase(txRunner, log)

	authUC := auth.NewAuthUseCase(
		auth.Credentials{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			Audience:   cfg.JWT.Audience,
			ExpMinutes: cfg.JWT.Expiration,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SmartRetail API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		SaleUC:        saleUC,
		ProductBatch:  productBatch,
		CustomerBatch: customerBatch,
		SaleBatch:     saleBatch,
		SaleLineBatch: saleLineBatch,
		AuthUC:        authUC,
		DB:            pool,
		JWT: httpRouter.JWTSettings{
			Secret:   cfg.JWT.Secret,
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
