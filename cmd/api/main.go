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
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tunezone-api/internal/application/auth"
	appcart "github.com/jhoicas/tunezone-api/internal/application/cart"
	"github.com/jhoicas/tunezone-api/internal/application/catalog"
	"github.com/jhoicas/tunezone-api/internal/application/checkout"
	"github.com/jhoicas/tunezone-api/internal/application/dashboard"
	"github.com/jhoicas/tunezone-api/internal/application/notify"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tunezone-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tunezone-api/internal/interfaces/http"
	"github.com/jhoicas/tunezone-api/pkg/clock"
	"github.com/jhoicas/tunezone-api/pkg/config"
	"github.com/jhoicas/tunezone-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog", cfg.Catalog.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()
	clk := clock.Real()

	// Catálogo: datos mock en memoria o tabla products en PostgreSQL
	var productRepo repository.ProductRepository
	if cfg.Catalog.Source == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
	} else {
		repo, err := memory.NewProductRepository(memory.SeedProducts())
		if err != nil {
			log.Fatal().Err(err).Msg("catálogo mock inválido")
		}
		productRepo = repo
	}

	// "Local storage" de la sesión: archivo JSON o solo memoria
	var store repository.KeyValueStore = storage.NewMemoryStore()
	if cfg.Storage.Path != "" {
		fs, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir storage de sesión")
		}
		store = fs
	}

	accountRepo, err := memory.NewAccountRepository(memory.SeedCredentials(), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("credenciales mock")
	}
	cartRepo := memory.NewCartRepository()
	orderRepo := memory.NewOrderRepository()
	backofficeRepo := memory.NewBackofficeRepository(memory.SeedBackoffice(clk.Now()))

	notifications := notify.NewCenter(clk, cfg.Notify.DefaultDuration)
	catalogUC := catalog.NewCatalogUseCase(productRepo)
	cartUC := appcart.NewCartUseCase(cartRepo, productRepo)

	// Pago QR simulado + recibo PDF
	checkoutUC := checkout.NewCheckoutUseCase(checkout.Deps{
		Orders:     orderRepo,
		Backoffice: backofficeRepo,
		Cart:       cartUC,
		Notifier:   notifications,
		QR:         qrcode.NewQRCodeService(cfg.Payment.QRSize, cfg.Payment.QRRecovery),
		Receipts:   infrapdf.NewMarotoReceiptGenerator(""),
		Clock:      clk,
		Log:        log,
	}, checkout.Config{
		Countdown:   cfg.Payment.Countdown,
		SuccessRate: cfg.Payment.SuccessRate,
	})
	// logout cancela los pagos pendientes y limpia las notificaciones
	authUC := auth.NewAuthUseCase(accountRepo, store, cartRepo, clk, auth.Config{
		Secret:    cfg.JWT.Secret,
		Issuer:    cfg.JWT.Issuer,
		DealerTTL: cfg.Session.DealerTTL,
		AdminTTL:  cfg.Session.AdminTTL,
		GuestTTL:  cfg.Session.GuestTTL,
	}, log, checkoutUC, notifications)
	dashboardUC := dashboard.NewDashboardUseCase(productRepo, backofficeRepo, clk, cfg.Backoffice.LowStockThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "TuneZone Wholesale API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CatalogUC:     catalogUC,
		CartUC:        cartUC,
		Notifications: notifications,
		CheckoutUC:    checkoutUC,
		DashboardUC:   dashboardUC,
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
	checkoutUC.Stop()

	log.Info().Msg("aplicación detenida")
}
