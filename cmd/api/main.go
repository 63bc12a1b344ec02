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

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/application/order"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/mailer"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/internal/infrastructure/redisdb"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
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

	rdb, err := redisdb.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()
	blocklist := redisdb.NewBlocklist(rdb)

	// Despachador de correo: con SMTP configurado envía en segundo plano;
	// sin SMTP las notificaciones se descartan.
	var notifier notify.Notifier = notify.Discard{}
	var dispatcher *mailer.Dispatcher
	if cfg.Mail.Enabled() {
		dispatcher = mailer.NewDispatcher(mailer.NewGomailSender(cfg.Mail), 128, log)
		notifier = dispatcher
	} else {
		log.Warn().Msg("SMTP no configurado, notificaciones por correo deshabilitadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	incomingRepo := postgres.NewIncomingOrderRepository(pool)
	outgoingRepo := postgres.NewOutgoingOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := pkgjwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL(),
		RefreshTTL: cfg.JWT.RefreshTTL(),
	}

	authUC := auth.NewAuthUseCase(txRunner, userRepo, blocklist, notifier, jwtCfg, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, stockRepo, categoryRepo, log)
	stockUC := usecase.NewStockUseCase(txRunner, stockRepo, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, userRepo, notifier, log)
	customerUC := usecase.NewCustomerUseCase(customerRepo, userRepo, notifier, log)
	incomingUC := order.NewIncomingOrderUseCase(txRunner, productRepo, supplierRepo, incomingRepo, notifier, log)
	outgoingUC := order.NewOutgoingOrderUseCase(
		txRunner, productRepo, customerRepo, outgoingRepo, stockRepo, userRepo,
		notifier, cfg.Inventory.LowStockThreshold, log,
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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		StockUC:    stockUC,
		SupplierUC: supplierUC,
		CustomerUC: customerUC,
		IncomingUC: incomingUC,
		OutgoingUC: outgoingUC,
		JWTSecret:  cfg.JWT.Secret,
		Blocklist:  blocklist,
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
	if dispatcher != nil {
		dispatcher.Close()
	}

	log.Info().Msg("aplicación detenida")
}
