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

	_ "github.com/jhoicas/rider-tracker/docs" // registra swagger.json en swag
	"github.com/jhoicas/rider-tracker/internal/application/auth"
	"github.com/jhoicas/rider-tracker/internal/application/customer"
	appdelivery "github.com/jhoicas/rider-tracker/internal/application/delivery"
	"github.com/jhoicas/rider-tracker/internal/application/tracking"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/rider-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/rider-tracker/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/rider-tracker/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/rider-tracker/internal/interfaces/http"
	"github.com/jhoicas/rider-tracker/pkg/config"
	"github.com/jhoicas/rider-tracker/pkg/geo"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

// storage repositorios elegidos según STORAGE_DRIVER.
type storage struct {
	users      repository.UserRepository
	customers  repository.CustomerRepository
	deliveries repository.DeliveryRepository
	ping       httpRouter.HealthCheck
	close      func()
}

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
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer store.close()

	// Ubicaciones en vivo: Redis si hay REDIS_ADDR; si no, memoria del proceso.
	var locations repository.LocationStore
	if cfg.Redis.Addr != "" {
		rs, err := infraredis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer func() { _ = rs.Close() }()
		locations = rs
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: ubicaciones en memoria")
		locations = memory.NewLocationStore()
	}

	fallback := geo.Point{Lat: cfg.Geo.FallbackLat, Lng: cfg.Geo.FallbackLng}

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := customer.NewCustomerUseCase(store.customers, fallback, log)
	deliveryUC := appdelivery.NewDeliveryUseCase(store.deliveries, store.customers, appdelivery.Config{
		AddressPriority: cfg.Delivery.AddressPriority,
		Location:        cfg.App.Location(),
	}, log)

	// PDF: hoja de remesa del día
	remittancePDFUC := appdelivery.NewRemittancePDFUseCase(deliveryUC, store.users, infrapdf.NewMarotoPDFGenerator())

	sim := tracking.NewSimulator(deliveryUC, locations, tracking.SimulatorConfig{
		Step:     cfg.Simulation.StepDegrees,
		Interval: cfg.Simulation.Interval,
		Start:    fallback,
	}, log)
	trackingUC := tracking.NewTrackingUseCase(deliveryUC, locations, sim, tracking.MapDefaults{
		Center:   geo.Point{Lat: cfg.Geo.CenterLat, Lng: cfg.Geo.CenterLng},
		Fallback: fallback,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rider Tracker API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		DeliveryUC:    deliveryUC,
		RemittancePDF: remittancePDFUC,
		TrackingUC:    trackingUC,
		JWTSecret:     cfg.JWT.Secret,
		JWTExpMinutes: cfg.JWT.Expiration,
		ExposeErrors:  !cfg.App.IsProduction(),
		ServiceName:   cfg.App.Name,
		HealthChecks: map[string]httpRouter.HealthCheck{
			"storage":   store.ping,
			"locations": locations.Ping,
		},
		Log: log,
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

	// Primero los riders simulados: dejan de escribir ubicaciones antes de cerrar los stores.
	if err := sim.StopAll(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("detener simulaciones")
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage abre PostgreSQL (con migraciones si DB_AUTO_MIGRATE) o el almacén en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.App.Storage == "memory" {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &storage{
			users:      memory.NewUserRepository(s),
			customers:  memory.NewCustomerRepository(s),
			deliveries: memory.NewDeliveryRepository(s),
			ping:       func(context.Context) error { return nil },
			close:      func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &storage{
		users:      postgres.NewUserRepository(pool),
		customers:  postgres.NewCustomerRepository(pool),
		deliveries: postgres.NewDeliveryRepository(pool),
		ping:       pool.Ping,
		close:      pool.Close,
	}, nil
}
