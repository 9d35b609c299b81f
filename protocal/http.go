package protocal

import (
	"context"
	"os"
	"os/signal"
	"time"

	"storefront/configs"
	_ "storefront/docs"
	httpAdapter "storefront/internal/adapters/input/http"
	"storefront/internal/adapters/output/backend"
	"storefront/internal/adapters/output/memory"
	"storefront/internal/adapters/output/postgres"
	"storefront/internal/application"
	"storefront/internal/ports/output"
	"storefront/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	gormio "gorm.io/gorm"
)

// ServeHTTP func
func ServeHTTP(env string) error {
	app := fiber.New()
	configs.InitViper("./configs", env)
	cfg := configs.GetViper()
	logrus.Info(cfg.App.Env)
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Output adapter (persistent key-value store)
	store, db, err := newPersistentStore(cfg.Storage, cfg.Postgres)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			logrus.Println("Gracefull shut down ...")
			if db != nil {
				gorm.DisconnectPostgres(db)
			}
			err := app.Shutdown()
			if err != nil {
				logrus.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapter (storefront backend API)
	client, err := backend.NewClientAdapter(cfg.Backend)
	if err != nil {
		return err
	}
	// Output adapter (live visitor bundles)
	visitors := memory.NewMemoryVisitorStore(minutes(cfg.Visitor.IdleTimeout, 30))
	// Application services (use cases)
	registry := application.NewVisitorRegistry(visitors, store, client, namespace(cfg.Storage), visitors.GetTimeout())
	catalog := application.NewCatalogService(client, seconds(cfg.Backend.CatalogTimeout, 10))
	dashboard := application.NewDashboardService(client, cfg.Dashboard.LatestOrders)
	account := application.NewAccountService(client)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(httpAdapter.Options{
		Visitors:   registry,
		Catalog:    catalog,
		Dashboard:  dashboard,
		Account:    account,
		DB:         db,
		CookieName: cfg.Visitor.CookieName,
	})

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Mount(app)

	logrus.Println("Listerning on port: ", cfg.App.Port)
	return app.Listen(":" + cfg.App.Port)
}

// newPersistentStore picks the storage driver; db is nil for the memory driver
func newPersistentStore(storage configs.Storage, pg configs.Postgres) (output.PersistentStore, *gormio.DB, error) {
	switch storage.Driver {
	case "postgres":
		dbConGorm, err := gorm.ConnectToPostgreSQL(pg)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgres.NewKVStore(dbConGorm.Postgres, namespace(storage))
		if err != nil {
			return nil, nil, err
		}
		return store, dbConGorm.Postgres, nil
	default:
		logrus.Infoln("Using in-memory storage; carts and sessions are lost on restart")
		return memory.NewKVStore(), nil, nil
	}
}

func namespace(storage configs.Storage) string {
	if storage.Namespace == "" {
		return "storefront"
	}
	return storage.Namespace
}

func minutes(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Minute
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

// Ping checks the configured storage driver without serving
func Ping(ctx context.Context, env string) error {
	configs.InitViper("./configs", env)
	cfg := configs.GetViper()

	store, db, err := newPersistentStore(cfg.Storage, cfg.Postgres)
	if err != nil {
		return err
	}
	if db != nil {
		defer gorm.DisconnectPostgres(db)
	}

	const probe = "healthcheck"
	if err := store.Set(ctx, probe, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return store.Delete(ctx, probe)
}
