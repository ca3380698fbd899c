package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ninecards/storefront/internal/app"
	"github.com/ninecards/storefront/internal/config"
	"github.com/ninecards/storefront/internal/entities"
	"github.com/ninecards/storefront/internal/events"
	"github.com/ninecards/storefront/internal/handler"
	"github.com/ninecards/storefront/internal/postgres"
	"github.com/ninecards/storefront/internal/repo"
	"github.com/ninecards/storefront/internal/service"
	"github.com/ninecards/storefront/pkg/cache"
	"github.com/ninecards/storefront/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to run migrations", postgres.Migrate(db, conf.Postgres.DBName))

	catalogRepo := repo.NewCatalogRepo(db)
	cartRepo := repo.NewCartRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	cartService := service.NewCartService(logger, catalogRepo, cartRepo)
	checkoutService := service.NewCheckoutService(logger, txManager, cartRepo, orderRepo, publisher, conf.Checkout)
	orderService := service.NewOrderService(logger, orderRepo, orderCache)

	httpHandler := handler.NewHTTPHandler(
		logger, catalogRepo, cartService, checkoutService, orderService,
		conf.Catalog, conf.Checkout,
	)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
