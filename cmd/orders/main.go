package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/orderflow/docs/orders"
	"github.com/SergeyBogomolovv/orderflow/internal/app"
	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/SergeyBogomolovv/orderflow/internal/catalog"
	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/SergeyBogomolovv/orderflow/internal/handler"
	"github.com/SergeyBogomolovv/orderflow/internal/postgres"
	"github.com/SergeyBogomolovv/orderflow/internal/publisher"
	"github.com/SergeyBogomolovv/orderflow/internal/repo"
	"github.com/SergeyBogomolovv/orderflow/internal/service"
	"github.com/SergeyBogomolovv/orderflow/pkg/cache"
	"github.com/SergeyBogomolovv/orderflow/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Orders API
// @version         1.0
// @description     Создание заказов и управление их жизненным циклом
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.ValidateOrders())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db, postgres.OrdersSchema))

	tokens, err := auth.NewTokenService(conf.Auth.SymmetricKey)
	panicIfErr("failed to init token service", err)

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache("orders", conf.Cache.Capacity, conf.Cache.TTL)
	catalogClient := catalog.NewClient(logger, conf.Catalog)

	eventPublisher := publisher.NewKafkaPublisher(logger, conf.Kafka)
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			logger.Error("failed to close publisher", slog.Any("error", err))
		}
	}()

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache, catalogClient, eventPublisher)

	app := app.New(logger, conf, "orders")

	app.SetHTTPHandlers(
		handler.NewHealthHandler(logger, db),
		handler.NewOrderHandler(logger, orderService, tokens),
	)
	app.SetStarters(cacheWarmUpAdapter{svc: orderService, count: conf.Cache.WarmUp})

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case <-app.Done():
		logger.Error("application failed, shutting down")
		stop()
	}
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
