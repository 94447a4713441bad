package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/orderflow/docs/notifications"
	"github.com/SergeyBogomolovv/orderflow/internal/app"
	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/SergeyBogomolovv/orderflow/internal/handler"
	"github.com/SergeyBogomolovv/orderflow/internal/postgres"
	"github.com/SergeyBogomolovv/orderflow/internal/repo"
	"github.com/SergeyBogomolovv/orderflow/internal/service"
	"github.com/SergeyBogomolovv/orderflow/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Notifications API
// @version         1.0
// @description     Уведомления пользователей о заказах и остатках
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.ValidateNotifications())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db, postgres.NotificationsSchema))

	tokens, err := auth.NewTokenService(conf.Auth.SymmetricKey)
	panicIfErr("failed to init token service", err)

	notificationRepo := repo.NewNotificationRepo(db)
	txManager := trm.NewManager(db)

	notificationService := service.NewNotificationService(logger, txManager, notificationRepo, conf.Notifications.AdminUserID)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, notificationService, conf.Notifications.LowStockThreshold)

	app := app.New(logger, conf, "notifications")

	app.SetHTTPHandlers(
		handler.NewHealthHandler(logger, db),
		handler.NewNotificationHandler(logger, notificationService, tokens),
	)
	app.SetConsumers(kafkaHandler)

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
