package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"orderdesk/internal/catalog"
	"orderdesk/internal/config"
	"orderdesk/internal/infrastructure/logger"
	"orderdesk/internal/infrastructure/mysql"
	"orderdesk/internal/infrastructure/rabbitmq"
	"orderdesk/internal/metrics"
	"orderdesk/internal/notify"
	"orderdesk/internal/order"
	"orderdesk/internal/order/repository"
	"orderdesk/internal/order/usecase"
	"orderdesk/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	teams, err := catalog.LoadFile(cfg.Catalog.File)
	if err != nil {
		zapLogger.Fatal("loading team catalog", zap.Error(err))
	}

	orderRepo, db := newOrderRepository(ctx, cfg, zapLogger)
	if db != nil {
		defer db.Close()
	}

	feed := notify.NewFeed(cfg.Notify.FeedSize)
	sinks := notify.Multi{feed, notify.NewLogSink(zapLogger)}
	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL)
		if err != nil {
			zapLogger.Fatal("connecting to rabbitmq", zap.Error(err))
		}
		defer conn.Close()
		publisher := rabbitmq.NewPublisher(conn, cfg.RabbitMQ.Exchange)
		defer publisher.Close()
		sinks = append(sinks, publisher)
		zapLogger.Info("rabbitmq connected", zap.String("exchange", cfg.RabbitMQ.Exchange))
	}

	m := metrics.New()
	orderModule := order.NewModule(orderRepo, teams, sinks, m, cfg, zapLogger)

	router := server.NewRouter(
		orderModule,
		catalog.NewController(teams, zapLogger),
		notify.NewController(feed, zapLogger),
		m,
		zapLogger,
	)

	srv := server.New(cfg.Server.Port, router, zapLogger)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	zapLogger.Info("server stopped gracefully")
}

func newOrderRepository(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (usecase.OrderRepository, *sql.DB) {
	if cfg.Storage.Driver != config.StorageMySQL {
		repo, err := repository.NewMemoryOrderRepository(repository.SampleOrders())
		if err != nil {
			zapLogger.Fatal("loading sample orders", zap.Error(err))
		}
		zapLogger.Info("using in-memory order store", zap.Int("orders", len(repository.SampleOrders())))
		return repo, nil
	}

	db, err := mysql.NewConnection(ctx, cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	zapLogger.Info("database connected")

	if cfg.Database.Migrate {
		if err := mysql.Migrate(ctx, db, zapLogger); err != nil {
			zapLogger.Fatal("migrating database", zap.Error(err))
		}
	}

	return repository.NewMySQLOrderRepository(db), db
}
