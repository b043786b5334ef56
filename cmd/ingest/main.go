package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/smartnotes/config"
	"github.com/spacesedan/smartnotes/internal/clients/kafka_client"
	"github.com/spacesedan/smartnotes/internal/consumers"
	"github.com/spacesedan/smartnotes/internal/db"
	"github.com/spacesedan/smartnotes/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg)
	if err != nil {
		slog.Error("[Main] Failed to open feedback store",
			slog.String("backend", cfg.StoreBackend),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	kafka_client.RegisterConsumer(cfg.Kafka.Topic,
		consumers.NewFeedbackConsumer(store, kafka_client.BATCH_SIZE, kafka_client.BATCH_TIMEOUT))

	for {
		err := kafka_client.StartConsumer(ctx, cfg.Kafka)
		if err == nil || ctx.Err() != nil {
			break
		}

		slog.Warn("[Main] Kafka consumer failed, retrying...", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
		}
	}

	slog.Info("[Main] Ingest consumer stopped")
}
