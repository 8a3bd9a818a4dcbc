package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go-schoolfee/internal/messaging/kafka"
	"go-schoolfee/internal/messaging/kafka/producer"
	"go-schoolfee/internal/shared/connection"

	"go.uber.org/zap"
)

var errKafkaBrokerMissing = errors.New("KAFKA_BROKER is required")

// RunWorker relays committed outbox rows to Kafka until SIGINT/SIGTERM and
// returns after the in-flight batch has been recorded.
func RunWorker(cfg Config) error {
	if cfg.KafkaBroker == "" {
		return errKafkaBrokerMissing
	}
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), writer, logger, cfg.OutboxPollInterval)
	return nil
}
