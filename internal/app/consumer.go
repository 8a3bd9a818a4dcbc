package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-schoolfee/internal/events"
	"go-schoolfee/internal/messaging/kafka/consumer"
	"go-schoolfee/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const enrollmentGroupID = "go-schoolfee-enrollment-billing"

// RunConsumer bills newly enrolled students read from the roster topic until
// SIGINT/SIGTERM. Offsets are committed explicitly per message.
func RunConsumer(cfg Config) error {
	if cfg.KafkaBroker == "" {
		return errKafkaBrokerMissing
	}
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// The generator never touches Redis, so the consumer runs without it.
	svc := buildServices(cfg, sqlDB, gormDB, nil, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{cfg.KafkaBroker},
		Topic:       events.StudentEnrolledTopic,
		GroupID:     enrollmentGroupID,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeStudentEnrolled(ctx, reader, svc.generator, logger)
	return nil
}
