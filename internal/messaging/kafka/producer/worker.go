package producer

import (
	"context"
	"time"

	"go-schoolfee/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize  = 50
	claimLease = 2 * time.Minute
)

// ProcessOutboxEvents polls the outbox every pollInterval until ctx is done.
// A tick keeps relaying while batches come back full, so a backlog left by a
// sweep drains without waiting for further ticks.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			for ctx.Err() == nil {
				claimed, err := ProcessPendingEvents(ctx, repo, writer, log)
				if err != nil {
					log.Error("relay outbox batch failed", zap.Error(err))
					break
				}
				if claimed < batchSize {
					break
				}
			}
		}
	}
}

// ProcessPendingEvents relays one claimed batch and returns how many events it
// claimed. A publish failure is recorded on that event alone.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ClaimPending(ctx, batchSize, claimLease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	var sent, failed int
	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("school_id", event.SchoolID),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			failed++
			fields = append(fields, zap.Int("attempt", event.RetryCount+1), zap.Error(err))
			if event.RetryCount+1 >= kafka.MaxOutboxAttempts {
				logger.Error("outbox event dead-lettered", fields...)
			} else {
				logger.Warn("publish outbox event failed", fields...)
			}
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("record outbox failure", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// The lease expires and the event is published again; consumers dedupe on event id.
			logger.Error("record outbox delivery", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		sent++
		logger.Debug("outbox event sent", fields...)
	}

	logger.Info("outbox batch relayed",
		zap.Int("claimed", len(events)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return len(events), nil
}
