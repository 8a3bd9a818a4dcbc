package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-schoolfee/internal/events"
	"go-schoolfee/internal/feegenerator"
	"go-schoolfee/internal/shared/apperror"
	"go-schoolfee/internal/shared/contextutil"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeStudentEnrolled bills every newly enrolled student. Messages that can
// never succeed are committed and logged; anything else is left uncommitted
// so the group redelivers it after a rebalance.
func ConsumeStudentEnrolled(
	ctx context.Context,
	reader MessageReader,
	generator feegenerator.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.student_enrolled")
	log.Info("student enrolled consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("student enrolled consumer stopped")
				return
			}
			log.Error("fetch student enrolled message failed", zap.Error(err))
			continue
		}

		handleStudentEnrolled(ctx, reader, generator, log, msg)
	}
}

func handleStudentEnrolled(
	ctx context.Context,
	reader MessageReader,
	generator feegenerator.Service,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.StudentEnrolledEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode student enrolled event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		commit(ctx, reader, log, msg)
		return
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}
	fields := []zap.Field{
		zap.String("request_id", event.RequestID),
		zap.String("school_id", event.SchoolID),
		zap.String("student_id", event.StudentID),
		zap.String("academic_year", event.AcademicYear),
	}

	res, err := generator.GenerateForNewStudent(ctx, event.SchoolID, event.EnrolledBy, feegenerator.NewStudentRequest{
		StudentID:    event.StudentID,
		GradeLevelID: event.GradeLevelID,
		AcademicYear: event.AcademicYear,
		CategoryIDs:  event.CategoryIDs,
	})
	if err != nil {
		if isPermanent(err) {
			log.Warn("student enrolled event skipped", append(fields, zap.Error(err))...)
			commit(ctx, reader, log, msg)
			return
		}
		log.Error("generate fees for enrolled student failed", append(fields, zap.Error(err))...)
		return
	}

	if !commit(ctx, reader, log, msg) {
		return
	}
	log.Info("fees generated from student enrolled event",
		append(fields, zap.Int("fees_created", res.FeesCreated), zap.Int("fees_skipped", res.FeesSkipped))...,
	)
}

func commit(ctx context.Context, reader MessageReader, log *zap.Logger, msg kafkago.Message) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit student enrolled message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return false
	}
	return true
}

// isPermanent reports whether redelivering the event could change the
// outcome. Client errors and integrity violations cannot.
func isPermanent(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus < 500
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}
