package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-schoolfee/internal/events"
	"go-schoolfee/internal/feegenerator"
	feegeneratorerrors "go-schoolfee/internal/feegenerator/errors"
	feegeneratorMock "go-schoolfee/internal/feegenerator/mock"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func enrolledMessage(t *testing.T, offset int64, studentID string) kafkago.Message {
	value, err := json.Marshal(events.StudentEnrolledEvent{
		EventType:    "student.enrolled",
		SchoolID:     "0b8a6c0e-7a4f-4f4b-9a3d-0d5d1c2b3a41",
		StudentID:    studentID,
		AcademicYear: "2026-2027",
	})
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: value}
}

func TestConsumeStudentEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := feegeneratorMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte("{not json")},
			enrolledMessage(t, 2, "student-ok"),
			enrolledMessage(t, 3, "student-no-structures"),
			enrolledMessage(t, 4, "student-db-down"),
		},
	}

	generator.EXPECT().
		GenerateForNewStudent(gomock.Any(), "0b8a6c0e-7a4f-4f4b-9a3d-0d5d1c2b3a41", "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, req feegenerator.NewStudentRequest) (feegenerator.NewStudentResult, error) {
			assert.Equal(t, "2026-2027", req.AcademicYear)
			switch req.StudentID {
			case "student-ok":
				return feegenerator.NewStudentResult{StudentID: req.StudentID, FeesCreated: 2}, nil
			case "student-no-structures":
				return feegenerator.NewStudentResult{}, feegeneratorerrors.ErrNoApplicableStructures
			default:
				return feegenerator.NewStudentResult{}, errors.New("connection refused")
			}
		}).
		Times(3)

	ConsumeStudentEnrolled(ctx, reader, generator, zap.NewNop())

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, isPermanent(feegeneratorerrors.ErrNoApplicableStructures))
	assert.True(t, isPermanent(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isPermanent(&pgconn.PgError{Code: "40001"}))
	assert.False(t, isPermanent(errors.New("i/o timeout")))
}
