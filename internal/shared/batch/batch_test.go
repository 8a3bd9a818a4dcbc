package batch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go-schoolfee/internal/shared/batch"

	"github.com/stretchr/testify/assert"
)

func TestForEachSchool_IsolatesFailures(t *testing.T) {
	schools := []string{"s1", "s2", "s3", "s4"}
	var calls int32

	results := batch.ForEachSchool(context.Background(), schools, 2, func(ctx context.Context, schoolID string) (int, error) {
		atomic.AddInt32(&calls, 1)
		switch schoolID {
		case "s2":
			return 0, errors.New("store unavailable")
		case "s3":
			panic("unexpected nil structure")
		}
		return 5, nil
	})

	assert.Equal(t, int32(4), calls)
	assert.Len(t, results, 4)

	assert.Equal(t, "s1", results[0].SchoolID)
	assert.True(t, results[0].OK())
	assert.Equal(t, 5, results[0].Result)

	assert.False(t, results[1].OK())
	assert.EqualError(t, results[1].Err, "store unavailable")

	assert.False(t, results[2].OK())
	assert.Contains(t, results[2].Err.Error(), "panic")

	assert.True(t, results[3].OK())
	assert.Equal(t, 5, results[3].Result)
}

func TestForEachSchool_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := batch.ForEachSchool(ctx, []string{"s1"}, 0, func(ctx context.Context, schoolID string) (int, error) {
		t.Fatal("fn must not run on a canceled context")
		return 0, nil
	})

	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
