package retrier

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsAfterFailures(t *testing.T) {
	r := New(3, time.Millisecond, 10*time.Millisecond)

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoReturnsLastError(t *testing.T) {
	r := New(2, time.Millisecond, 10*time.Millisecond)

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.Errorf("attempt %d", calls)
	})

	require.Error(t, err)
	assert.Equal(t, "attempt 2", err.Error())
	assert.Equal(t, 2, calls)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	r := New(5, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Do(ctx, func(ctx context.Context) error {
		return errors.New("always fails")
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestDoWithData(t *testing.T) {
	r := New(3, time.Millisecond, 10*time.Millisecond)

	calls := 0
	value, err := DoWithData(r, context.Background(), func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestNewAppliesDefaults(t *testing.T) {
	r := New(0, 0, 0)

	assert.Equal(t, defaultAttempts, r.attempts)
	assert.Equal(t, defaultInitial, r.initial)
	assert.Equal(t, defaultMax, r.max)
}
