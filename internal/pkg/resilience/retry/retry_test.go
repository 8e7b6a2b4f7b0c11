package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		r := New(WithDelay(time.Millisecond), WithMaxDelay(time.Millisecond))

		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		r := New(WithAttempts(5), WithDelay(time.Millisecond), WithMaxDelay(time.Millisecond))

		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error after exhausting attempts", func(t *testing.T) {
		r := New(WithAttempts(3), WithDelay(time.Millisecond), WithMaxDelay(time.Millisecond))

		lastErr := errors.New("attempt 3")
		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			if calls == 3 {
				return lastErr
			}
			return errors.New("earlier attempt")
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.ErrorIs(t, err, lastErr)
	})

	t.Run("does not retry an unrecoverable error", func(t *testing.T) {
		r := New(WithAttempts(5), WithDelay(time.Millisecond), WithMaxDelay(time.Millisecond))

		fatal := errors.New("permanent")
		calls := 0
		err := r.Execute(t.Context(), func() error {
			calls++
			return Unrecoverable(fatal)
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, fatal)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		r := New(WithAttempts(100), WithDelay(10*time.Millisecond))

		ctx, cancel := context.WithCancel(t.Context())

		calls := 0
		err := r.Execute(ctx, func() error {
			calls++
			cancel()
			return errors.New("keeps failing")
		})

		require.Error(t, err)
		assert.Less(t, calls, 100)
	})
}
