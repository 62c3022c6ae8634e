package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/common/retry"
)

func init() {
	xlog.InitForTest()
}

var errTransient = errors.New("transient")

func Test_Retry_ConstantBackoff(t *testing.T) {
	t.Run("success - first attempt", func(t *testing.T) {
		var calls int
		r := retry.NewConstantBackOff(retry.Config{MaxRetries: 1})

		err := r.Retry(context.Background(), func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("success - after one retry", func(t *testing.T) {
		var calls int
		r := retry.NewConstantBackOff(retry.Config{MaxRetries: 1, WaitTime: time.Millisecond})

		err := r.Retry(context.Background(), func() error {
			calls++
			if calls == 1 {
				return errTransient
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("failed - retried exactly max retries times", func(t *testing.T) {
		var calls int
		r := retry.NewConstantBackOff(retry.Config{MaxRetries: 1})

		err := r.Retry(context.Background(), func() error {
			calls++
			return errTransient
		})
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 2, calls)
	})

	t.Run("failed - retry disabled", func(t *testing.T) {
		var calls int
		r := retry.NewConstantBackOff(retry.Config{MaxRetries: 0})

		err := r.Retry(context.Background(), func() error {
			calls++
			return errTransient
		})
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})

	t.Run("failed - force stop retrying", func(t *testing.T) {
		var calls int
		r := retry.NewConstantBackOff(retry.Config{MaxRetries: 5})

		err := r.Retry(context.Background(), func() error {
			calls++
			return r.StopRetryWithErr(assert.AnError)
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})

	t.Run("failed - cancelled context is not retried", func(t *testing.T) {
		var calls int
		ctx, cancel := context.WithCancel(context.Background())
		r := retry.NewConstantBackOff(retry.Config{MaxRetries: 3})

		err := r.Retry(ctx, func() error {
			calls++
			cancel()
			return errTransient
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
