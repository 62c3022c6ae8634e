package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
)

const DefaultMaxRetries = 1

type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type Config struct {
	// MaxRetries is the number of attempts after the first one. Zero disables retrying.
	MaxRetries int
	WaitTime   time.Duration
}

type constantBackoff struct {
	cfg Config
}

/*
NewConstantBackOff will init Retryer interface.
The operation is attempted once plus at most MaxRetries more times, WaitTime apart, and
only for as long as ctx is live.

Example:

	Retry(ctx, func() error {
		err := fetch()
		if !isTimeout(err) {
			return r.StopRetryWithErr(err)
		}
		return err
	})
*/
func NewConstantBackOff(cfg Config) Retryer {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.WaitTime < 0 {
		cfg.WaitTime = 0
	}
	return &constantBackoff{cfg: cfg}
}

// Retry returns the last operation error, or the context error when ctx ends first.
func (r *constantBackoff) Retry(ctx context.Context, operation func() error) error {
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.cfg.WaitTime), uint64(r.cfg.MaxRetries)),
		ctx,
	)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		return operation()
	}, b, func(err error, wait time.Duration) {
		xlog.Warn(ctx, "[RETRY] retrying on same channel",
			xlog.Int("attempt", attempt),
			xlog.Duration("wait", wait),
			xlog.Err(err))
	})
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *constantBackoff) StopRetryWithErr(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}
