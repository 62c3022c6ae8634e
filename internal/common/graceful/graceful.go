package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			if err := start(); err != nil {
				xlog.Error(context.Background(), "[GRACEFUL] process exited", xlog.Err(err))
			}
		}(p)
	}
}

// StopProcessAtBackground blocks until a shutdown signal arrives, then runs the stoppers.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	StopOnSignal(context.Background(), duration, ps...)
}

// StopOnSignal blocks until a shutdown signal arrives or ctx is done, then runs the stoppers.
func StopOnSignal(ctx context.Context, duration time.Duration, ps ...ProcessStopper) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, shutdownSignals...)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		xlog.Info(ctx, "[GRACEFUL] shutting down", xlog.String("signal", s.String()))
	case <-ctx.Done():
		xlog.Info(ctx, "[GRACEFUL] shutting down", xlog.String("reason", context.Cause(ctx).Error()))
	}
	StopProcess(duration, ps...)
}

// StopProcess runs the stoppers last-registered first, each under its own timeout.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	ps = slices.Clone(ps)
	slices.Reverse(ps)

	for _, p := range ps {
		if p == nil {
			continue
		}
		stopOne(duration, p)
	}
}

func stopOne(duration time.Duration, p ProcessStopper) {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()
	if err := p(ctx); err != nil {
		xlog.Warn(ctx, "[GRACEFUL] stopper failed", xlog.Err(err))
	}
}
