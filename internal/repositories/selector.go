package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/common/retry"
	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

const logPrefixSelector = "[TRANSPORT]"

// State is a step of the per-call channel selection machine.
type State string

const (
	StateProbePrimary   State = "probe_primary"
	StateUsePrimary     State = "use_primary"
	StateProbeSecondary State = "probe_secondary"
	StateUseSecondary   State = "use_secondary"
	StateFailed         State = "failed"
)

// Session resolves channels for one logical operation. Probe outcomes are remembered for
// the lifetime of the session only.
type Session interface {
	Fetch(ctx context.Context, req tdl.Request) ([]models.RawRecord, models.ExtractionMethod, error)
}

type TransportSelector interface {
	NewSession(mode models.TransportMode) Session
	ProbeAll(ctx context.Context) ProbeResult
}

// ProbeResult holds the probe error of each channel; nil means reachable.
type ProbeResult struct {
	Primary   error
	Secondary error
}

type transportSelector struct {
	primary   Channel
	secondary Channel
	retryer   retry.Retryer
	metrics   metrics.Metrics
}

func NewTransportSelector(primary, secondary Channel, retryer retry.Retryer, mtc metrics.Metrics) TransportSelector {
	return &transportSelector{
		primary:   primary,
		secondary: secondary,
		retryer:   retryer,
		metrics:   mtc,
	}
}

func (s *transportSelector) NewSession(mode models.TransportMode) Session {
	return &session{
		sel:    s,
		mode:   mode,
		probes: map[models.ExtractionMethod]error{},
	}
}

// ProbeAll checks both channels concurrently. It never fails as a whole.
func (s *transportSelector) ProbeAll(ctx context.Context) ProbeResult {
	var res ProbeResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.Primary = s.primary.Probe(gctx)
		return nil
	})
	g.Go(func() error {
		res.Secondary = s.secondary.Probe(gctx)
		return nil
	})
	_ = g.Wait()
	return res
}

type session struct {
	sel  *transportSelector
	mode models.TransportMode

	mu     sync.Mutex
	probes map[models.ExtractionMethod]error
}

func (s *session) initialState() State {
	switch s.mode {
	case models.TransportModeXMLAPI:
		return StateUsePrimary
	case models.TransportModeODBC:
		return StateUseSecondary
	default:
		return StateProbePrimary
	}
}

func (s *session) Fetch(ctx context.Context, req tdl.Request) ([]models.RawRecord, models.ExtractionMethod, error) {
	var (
		lastErr       error
		primaryFailed bool
	)

	state := s.initialState()
	for {
		if err := ctx.Err(); err != nil {
			return nil, "", callerDone(err)
		}
		switch state {
		case StateProbePrimary:
			if err := s.probe(ctx, s.sel.primary); err != nil {
				lastErr = err
				primaryFailed = true
				state = StateProbeSecondary
				continue
			}
			state = StateUsePrimary

		case StateUsePrimary:
			records, err := s.use(ctx, s.sel.primary, req)
			if err == nil {
				return records, s.sel.primary.Method(), nil
			}
			if !s.canFallBack(ctx, err) {
				return nil, "", err
			}
			lastErr = err
			primaryFailed = true
			state = StateProbeSecondary

		case StateProbeSecondary:
			if !req.Entity.OnSecondary() {
				state = StateFailed
				continue
			}
			if err := s.probe(ctx, s.sel.secondary); err != nil {
				lastErr = errors.Join(lastErr, err)
				state = StateFailed
				continue
			}
			state = StateUseSecondary

		case StateUseSecondary:
			records, err := s.use(ctx, s.sel.secondary, req)
			if err == nil {
				if primaryFailed {
					if s.sel.metrics != nil {
						s.sel.metrics.GetUpstreamPrometheus().RecordFallback(string(req.Entity.Kind))
					}
					xlog.Info(ctx, logPrefixSelector,
						xlog.String("message", "served by secondary channel"),
						xlog.String("entity", string(req.Entity.Kind)))
				}
				return records, s.sel.secondary.Method(), nil
			}
			if s.mode == models.TransportModeODBC || !s.canFallBack(ctx, err) {
				return nil, "", err
			}
			lastErr = errors.Join(lastErr, err)
			state = StateFailed

		case StateFailed:
			return nil, "", fmt.Errorf("%w for %s: %w", models.ErrNoChannelAvailable, req.Entity.Kind, lastErr)
		}
	}
}

func callerDone(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", models.ErrTimeout, err)
	}
	return err
}

// canFallBack is true for reachability failures in auto mode. Upstream errors and caller
// cancellation end the call on the channel that produced them.
func (s *session) canFallBack(ctx context.Context, err error) bool {
	if s.mode != models.TransportModeAuto || ctx.Err() != nil {
		return false
	}
	return unreachable(err)
}

func (s *session) probe(ctx context.Context, ch Channel) error {
	s.mu.Lock()
	err, ok := s.probes[ch.Method()]
	s.mu.Unlock()
	if ok {
		return err
	}

	err = ch.Probe(ctx)
	if err != nil && ctx.Err() != nil {
		// cancellation says nothing about the channel
		return err
	}
	if err != nil {
		xlog.Warn(ctx, logPrefixSelector,
			xlog.String("message", "probe failed"),
			xlog.String("channel", string(ch.Method())),
			xlog.Err(err))
	}
	s.remember(ch.Method(), err)
	return err
}

func (s *session) remember(method models.ExtractionMethod, err error) {
	s.mu.Lock()
	s.probes[method] = err
	s.mu.Unlock()
}

// unreachable is the failure class that earns a same-channel retry and, in auto mode, a fallback.
func unreachable(err error) bool {
	return unreachable(err)
}

// use fetches on one channel, retrying reachability failures while the caller is still waiting.
func (s *session) use(ctx context.Context, ch Channel, req tdl.Request) ([]models.RawRecord, error) {
	var records []models.RawRecord
	err := s.sel.retryer.Retry(ctx, func() error {
		res, err := ch.Fetch(ctx, req)
		if err == nil {
			records = res
			return nil
		}
		if unreachable(err) && ctx.Err() == nil {
			return err
		}
		return s.sel.retryer.StopRetryWithErr(err)
	})
	if err != nil {
		if unreachable(err) {
			s.remember(ch.Method(), err)
		}
		return nil, err
	}
	s.remember(ch.Method(), nil)
	return records, nil
}
