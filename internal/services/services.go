package services

import (
	"sync"
	"time"

	"github.com/trugenie/go-tally-extraction/internal/common/cache"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	selector repositories.TransportSelector
	cache    cache.Client[cache.Entry]
	metrics  metrics.Metrics
	now      func() time.Time

	// mu guards cc. Every extraction holds the read lock for its whole duration; a
	// company switch holds the write lock while it swaps cc and flushes the cache.
	mu sync.RWMutex
	cc models.CompanyContext

	common service

	Extraction ExtractionService
}

type Option func(*Services)

// WithClock overrides the clock used for envelope timestamps and cache entries.
func WithClock(now func() time.Time) Option {
	return func(s *Services) {
		s.now = now
	}
}

func New(
	conf config.Config,
	selector repositories.TransportSelector,
	cacheClient cache.Client[cache.Entry],
	mtc metrics.Metrics,
	opts ...Option,
) (*Services, error) {
	cc, err := conf.Tally.CompanyContext()
	if err != nil {
		return nil, err
	}

	srv := &Services{
		conf:     conf,
		selector: selector,
		cache:    cacheClient,
		metrics:  mtc,
		now:      time.Now,
		cc:       cc,
	}
	for _, opt := range opts {
		opt(srv)
	}

	srv.common.srv = srv
	srv.Extraction = (*extraction)(&srv.common)

	return srv, nil
}
