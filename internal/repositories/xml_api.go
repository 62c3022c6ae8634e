package repositories

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/trugenie/go-tally-extraction/internal/common/httpclient"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/common/tallyxml"
	"github.com/trugenie/go-tally-extraction/internal/common/tdl"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

const logPrefixXMLAPI = "[XML-API]"

type xmlAPIChannel struct {
	url            string
	timeout        time.Duration
	voucherTimeout time.Duration
	probeTimeout   time.Duration
	limiter        *rate.Limiter
	wrapper        *httpclient.RequestWrapper
}

// NewXMLAPIChannel builds the primary channel: request documents POSTed to the engine's
// HTTP endpoint. Deadlines are per request and come from the context, never from the client.
func NewXMLAPIChannel(cfg config.Tally, mtc metrics.Metrics) Channel {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	client := resty.New().
		SetHeader("Content-Type", "application/xml").
		SetHeader("Accept", "application/xml")

	return &xmlAPIChannel{
		url:            cfg.URL,
		timeout:        cfg.Timeout,
		voucherTimeout: cfg.VoucherTimeout,
		probeTimeout:   cfg.ProbeTimeout,
		limiter:        rate.NewLimiter(limit, burst),
		wrapper:        httpclient.NewRequestWrapper(client, mtc, string(models.ExtractionMethodXMLAPI), logPrefixXMLAPI),
	}
}

func (c *xmlAPIChannel) Method() models.ExtractionMethod {
	return models.ExtractionMethodXMLAPI
}

func (c *xmlAPIChannel) Probe(ctx context.Context) error {
	req, err := tdl.BuildReport(tdl.MustLookup(models.EntityCompanyList), "")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, req, c.probeTimeout)
	return err
}

func (c *xmlAPIChannel) Fetch(ctx context.Context, req tdl.Request) ([]models.RawRecord, error) {
	if len(req.Body) == 0 {
		return nil, fmt.Errorf("%w: %s has no request document", models.ErrUnsupportedOnChannel, req.Entity.Kind)
	}
	timeout := c.timeout
	if req.Entity.Dialect == tdl.DialectCollection && c.voucherTimeout > 0 {
		timeout = c.voucherTimeout
	}
	return c.do(ctx, req, timeout)
}

func (c *xmlAPIChannel) do(ctx context.Context, req tdl.Request, timeout time.Duration) ([]models.RawRecord, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	res, err := c.wrapper.DoRequest(ctx, http.MethodPost, c.url, string(req.Entity.Kind), func(r *resty.Request) *resty.Request {
		return r.SetBody(req.Body)
	})
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: http status %d", models.ErrUpstream, res.StatusCode())
	}

	return tallyxml.Decode(res.Body(), req.Entity)
}

// classifyTransportError maps a failed round trip onto the failure taxonomy. Caller
// cancellation is passed through so it is never mistaken for an unreachable engine.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", models.ErrTimeout, err)
	case errors.Is(err, syscall.ECONNREFUSED), isDialError(err):
		return fmt.Errorf("%w: %w", models.ErrConnectionRefused, err)
	default:
		return fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}
}

func isDialError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
