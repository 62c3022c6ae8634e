package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
)

// RequestWrapper sends one request and logs it. The upstream duration histogram is
// labelled with the channel name and the entity passed per call.
type RequestWrapper struct {
	client    *resty.Client
	metrics   metrics.Metrics
	channel   string
	logPrefix string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, channel, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:    client,
		metrics:   metrics,
		channel:   channel,
		logPrefix: logPrefix,
	}
}

// DoRequest returns the raw transport error untouched so callers can classify it.
// Non-2xx responses are returned without error.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, url, entity string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []xlog.Field{
		xlog.String("url", url),
		xlog.String("method", method),
		xlog.String("entity", entity),
	}

	xlog.Debug(ctx, w.logPrefix, append(logFields, xlog.String("message", "send request"))...)

	req := w.client.R().SetContext(ctx)
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		w.record(startTime, entity, "transport_error")
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.Duration("elapsed", time.Since(startTime)), xlog.Err(err))...)
		return nil, err
	}

	logFields = append(logFields,
		xlog.String("httpStatusCode", httpRes.Status()),
		xlog.Int("responseBytes", len(httpRes.Body())),
		xlog.Duration("elapsed", time.Since(startTime)),
	)

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		w.record(startTime, entity, fmt.Sprintf("http_%d", httpRes.StatusCode()))
		xlog.Warn(ctx, w.logPrefix, logFields...)
	} else {
		w.record(startTime, entity, "ok")
		xlog.Info(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}

func (w *RequestWrapper) record(startTime time.Time, entity, outcome string) {
	if w.metrics == nil {
		return
	}
	w.metrics.GetUpstreamPrometheus().Record(time.Since(startTime), w.channel, entity, outcome)
}
