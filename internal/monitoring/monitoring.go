// Package monitoring times one unit of work and logs how it finished.
package monitoring

import (
	"context"
	"regexp"
	"runtime"
	"strings"
	"time"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerUnknown    = "unknown"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

// reFuncName captures package, receiver and method of a runtime function name
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

type Monitor struct {
	ctx       context.Context
	operation string
	layer     string
	start     time.Time
}

type initOptions struct {
	layer     string
	operation string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithOperation(operation string) InitOption {
	return func(o *initOptions) {
		o.operation = operation
	}
}

// New starts a monitor. Without WithOperation the caller's function name is used and
// the layer is guessed from the caller's file path.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.operation == "" {
		// must stay directly in New: the caller frame is skipped by depth
		pc, file, _, ok := runtime.Caller(1)
		o.operation = LayerUnknown
		if ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				o.operation = operationName(fn.Name())
			}
		}
		if o.layer == "" {
			o.layer = layerOf(file)
		}
	}
	if o.layer == "" {
		o.layer = LayerUnknown
	}

	return &Monitor{
		ctx:       ctx,
		operation: o.operation,
		layer:     o.layer,
		start:     time.Now(),
	}
}

func layerOf(file string) string {
	switch {
	case strings.Contains(file, LayerRepository):
		return LayerRepository
	case strings.Contains(file, LayerService):
		return LayerService
	case strings.Contains(file, LayerDelivery):
		return LayerDelivery
	default:
		return LayerUnknown
	}
}

func operationName(fullFuncName string) string {
	matches := reFuncName.FindStringSubmatch(fullFuncName)
	if len(matches) < 4 {
		return fullFuncName
	}

	var parts []string
	for _, m := range matches[1:4] {
		if m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, ".")
}

type finishOptions struct {
	err    error
	fields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.fields = append(o.fields, fields...)
	}
}

// Finish logs failures at warn level on every layer; successes only on the service and
// delivery layers so one call is not logged twice.
func (m *Monitor) Finish(opts ...FinishOption) {
	o := &finishOptions{}
	for _, opt := range opts {
		opt(o)
	}

	fields := append(o.fields,
		xlog.String("operation", m.operation),
		xlog.Duration("processDuration", time.Since(m.start)))

	if o.err != nil {
		fields = append(fields, xlog.String("status", "error"), xlog.Err(o.err))
		xlog.Warn(m.ctx, messagePrefix[m.layer], fields...)
		return
	}

	if m.layer == LayerDelivery || m.layer == LayerService {
		fields = append(fields, xlog.String("status", "success"))
		xlog.Info(m.ctx, messagePrefix[m.layer], fields...)
	}
}
