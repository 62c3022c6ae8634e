package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/trugenie/go-tally-extraction/internal/common/graceful"
	commonhttp "github.com/trugenie/go-tally-extraction/internal/common/http"
	"github.com/trugenie/go-tally-extraction/internal/common/http/middleware"
	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/deliveries/http/health"
	"github.com/trugenie/go-tally-extraction/internal/services"

	v1company "github.com/trugenie/go-tally-extraction/internal/deliveries/http/v1/company"
	v1ledger "github.com/trugenie/go-tally-extraction/internal/deliveries/http/v1/ledger"
	v1masterData "github.com/trugenie/go-tally-extraction/internal/deliveries/http/v1/masterdata"
	v1report "github.com/trugenie/go-tally-extraction/internal/deliveries/http/v1/report"
	v1voucher "github.com/trugenie/go-tally-extraction/internal/deliveries/http/v1/voucher"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		err := s.e.Start(s.addr)
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			xlog.Errorf(context.Background(), "[STARTUP] HTTP server error: %v", err)
			return err
		}
		return nil
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler returns the router.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title GO TALLY EXTRACTION API DOCUMENTATION
// @version 1.0
// @description Read-only extraction of Tally accounting data.

// @host localhost:9000
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	extractionService services.ExtractionService,
	mtc metrics.Metrics,
) *svc {
	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	if conf.App.HTTPTimeout > 0 {
		app.Server.ReadTimeout = conf.App.HTTPTimeout
	}

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	// pprof
	// Endpoint debug/pprof/
	if conf.App.Environment() != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metrics.FlattenName(conf.App.Name),
		Registerer: mtc.PrometheusRegisterer(),
	}))
	app.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: mtc.PrometheusGatherer(),
	}))

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup, extractionService)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	v1company.New(v1Group, extractionService)
	v1ledger.New(v1Group, extractionService)
	v1voucher.New(v1Group, extractionService)
	v1masterData.New(v1Group, extractionService)
	v1report.New(v1Group, extractionService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		return commonhttp.RestErrorResponse(c, echo.NewHTTPError(nethttp.StatusNotFound,
			fmt.Sprintf("route '%s' does not exist in this API", c.Request().URL)))
	})

	xlog.Info(ctx, "[STARTUP] HTTP routes registered", xlog.String("addr", svc.addr),
		xlog.String("company", extractionService.Context().Company))

	return svc
}
