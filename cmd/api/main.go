package main

import (
	"context"
	"time"

	"github.com/trugenie/go-tally-extraction/cmd/setup"
	"github.com/trugenie/go-tally-extraction/internal/common/graceful"
	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/deliveries/http"
)

const setupFailureTimeout = 5 * time.Second

func main() {
	ctx := context.Background()

	s, stoppers, err := setup.Init("api")
	if err != nil {
		timeout := setupFailureTimeout
		if s != nil && s.Config.App.GracefulTimeout > 0 {
			timeout = s.Config.App.GracefulTimeout
		}
		graceful.StopProcess(timeout, stoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	server := http.NewHTTPServer(ctx, s.Config, s.Service.Extraction, s.Metrics)
	graceful.StartProcessAtBackground(server.Start())
	xlog.Info(ctx, "[STARTUP] api started",
		xlog.String("env", s.Config.App.Environment().String()),
		xlog.String("company", s.Service.Extraction.Context().Company))

	// the server is registered last so it stops before the cache and channels it uses
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, append(stoppers, server.Stop())...)
	xlog.Info(ctx, "[SHUTDOWN] api stopped")
}
