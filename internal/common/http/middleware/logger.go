package middleware

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/exp/slices"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
)

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-api-key":     {},
}

func (m *AppMiddleware) parseRequestHeader(c echo.Context) []byte {
	headers := make(map[string][]string, len(c.Request().Header))
	for k, vals := range c.Request().Header {
		if _, ok := sensitiveHeaders[strings.ToLower(k)]; ok {
			headers[k] = []string{"*****"}
			continue
		}
		headers[k] = vals
	}

	b, _ := json.Marshal(headers)
	return b
}

var excludedLogs = []string{
	"/api/health",
	"/metrics",
}

// maxLoggedBody caps any payload text kept in the access log.
const maxLoggedBody = 4 << 10

func truncateBody(b []byte) string {
	if len(b) <= maxLoggedBody {
		return string(b)
	}
	return fmt.Sprintf("%s...(%d bytes truncated)", b[:maxLoggedBody], len(b)-maxLoggedBody)
}

// Logger writes one access log line per request; the level follows the response status.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return slices.Contains(excludedLogs, c.Path())
		},
		HandleError:     true,
		LogLatency:      true,
		LogMethod:       true,
		LogURI:          true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogRemoteIP:     true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			ctx := c.Request().Context()

			fields := []xlog.Field{
				xlog.Time("timestamp", v.StartTime),
				xlog.String("method", v.Method),
				xlog.String("url_path", v.URI),
				xlog.String("route", v.RoutePath),
				xlog.String("request_id", v.RequestID),
				xlog.String("remote_ip", v.RemoteIP),
				xlog.String("request_header", string(m.parseRequestHeader(c))),
				xlog.Int("status", v.Status),
				xlog.Any("response_size", v.ResponseSize),
				xlog.Duration("latency", v.Latency),
				xlog.String("app", m.conf.App.Name),
			}
			if v.Error != nil {
				fields = append(fields, xlog.String("error", truncateBody([]byte(v.Error.Error()))))
			}

			message := fmt.Sprintf("%v %v %v %v", v.Status, v.Method, v.URI, v.Latency)

			switch {
			case v.Status >= 500:
				xlog.Error(ctx, message, fields...)
			case v.Status >= 400:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}
			return nil
		},
	})
}
