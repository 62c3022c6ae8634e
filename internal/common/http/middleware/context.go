package middleware

import (
	"github.com/labstack/echo/v4"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
)

const HeaderCorrelationID = "X-Correlation-Id"

// Context attaches a correlation id to the request context. The caller's header wins, then the
// echo request id, then a fresh uuid.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(HeaderCorrelationID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			ctx := xlog.WithCorrelationID(req.Context(), id)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(HeaderCorrelationID, xlog.GetCorrelationID(ctx))

			return next(c)
		}
	}
}
