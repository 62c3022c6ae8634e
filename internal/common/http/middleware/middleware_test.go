package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/config"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newRouter(seen *string) *echo.Echo {
	m := NewMiddleware(config.Config{App: config.App{Name: "go-tally-extraction"}})

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(m.Context())
	e.Use(m.Logger())
	e.GET("/api/ledgers", func(c echo.Context) error {
		*seen = xlog.GetCorrelationID(c.Request().Context())
		return c.String(http.StatusOK, strings.Repeat("x", maxLoggedBody+10))
	})
	return e
}

func TestContext(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "caller header wins", header: "corr-123"},
		{name: "falls back to request id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			e := newRouter(&seen)

			req := httptest.NewRequest(http.MethodGet, "/api/ledgers", nil)
			if tt.header != "" {
				req.Header.Set(HeaderCorrelationID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(HeaderCorrelationID))
			if tt.header != "" {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), seen)
			}
			assert.Len(t, rec.Body.String(), maxLoggedBody+10, "logging does not alter the response")
		})
	}
}

func TestTruncateBody(t *testing.T) {
	assert.Equal(t, "short", truncateBody([]byte("short")))

	long := truncateBody([]byte(strings.Repeat("y", maxLoggedBody+3)))
	assert.True(t, strings.HasSuffix(long, "...(3 bytes truncated)"))
	assert.True(t, strings.HasPrefix(long, strings.Repeat("y", maxLoggedBody)))
}

func TestParseRequestHeader_RedactsSecrets(t *testing.T) {
	m := NewMiddleware(config.Config{})
	req := httptest.NewRequest(http.MethodGet, "/api/ledgers", nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Accept", "application/json")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	got := string(m.parseRequestHeader(c))
	assert.NotContains(t, got, "secret")
	assert.Contains(t, got, "*****")
	assert.Contains(t, got, "application/json")
}
