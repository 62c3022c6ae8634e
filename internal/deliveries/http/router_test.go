package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	"github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/models"
	"github.com/trugenie/go-tally-extraction/internal/services/mock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*svc, *mock.MockExtractionService) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockExtractor := mock.NewMockExtractionService(mockCtrl)
	mockExtractor.EXPECT().Context().Return(models.CompanyContext{Company: "Nimona"}).AnyTimes()

	conf := config.Config{App: config.App{Env: "prod", Name: "go-tally-extraction", HTTPPort: 9000}}
	srv := NewHTTPServer(t.Context(), conf, mockExtractor, metrics.NewWithRegisterer(prometheus.NewRegistry()))
	return srv, mockExtractor
}

func serve(t *testing.T, srv *svc, method, url string) (int, []byte) {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(method, url, nil))

	resp := rec.Result()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestNewHTTPServer_Routes(t *testing.T) {
	srv, mockExtractor := newTestServer(t)
	now := time.Date(2025, 4, 15, 10, 30, 0, 0, time.UTC)

	mockExtractor.EXPECT().HealthCheck(gomock.Any()).Return(models.NewSuccessEnvelope(models.HealthReport{Company: "Nimona"}, nil, "", now))
	code, _ := serve(t, srv, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, code)

	mockExtractor.EXPECT().GetLedgers(gomock.Any(), false).Return(models.NewSuccessEnvelope([]models.Ledger{}, models.CountOf(0), models.ExtractionMethodXMLAPI, now))
	code, _ = serve(t, srv, http.MethodGet, "/api/v1/ledgers/")
	assert.Equal(t, http.StatusOK, code, "trailing slash is removed")

	code, body := serve(t, srv, http.MethodGet, "/api/v1/journal-entries")
	assert.Equal(t, http.StatusNotFound, code)
	var env models.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.False(t, env.Success)
	assert.Equal(t, models.ErrorKindNotFound, env.ErrorKind)
	assert.Contains(t, env.Error, "/api/v1/journal-entries")
}

func TestNewHTTPServer_Metrics(t *testing.T) {
	srv, mockExtractor := newTestServer(t)

	mockExtractor.EXPECT().GetGroups(gomock.Any(), false).Return(models.NewErrorEnvelope(models.ErrTimeout, time.Now()))
	code, _ := serve(t, srv, http.MethodGet, "/api/v1/groups")
	assert.Equal(t, http.StatusGatewayTimeout, code)

	code, body := serve(t, srv, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "go_tally_extraction_requests_total")
	assert.Contains(t, string(body), `code="504"`)
}

func TestNewHTTPServer_PprofOutsideProd(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockExtractor := mock.NewMockExtractionService(mockCtrl)
	mockExtractor.EXPECT().Context().Return(models.CompanyContext{}).AnyTimes()

	conf := config.Config{App: config.App{Env: "local", Name: "go-tally-extraction"}}
	srv := NewHTTPServer(t.Context(), conf, mockExtractor, metrics.NewWithRegisterer(prometheus.NewRegistry()))

	code, _ := serve(t, srv, http.MethodGet, "/debug/pprof/cmdline")
	assert.Equal(t, http.StatusOK, code)

	prod, _ := newTestServer(t)
	code, _ = serve(t, prod, http.MethodGet, "/debug/pprof/cmdline")
	assert.Equal(t, http.StatusNotFound, code)
}
