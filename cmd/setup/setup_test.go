package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trugenie/go-tally-extraction/internal/common/cache"
	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
	cMetrics "github.com/trugenie/go-tally-extraction/internal/common/metrics"
	"github.com/trugenie/go-tally-extraction/internal/config"
	"github.com/trugenie/go-tally-extraction/internal/models"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
app:
  env: local
tally:
  company: Demo Traders
  odbc_dsn: ""
  transport_mode: xml_api
cache:
  driver: memory
`), 0o600))

	s, stoppers, err := Init("test", WithConfigSearchPaths(dir), WithQuietLog())
	t.Cleanup(func() {
		for _, stop := range stoppers {
			_ = stop(context.Background())
		}
		xlog.InitForTest()
	})

	require.NoError(t, err)
	assert.Nil(t, s.ODBC)
	assert.Nil(t, s.Redis)
	assert.IsType(t, &cache.InMemoryClient[cache.Entry]{}, s.Cache)
	require.NotNil(t, s.Service)

	cc := s.Service.Extraction.Context()
	assert.Equal(t, "Demo Traders", cc.Company)
	assert.Equal(t, models.TransportModeXMLAPI, cc.Mode)
}

func TestInit_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
tally:
  fy_start: "20250231"
`), 0o600))

	_, _, err := Init("test", WithConfigSearchPaths(dir))
	assert.ErrorIs(t, err, models.ErrInvalidParameter)
}

func TestSetupODBC_DisabledWithoutDriverOrDSN(t *testing.T) {
	mtc := cMetrics.NewWithRegisterer(prometheus.NewRegistry())

	cfg := config.Config{Tally: config.Tally{ODBCDSN: ""}}
	assert.Nil(t, setupODBC(context.Background(), cfg, mtc))
}

func TestSetupCache_Memory(t *testing.T) {
	mtc := cMetrics.NewWithRegisterer(prometheus.NewRegistry())

	client, redisClient, err := setupCache(context.Background(), config.Config{Cache: config.Cache{Driver: config.CacheDriverMemory}}, mtc)
	require.NoError(t, err)
	assert.Nil(t, redisClient)

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, cache.Key(models.EntityLedger, "Demo"), cache.Entry{Method: models.ExtractionMethodODBC}, 0))
	got, err := client.Get(ctx, cache.Key(models.EntityLedger, "Demo"))
	require.NoError(t, err)
	assert.Equal(t, models.ExtractionMethodODBC, got.Method)
}
