package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"app.env":              "local",
	"app.http_port":        8001,
	"app.http_timeout":     "150s",
	"app.graceful_timeout": "10s",
	"app.name":             "go-tally-extraction",
	"app.log_option":       "json",

	"tally.url":             "http://localhost:9000",
	"tally.company":         "Nimona",
	"tally.odbc_dsn":        "TallyODBC_9000",
	"tally.fy_start":        "20250401",
	"tally.fy_end":          "20260331",
	"tally.force_odbc":      false,
	"tally.transport_mode":  "auto",
	"tally.timeout":         "30s",
	"tally.probe_timeout":   "3s",
	"tally.voucher_timeout": "120s",
	"tally.retry_count":     1,
	"tally.retry_wait_time": "500ms",
	"tally.rate_limit":      0,
	"tally.rate_burst":      1,

	"cache.driver":           CacheDriverMemory,
	"cache.ttl":              "5m",
	"cache.cleanup_interval": "0s",

	"redis.host":     "localhost",
	"redis.port":     "6379",
	"redis.password": "",
	"redis.db":       0,
}

// Load reads `.env`, an optional config.{yaml,json} from the search paths, then environment
// variables named after the key path (tally.url -> TALLY_URL).
func Load(searchPaths ...string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	if len(searchPaths) == 0 {
		searchPaths = []string{"/config", ".", "./config"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
	}

	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)), func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}
