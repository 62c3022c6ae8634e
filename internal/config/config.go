package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

type (
	Config struct {
		App   App   `json:"app"`
		Tally Tally `json:"tally"`
		Cache Cache `json:"cache"`
		Redis Redis `json:"redis"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
	}

	// Tally describes how to reach the accounting engine and which company to read.
	Tally struct {
		URL            string        `json:"url"`
		Company        string        `json:"company"`
		ODBCDSN        string        `json:"odbc_dsn"`
		FYStart        string        `json:"fy_start"`
		FYEnd          string        `json:"fy_end"`
		ForceODBC      bool          `json:"force_odbc"`
		TransportMode  string        `json:"transport_mode"`
		Timeout        time.Duration `json:"timeout"`
		ProbeTimeout   time.Duration `json:"probe_timeout"`
		VoucherTimeout time.Duration `json:"voucher_timeout"`
		RetryCount     int           `json:"retry_count"`
		RetryWaitTime  time.Duration `json:"retry_wait_time"`
		// RateLimit is requests per second against the XML API; zero disables pacing.
		RateLimit float64 `json:"rate_limit"`
		RateBurst int     `json:"rate_burst"`
	}

	Cache struct {
		Driver          string        `json:"driver"`
		TTL             time.Duration `json:"ttl"`
		CleanupInterval time.Duration `json:"cleanup_interval"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Mode resolves the configured transport policy. The legacy force flag wins over the mode name.
func (t Tally) Mode() (models.TransportMode, error) {
	if t.ForceODBC {
		return models.TransportModeODBC, nil
	}
	return models.ParseTransportMode(t.TransportMode)
}

// CompanyContext builds the initial company scope of the facade.
func (t Tally) CompanyContext() (models.CompanyContext, error) {
	from, err := models.ParseTallyDate(t.FYStart)
	if err != nil {
		return models.CompanyContext{}, fmt.Errorf("tally.fy_start: %w", err)
	}
	to, err := models.ParseTallyDate(t.FYEnd)
	if err != nil {
		return models.CompanyContext{}, fmt.Errorf("tally.fy_end: %w", err)
	}
	mode, err := t.Mode()
	if err != nil {
		return models.CompanyContext{}, err
	}
	cc := models.CompanyContext{Company: strings.TrimSpace(t.Company), FYStart: from, FYEnd: to, Mode: mode}
	return cc, cc.Validate()
}

func (c Config) Validate() error {
	if _, err := c.Tally.CompanyContext(); err != nil {
		return err
	}
	if c.Tally.RetryCount < 0 {
		return fmt.Errorf("%w: tally.retry_count must not be negative", models.ErrInvalidParameter)
	}
	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("%w: unknown cache driver %q", models.ErrInvalidParameter, c.Cache.Driver)
	}
	return nil
}
