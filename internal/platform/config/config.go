package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrInvalid = errors.New("invalid config")

// Config es la configuración del explorer y de vetctl.
type Config struct {
	Addr string

	// Vetmanager
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// 0 deshabilita la cache: cada relación pega a la API.
	CacheTTL time.Duration
	RedisURL string

	DBDSN          string
	JournalEnabled bool

	// Tracing: sin endpoint los spans no se exportan.
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceSampleRate float64
	ServiceName     string
}

// FromEnv lee la config del proceso.
func FromEnv() (Config, error) {
	return FromLookup(os.Getenv)
}

// FromLookup es FromEnv con otra fuente (tests, flags).
func FromLookup(get func(string) string) (Config, error) {
	cfg := Config{
		Addr:           ":8080",
		BaseURL:        strings.TrimRight(strings.TrimSpace(get("VETMANAGER_BASE_URL")), "/"),
		APIKey:         strings.TrimSpace(get("VETMANAGER_API_KEY")),
		Timeout:        10 * time.Second,
		RedisURL:       strings.TrimSpace(get("REDIS_URL")),
		DBDSN:          strings.TrimSpace(get("DB_DSN")),
		JournalEnabled: true,

		OTLPEndpoint:    strings.TrimSpace(get("OTEL_EXPORTER_OTLP_ENDPOINT")),
		TraceSampleRate: 1,
		ServiceName:     strings.TrimSpace(get("OTEL_SERVICE_NAME")),
	}

	if v := strings.TrimSpace(get("PORT")); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%w: PORT=%q", ErrInvalid, v)
		}
		cfg.Addr = ":" + v
	}

	var err error
	if cfg.Timeout, err = duration(get, "VETMANAGER_TIMEOUT", cfg.Timeout); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = duration(get, "GATEWAY_CACHE_TTL", 0); err != nil {
		return Config{}, err
	}

	if v := strings.TrimSpace(get("JOURNAL_ENABLED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: JOURNAL_ENABLED=%q", ErrInvalid, v)
		}
		cfg.JournalEnabled = b
	}

	if v := strings.TrimSpace(get("OTEL_EXPORTER_OTLP_INSECURE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: OTEL_EXPORTER_OTLP_INSECURE=%q", ErrInvalid, v)
		}
		cfg.OTLPInsecure = b
	}
	if v := strings.TrimSpace(get("OTEL_TRACES_SAMPLE_RATE")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			return Config{}, fmt.Errorf("%w: OTEL_TRACES_SAMPLE_RATE=%q", ErrInvalid, v)
		}
		cfg.TraceSampleRate = f
	}

	return cfg, nil
}

// Validate exige lo necesario para hablar con Vetmanager.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: VETMANAGER_BASE_URL is required", ErrInvalid)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: VETMANAGER_API_KEY is required", ErrInvalid)
	}
	return nil
}

func duration(get func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(get(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
	}
	return d, nil
}
