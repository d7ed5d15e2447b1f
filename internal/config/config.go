package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DataSource selects where content endpoints are served from.
type DataSource int

const (
	// Mock routes content calls to the same-origin mock endpoints.
	Mock DataSource = iota
	// Live routes content calls to the external backend.
	Live
)

func (d DataSource) String() string {
	if d == Live {
		return "live"
	}
	return "mock"
}

// CacheBackend names the cache store implementation.
type CacheBackend string

const (
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
)

// Config aggregates application configuration values.
type Config struct {
	API      APIConfig
	Cache    CacheConfig
	HTTP     HTTPConfig
	Logging  LoggingConfig
	Telegram TelegramConfig
	OpenAI   OpenAIConfig
}

// APIConfig describes the remote backend and the same-origin site.
type APIConfig struct {
	BaseURL             string
	UseExternalBackend  bool
	ExternalBackendHost string
	SiteURL             string
	Timeout             time.Duration
	// Source is resolved once from the fields above.
	Source DataSource
}

type CacheConfig struct {
	Backend       CacheBackend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// HTTPConfig governs the HTTP server.
type HTTPConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string // console|json
	File   string
}

type TelegramConfig struct {
	Token string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

const (
	defaultBaseURL             = "https://api.xrpl.sale/v1"
	defaultExternalBackendHost = "api.xrpl.sale"
	defaultTimeout             = 10 * time.Second
	defaultHost                = "0.0.0.0"
	defaultPort                = 8080
	defaultShutdownTimeout     = 10 * time.Second
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
	defaultOpenAIModel         = "gpt-4o-mini"
)

// Load reads the optional .env file and the environment, applying defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: ignoring .env: %v", err)
	}

	cfg := Config{
		API: APIConfig{
			BaseURL:             strings.TrimRight(valueOrDefault("API_BASE_URL", defaultBaseURL), "/"),
			ExternalBackendHost: valueOrDefault("EXTERNAL_BACKEND_HOST", defaultExternalBackendHost),
		},
		Cache: CacheConfig{
			Backend:       CacheBackend(strings.ToLower(valueOrDefault("CACHE_BACKEND", string(CacheMemory)))),
			RedisAddr:     valueOrDefault("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
		},
		HTTP: HTTPConfig{
			Host: valueOrDefault("SERVER_HOST", defaultHost),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLogLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLogFormat),
			File:   os.Getenv("LOG_FILE"),
		},
		Telegram: TelegramConfig{
			Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  valueOrDefault("OPENAI_MODEL", defaultOpenAIModel),
		},
	}

	var err error
	if cfg.API.Timeout, err = parseDurationWithDefault("GATEWAY_TIMEOUT", defaultTimeout); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.ShutdownTimeout, err = parseDurationWithDefault("SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.Port, err = parsePort("SERVER_PORT", defaultPort); err != nil {
		return Config{}, err
	}
	if cfg.API.UseExternalBackend, err = parseBoolWithDefault("USE_EXTERNAL_BACKEND", false); err != nil {
		return Config{}, err
	}
	if cfg.Cache.RedisDB, err = parseIntWithDefault("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	// The same-origin routes are served by this process unless SITE_URL says
	// otherwise.
	cfg.API.SiteURL = strings.TrimRight(valueOrDefault("SITE_URL", fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)), "/")

	switch cfg.Cache.Backend {
	case CacheMemory, CacheRedis:
	default:
		return Config{}, fmt.Errorf("invalid CACHE_BACKEND %q", cfg.Cache.Backend)
	}

	cfg.API.Source = ResolveDataSource(cfg.API.UseExternalBackend, cfg.API.BaseURL, cfg.API.ExternalBackendHost)
	return cfg, nil
}

// ResolveDataSource returns Live only when the external backend is enabled and
// the base URL points at the expected host.
func ResolveDataSource(useExternal bool, baseURL, expectedHost string) DataSource {
	if !useExternal {
		return Mock
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return Mock
	}
	if !strings.EqualFold(u.Hostname(), expectedHost) {
		return Mock
	}
	return Live
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	val, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return val, nil
}

func parseIntWithDefault(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return val, nil
}

func parseDurationWithDefault(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
