// Package config loads the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable except ALCHEMY_API_KEY.
const Prefix = "AETHERSIGHT"

// ErrUnknownCacheBackend is returned by Load for CACHE_BACKEND values other
// than file, memory, redis and leveldb.
var ErrUnknownCacheBackend = errors.New("unknown cache backend")

// CacheBackend selects where fetched blocks are kept.
type CacheBackend string

const (
	CacheFile    CacheBackend = "file"
	CacheMemory  CacheBackend = "memory"
	CacheRedis   CacheBackend = "redis"
	CacheLevelDB CacheBackend = "leveldb"
)

// Config is the whole process configuration.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	HTTPAddr          string `envconfig:"HTTP_ADDR" default:":8080"`
	CORSAllowedOrigin string `envconfig:"CORS_ALLOWED_ORIGIN" default:"*"`

	// APIKey is read from the unprefixed ALCHEMY_API_KEY. An empty key is
	// not a load error; block fetches fail with a configuration error.
	APIKey          string        `ignored:"true"`
	ProviderURL     string        `envconfig:"PROVIDER_URL" default:"https://eth-mainnet.g.alchemy.com/v2"`
	ProviderTimeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
	ExplorerURL     string        `envconfig:"EXPLORER_URL" default:"https://etherscan.io"`
	ViewWidth       float64       `envconfig:"VIEW_WIDTH" default:"1200"`
	ViewHeight      float64       `envconfig:"VIEW_HEIGHT" default:"800"`
	CacheBackend    CacheBackend  `envconfig:"CACHE_BACKEND" default:"file"`
	DataDir         string        `envconfig:"DATA_DIR" default:"./data"`
	LevelDBPath     string        `envconfig:"LEVELDB_PATH" default:"./data/blocks.ldb"`
	Redis           Redis         `envconfig:"REDIS"`
	Kafka           Kafka         `envconfig:"KAFKA"`
	Telemetry       Telemetry     `envconfig:"TELEMETRY"`
}

// Redis holds the Redis cache connection settings.
type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// Kafka holds the edge export settings.
type Kafka struct {
	Brokers []string `envconfig:"BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"TOPIC" default:"aethersight.edges"`
}

// Telemetry holds the OpenTelemetry settings.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"aethersight"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	var key struct {
		APIKey string `envconfig:"ALCHEMY_API_KEY"`
	}
	if err := envconfig.Process("", &key); err != nil {
		return Config{}, err
	}
	cfg.APIKey = key.APIKey

	cfg.CacheBackend = CacheBackend(strings.ToLower(string(cfg.CacheBackend)))
	switch cfg.CacheBackend {
	case CacheFile, CacheMemory, CacheRedis, CacheLevelDB:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, string(cfg.CacheBackend))
	}

	return cfg, nil
}

// ProviderEndpoint returns the JSON-RPC URL for the configured provider:
// the provider URL with the API key as the last path segment. Without a key
// the bare provider URL is returned.
func (c Config) ProviderEndpoint() string {
	base := strings.TrimRight(c.ProviderURL, "/")
	if c.APIKey == "" {
		return base
	}

	return base + "/" + c.APIKey
}
