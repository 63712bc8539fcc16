// Package config reads server settings from an optional .env file and the environment.
package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/redis"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Defaults
const (
	DefaultStoreBackend  = StoreFile
	DefaultDataFile      = "tamagotchi.json"
	DefaultRedisAddr     = "localhost:6379"
	DefaultGRPCPort      = 50051
	DefaultHTTPPort      = 8080
	DefaultDriftInterval = time.Hour
	DefaultEnvFile       = ".env"
)

// Config is everything the server needs to start
type Config struct {
	BotToken      string
	AdminIDs      []string
	StoreBackend  string
	DataFile      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTLS      bool
	GRPCPort      int
	HTTPPort      int
	DriftInterval time.Duration
	DailyCooldown time.Duration
	LogLevel      slog.Level
	LogFormat     string
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		StoreBackend:  DefaultStoreBackend,
		DataFile:      DefaultDataFile,
		RedisAddr:     DefaultRedisAddr,
		GRPCPort:      DefaultGRPCPort,
		HTTPPort:      DefaultHTTPPort,
		DriftInterval: DefaultDriftInterval,
		LogLevel:      slog.LevelInfo,
		LogFormat:     LogFormatText,
	}
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then builds a Config from it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read %s", envFile)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a variable lookup such as os.LookupEnv
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	vb := errors.NewValidationBuilder()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("BOT_TOKEN"); ok {
		cfg.BotToken = v
	}
	if v, ok := get("ADMIN_IDS"); ok {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.AdminIDs = append(cfg.AdminIDs, id)
			}
		}
	}
	if v, ok := get("STORE_BACKEND"); ok {
		cfg.StoreBackend = strings.ToLower(v)
	}
	if v, ok := get("DATA_FILE"); ok {
		cfg.DataFile = v
	}
	if v, ok := get("REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := get("REDIS_PASSWORD"); ok {
		cfg.RedisPassword = v
	}
	if v, ok := get("REDIS_DB"); ok {
		cfg.RedisDB = parseInt("REDIS_DB", v, vb)
	}
	if v, ok := get("REDIS_TLS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			vb.Fieldf("REDIS_TLS", "%q is not a boolean", v)
		}
		cfg.RedisTLS = b
	}
	if v, ok := get("GRPC_PORT"); ok {
		cfg.GRPCPort = parseInt("GRPC_PORT", v, vb)
	}
	if v, ok := get("HTTP_PORT"); ok {
		cfg.HTTPPort = parseInt("HTTP_PORT", v, vb)
	}
	if v, ok := get("DRIFT_INTERVAL"); ok {
		cfg.DriftInterval = parseDuration("DRIFT_INTERVAL", v, vb)
	}
	if v, ok := get("DAILY_COOLDOWN"); ok {
		cfg.DailyCooldown = parseDuration("DAILY_COOLDOWN", v, vb)
	}
	if v, ok := get("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			vb.Fieldf("LOG_LEVEL", "unknown level %q", v)
		}
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.LogFormat = strings.ToLower(v)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseInt(field, v string, vb *errors.ValidationBuilder) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		vb.Fieldf(field, "%q is not a number", v)
	}
	return n
}

// parseDuration accepts Go durations ("90m") and bare seconds ("3600")
func parseDuration(field, v string, vb *errors.ValidationBuilder) time.Duration {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		vb.Fieldf(field, "%q is not a duration", v)
	}
	return d
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("STORE_BACKEND", c.StoreBackend, []string{StoreMemory, StoreFile, StoreRedis}, vb)
	errors.ValidateEnum("LOG_FORMAT", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("HTTP_PORT", c.HTTPPort, 0, 65535, vb)

	switch c.StoreBackend {
	case StoreFile:
		errors.ValidateRequired("DATA_FILE", c.DataFile, vb)
	case StoreRedis:
		errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
		errors.ValidateRange("REDIS_DB", c.RedisDB, 0, 15, vb)
	}

	if c.DriftInterval <= 0 {
		vb.Field("DRIFT_INTERVAL", "must be positive")
	}
	if c.DailyCooldown < 0 {
		vb.Field("DAILY_COOLDOWN", "must not be negative")
	}

	return vb.Build()
}

// RedisOptions returns the client options for the redis store
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Password: c.RedisPassword,
		DB:       c.RedisDB,
		UseTLS:   c.RedisTLS,
	}
}

// NewLogger builds the process logger in the configured format and level
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
