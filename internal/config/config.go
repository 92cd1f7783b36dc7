package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers understood by repositories.OpenStore.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds the settings of the storefront backend.
type Config struct {
	AppPort         string `validate:"required"`
	Store           StoreConfig
	RabbitMQURL     string
	LogLevel        string        `validate:"oneof=trace debug info warn error fatal panic"`
	LogFormat       string        `validate:"oneof=text json"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	Tracing         TracingConfig
}

// Trace exporters.
const (
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
	TraceExporterOTLP   = "otlp"
)

// TracingConfig selects where spans are exported. Tracing is off by default.
type TracingConfig struct {
	Exporter     string  `validate:"oneof=none stdout otlp"`
	OTLPEndpoint string  `validate:"required_if=Exporter otlp"`
	OTLPInsecure bool
	SampleRatio  float64 `validate:"gte=0,lte=1"`
	ServiceName  string  `validate:"required"`
}

// StoreConfig selects and addresses the clothing store.
type StoreConfig struct {
	Driver         string `validate:"oneof=mongo postgres sqlite memory"`
	MongoURI       string `validate:"required_if=Driver mongo"`
	MongoDatabase  string `validate:"required_if=Driver mongo"`
	Collection     string `validate:"required"`
	DSN            string
	ConnectTimeout time.Duration `validate:"gt=0"`
	CacheTTL       time.Duration `validate:"gte=0"`
	Redis          RedisConfig
}

// RedisConfig addresses the optional listing cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"gte=0"`
}

// CacheEnabled reports whether listings should go through Redis.
func (c StoreConfig) CacheEnabled() bool {
	return c.Redis.Addr != "" && c.CacheTTL > 0
}

// NewViper returns a viper instance with the storefront defaults that reads the environment.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", "")
	v.SetDefault("PORT", "5000")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "Clothely-ecommerce")
	v.SetDefault("CLOTHES_COLLECTION", "menclothes")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("CONNECT_TIMEOUT", "10s")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "0s")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("TRACE_EXPORTER", TraceExporterNone)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", true)
	v.SetDefault("TRACE_SAMPLE_RATIO", 1.0)
	v.SetDefault("OTEL_SERVICE_NAME", "clothly")
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads variables from the given .env files into the environment.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load builds and validates a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	appPort := v.GetString("APP_PORT")
	if appPort == "" {
		appPort = v.GetString("PORT")
	}
	if appPort != "" && !strings.Contains(appPort, ":") {
		appPort = ":" + appPort
	}

	cfg := &Config{
		AppPort: appPort,
		Store: StoreConfig{
			Driver:         strings.ToLower(v.GetString("STORE_DRIVER")),
			MongoURI:       v.GetString("MONGO_URI"),
			MongoDatabase:  v.GetString("MONGO_DATABASE"),
			Collection:     v.GetString("CLOTHES_COLLECTION"),
			DSN:            v.GetString("DATABASE_DSN"),
			ConnectTimeout: v.GetDuration("CONNECT_TIMEOUT"),
			CacheTTL:       v.GetDuration("CACHE_TTL"),
			Redis: RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
		},
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		Tracing: TracingConfig{
			Exporter:     strings.ToLower(v.GetString("TRACE_EXPORTER")),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			OTLPInsecure: v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
			SampleRatio:  v.GetFloat64("TRACE_SAMPLE_RATIO"),
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or malformed settings.
func (c *Config) Validate() error {
	var errs []error
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		for _, e := range validationErrors {
			errs = append(errs, fmt.Errorf("%s failed on the '%s' tag", e.Namespace(), e.Tag()))
		}
	}

	switch c.Store.Driver {
	case DriverPostgres, DriverSQLite:
		if c.Store.DSN == "" {
			errs = append(errs, fmt.Errorf("DATABASE_DSN is required for the %s driver", c.Store.Driver))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
