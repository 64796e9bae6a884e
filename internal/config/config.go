package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Mongo Config
	MongoURI      string        `env:"MONGO_URI"`
	MongoDatabase string        `env:"MONGO_DATABASE" envDefault:"geofence"`
	MongoTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	// Redis Config
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	RegionCacheTTL time.Duration `env:"REGION_CACHE_TTL" envDefault:"5m"`
	LockTTL        time.Duration `env:"LOCK_TTL" envDefault:"10s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// NATS Config
	NATSURL           string `env:"NATS_URL"`
	NATSSubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"alerts"`

	// Geofence Config
	GeofenceConcurrency   int           `env:"GEOFENCE_CONCURRENCY" envDefault:"8"`
	GeofenceRegionTimeout time.Duration `env:"GEOFENCE_REGION_TIMEOUT" envDefault:"2s"`
	NotifyTimeout         time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
	MaxSampleSkew         time.Duration `env:"MAX_SAMPLE_SKEW" envDefault:"2m"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		StoreDriver:            strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		MongoURI:               os.Getenv("MONGO_URI"),
		MongoDatabase:          getEnv("MONGO_DATABASE", "geofence"),
		MongoTimeout:           getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		RegionCacheTTL:         getEnvAsDuration("REGION_CACHE_TTL", 5*time.Minute),
		LockTTL:                getEnvAsDuration("LOCK_TTL", 10*time.Second),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		NATSURL:                os.Getenv("NATS_URL"),
		NATSSubjectPrefix:      getEnv("NATS_SUBJECT_PREFIX", "alerts"),
		GeofenceConcurrency:    getEnvAsInt("GEOFENCE_CONCURRENCY", 8),
		GeofenceRegionTimeout:  getEnvAsDuration("GEOFENCE_REGION_TIMEOUT", 2*time.Second),
		NotifyTimeout:          getEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second),
		MaxSampleSkew:          getEnvAsDuration("MAX_SAMPLE_SKEW", 2*time.Minute),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		APIKeys:                getEnvAsList("API_KEYS"),
		CORSOrigins:            getEnvAsList("CORS_ORIGINS"),
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StoreDriverMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
