package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	AuthServiceURL string `env:"AUTH_SERVICE_URL,required"`
	ClientsAPI     ClientsAPI
	Query          Query
	Redis          Redis
	Kafka          Kafka
	Jobs           Jobs
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN,required"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

// ClientsAPI describes the backend that owns client records.
type ClientsAPI struct {
	BaseURL       string        `env:"CLIENTS_API_URL,required"`
	Timeout       time.Duration `env:"CLIENTS_API_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"CLIENTS_API_RETRY_ATTEMPTS" envDefault:"0"`

	// BreakerThreshold consecutive failures open the circuit. 0 disables the breaker.
	BreakerThreshold uint32        `env:"CLIENTS_API_BREAKER_THRESHOLD" envDefault:"5"`
	BreakerTimeout   time.Duration `env:"CLIENTS_API_BREAKER_TIMEOUT" envDefault:"30s"`
}

type Query struct {
	Backend    string        `env:"QUERY_CACHE_BACKEND" envDefault:"memory"`
	StaleTime  time.Duration `env:"QUERY_STALE_TIME" envDefault:"0s"`
	GCTime     time.Duration `env:"QUERY_GC_TIME" envDefault:"5m"`
	Retry      int           `env:"QUERY_RETRY" envDefault:"3"`
	RetryDelay time.Duration `env:"QUERY_RETRY_DELAY" envDefault:"1s"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Prefix   string `env:"REDIS_KEY_PREFIX" envDefault:"dashboard:query:"`
}

type Kafka struct {
	Enabled           bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers           []string `env:"KAFKA_BROKERS"`
	ConsumerID        string   `env:"KAFKA_CONSUMER_ID" envDefault:"dashboard"`
	ClientEventsTopic string   `env:"KAFKA_CLIENT_EVENTS_TOPIC" envDefault:"clients.changed"`
	AuditTopic        string   `env:"KAFKA_AUDIT_TOPIC" envDefault:"dashboard.audit"`
}

type Jobs struct {
	CacheCleanupInterval time.Duration `env:"JOB_CACHE_CLEANUP_INTERVAL" envDefault:"1m"`
	AuditRetention       time.Duration `env:"AUDIT_RETENTION" envDefault:"2160h"`
	AuditCleanupInterval time.Duration `env:"JOB_AUDIT_CLEANUP_INTERVAL" envDefault:"24h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
