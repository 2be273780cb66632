package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type DBPool struct {
	MaxConns          int32         `envconfig:"DB_POOL_MAX_CONNS" default:"10"`
	MinConns          int32         `envconfig:"DB_POOL_MIN_CONNS" default:"0"`
	MaxConnLifetime   time.Duration `envconfig:"DB_POOL_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime   time.Duration `envconfig:"DB_POOL_MAX_CONN_IDLE_TIME" default:"30m"`
	HealthCheckPeriod time.Duration `envconfig:"DB_POOL_HEALTH_CHECK_PERIOD" default:"1m"`
}

// APIConfig serves GET /api/advocates.
type APIConfig struct {
	DBDSN       string `envconfig:"DB_DSN" required:"true"`
	DBPool
	Port        string `envconfig:"PORT" default:"8080"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9090"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	// inbound protection
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"50"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"100"`

	BreakerMaxFailures uint32        `envconfig:"BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenTimeout time.Duration `envconfig:"BREAKER_OPEN_TIMEOUT" default:"20s"`
}

// WebConfig serves the listing page.
type WebConfig struct {
	Port        string `envconfig:"PORT" default:"3000"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9091"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
}

// WorkerConfig ingests advocate upserts from SQS.
type WorkerConfig struct {
	DBDSN       string `envconfig:"DB_DSN" required:"true"`
	DBPool
	Port        string `envconfig:"PORT" default:"8081"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9092"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	// AWS / SQS
	AWSRegion          string `envconfig:"AWS_REGION" required:"true"`
	SQSQueueURL        string `envconfig:"SQS_QUEUE_URL" required:"true"`
	LocalstackEndpoint string `envconfig:"LOCALSTACK_ENDPOINT"`
	SQSWaitTime        int32  `envconfig:"SQS_WAIT_TIME" default:"20"`
	SQSMaxMsgs         int32  `envconfig:"SQS_MAX_MSGS" default:"10"`
	SQSVizTimeout      int32  `envconfig:"SQS_VISIBILITY_TIMEOUT" default:"60"`

	WorkerConcurrency int `envconfig:"WORKER_CONCURRENCY" default:"4"`

	// per pod write budget
	WriteRPS   float64 `envconfig:"WRITE_RPS" default:"20"`
	WriteBurst int     `envconfig:"WRITE_BURST" default:"20"`

	BreakerMaxFailures uint32        `envconfig:"BREAKER_MAX_FAILURES" default:"10"`
	BreakerOpenTimeout time.Duration `envconfig:"BREAKER_OPEN_TIMEOUT" default:"20s"`
}

// SeedConfig loads the demo advocates, through SQS by default.
type SeedConfig struct {
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	Direct bool   `envconfig:"SEED_DIRECT" default:"false"`
	DBDSN  string `envconfig:"DB_DSN"`

	AWSRegion          string `envconfig:"AWS_REGION"`
	SQSQueueURL        string `envconfig:"SQS_QUEUE_URL"`
	LocalstackEndpoint string `envconfig:"LOCALSTACK_ENDPOINT"`
}

func LoadAPI() APIConfig {
	var cfg APIConfig
	mustProcess(&cfg)
	return cfg
}

func LoadWeb() WebConfig {
	var cfg WebConfig
	mustProcess(&cfg)
	return cfg
}

func LoadWorker() WorkerConfig {
	var cfg WorkerConfig
	mustProcess(&cfg)
	return cfg
}

func LoadSeed() SeedConfig {
	var cfg SeedConfig
	mustProcess(&cfg)
	return cfg
}

func mustProcess(cfg any) {
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}
}
