package config

import (
	"strings"
	"time"

	"marketplace/internal/domain/constants"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTokenTTL     = 60 * time.Minute
	defaultMetricsPath        = "/metrics"
	defaultSlowQuery          = 200 * time.Millisecond
	defaultPoolWaitWarn       = 50 * time.Millisecond
	defaultPoolMonitor        = 5 * time.Second
)

// Config is the whole service configuration, read from config.yaml and
// overridden by environment variables.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Policy *PolicyConfig `json:"policy" yaml:"policy"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig tunes query logging and connection pool monitoring.
type DatabaseConfig struct {
	SlowQueryThreshold    time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`
	PoolMonitorInterval   time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// MigrationConfig controls the embedded schema migrations applied at startup.
type MigrationConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	DatabaseURL string `json:"databaseUrl" yaml:"databaseUrl"`
}

type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	// AdminEmails register with the admin role instead of client.
	AdminEmails []string `json:"adminEmails" yaml:"adminEmails"`
}

type PolicyConfig struct {
	// TagCreate is "authenticated" or "admin".
	TagCreate string `json:"tagCreate" yaml:"tagCreate"`
}

// RateLimitConfig limits requests per client IP on the credential routes.
type RateLimitConfig struct {
	Auth struct {
		Enabled           bool          `json:"enabled" yaml:"enabled"`
		RequestsPerMinute int           `json:"requestsPerMinute" yaml:"requestsPerMinute"`
		Burst             int           `json:"burst" yaml:"burst"`
		CleanupInterval   time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
	} `json:"auth" yaml:"auth"`
}

type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL prefixes the storefront link encoded in the QR image.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig selects where catalog events go: "none", "local" (HTTP push)
// or "google".
type PubSubConfig struct {
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// New loads config.yaml with environment overrides. A .env file in the
// working directory, when present, is read into the environment first.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects settings the service cannot run with.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access must be provided")
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Policy == nil {
		cfg.Policy = &PolicyConfig{}
	}
	switch cfg.Policy.TagCreate {
	case "":
		cfg.Policy.TagCreate = constants.TagCreatePolicyAuthenticated
	case constants.TagCreatePolicyAuthenticated, constants.TagCreatePolicyAdmin:
	default:
		return errors.Errorf("unknown policy.tagCreate value: %s", cfg.Policy.TagCreate)
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	setDuration(&cfg.Database.SlowQueryThreshold, defaultSlowQuery)
	setDuration(&cfg.Database.PoolWaitWarnThreshold, defaultPoolWaitWarn)
	setDuration(&cfg.Database.PoolMonitorInterval, defaultPoolMonitor)

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	return nil
}

func setDuration(d *time.Duration, fallback time.Duration) {
	if *d <= 0 {
		*d = fallback
	}
}
