package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

type ServerConfig struct {
	Address     string `mapstructure:"address"`
	Environment string `mapstructure:"environment"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	// ReportURLExpiry is how long a report download link stays valid.
	ReportURLExpiry time.Duration `mapstructure:"report_url_expiry"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"` // empty: stdout only
	Stdout bool   `mapstructure:"stdout"`
}

type SentryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// TracingConfig selects the OTLP collector spans are exported to. Disabled by default.
type TracingConfig struct {
	Enabled     bool              `mapstructure:"enabled"`
	ServiceName string            `mapstructure:"service_name"`
	Endpoint    string            `mapstructure:"endpoint"`
	Insecure    bool              `mapstructure:"insecure"`
	Headers     map[string]string `mapstructure:"headers"`
}

// AnalyticsConfig sizes the ACWR history windows and the result cache.
type AnalyticsConfig struct {
	DashboardWindowDays  int           `mapstructure:"dashboard_window_days"`
	MonitoringWindowDays int           `mapstructure:"monitoring_window_days"`
	CacheSizeMB          int           `mapstructure:"cache_size_mb"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
}

var defaults = map[string]any{
	"server.address":                   ":8080",
	"server.environment":               "development",
	"database.uri":                     "mongodb://localhost:27017",
	"database.name":                    "athlete_tracker",
	"s3.endpoint":                      "",
	"s3.region":                        "us-east-1",
	"s3.access_key_id":                 "",
	"s3.secret_access_key":             "",
	"s3.bucket_name":                   "athlete-reports",
	"s3.use_ssl":                       true,
	"s3.report_url_expiry":             "15m",
	"jwt.secret":                       "",
	"jwt.expiration":                   "1h",
	"log.level":                        "info",
	"log.json":                         false,
	"log.file":                         "",
	"log.stdout":                       true,
	"sentry.enabled":                   false,
	"sentry.dsn":                       "",
	"metrics.namespace":                "athlete_tracker",
	"metrics.subsystem":                "api",
	"tracing.enabled":                  false,
	"tracing.service_name":             "athlete-tracker",
	"tracing.endpoint":                 "",
	"tracing.insecure":                 false,
	"analytics.dashboard_window_days":  90,
	"analytics.monitoring_window_days": 60,
	"analytics.cache_size_mb":          32,
	"analytics.cache_ttl":              "10m",
}

// LoadConfig reads configuration from config.yaml in path, overridden by environment variables.
// Nested keys map to env names with dots replaced by underscores, e.g. jwt.secret -> JWT_SECRET.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Every key needs a default, otherwise Unmarshal ignores its env override.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	return config, config.validate()
}

func (c Config) validate() error {
	if c.Analytics.DashboardWindowDays <= 0 || c.Analytics.MonitoringWindowDays <= 0 {
		return errors.New("analytics windows must be positive")
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return errors.New("tracing needs a service name")
	}
	if c.Analytics.CacheSizeMB <= 0 {
		return errors.New("analytics cache size must be positive")
	}
	return nil
}
