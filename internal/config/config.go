// Package config provides configuration loading for the screener service.
// It uses a YAML file with environment variable overrides; .env files are
// loaded first via godotenv.
package config

import (
	"time"

	"github.com/humai-verify/screener/internal/domain"
)

// Default configuration values.
const (
	defaultServiceName     = "screener"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultConcurrency     = 10
	defaultBatchLimit      = 100
	defaultBatchRPS        = 50
	defaultDBPort          = 5432
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultDBConnLifetime  = 5 * time.Minute
	defaultLogLevel        = "info"
	defaultTrustDiscount   = 15
	defaultCriticalFloor   = 86
	defaultAlertThreshold  = 60
	defaultExplainMinScore = 31
)

// Config holds all configuration for the screener service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"SCREENER_PORT"        yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"            yaml:"debug"`
	Concurrency int    `env:"SCREENER_CONCURRENCY" yaml:"concurrency"`
	BatchLimit  int    `yaml:"batch_limit"`
	BatchRPS    int    `yaml:"batch_rps"`
}

// DatabaseConfig holds the optional lexicon database configuration.
// When Host is empty the service runs on the embedded lexicon alone.
type DatabaseConfig struct {
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// Enabled reports whether a lexicon database was configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

// AnalysisConfig holds the tunable scoring model: per-factor combination
// weights, alert thresholds, and the trust-override parameters.
type AnalysisConfig struct {
	// Weights is the per-factor contribution weight applied to each factor
	// score before summing. The sum of weighted scores clamps to [0,100].
	Weights map[domain.Factor]float64 `yaml:"weights"`
	// AlertThresholds is the per-factor score above which an alert fires.
	AlertThresholds map[domain.Factor]int `yaml:"alert_thresholds"`
	// ExplainMinScore is the factor score at which explanations and
	// detailed recommendations are produced.
	ExplainMinScore int `yaml:"explain_min_score"`
	// TrustDiscount is the number of points subtracted from the overall
	// score when the source domain is trusted and not a job portal.
	TrustDiscount int `yaml:"trust_discount"`
	// CriticalFloor is the minimum overall score enforced when any single
	// factor scores at or above it.
	CriticalFloor int `yaml:"critical_floor"`
	// DisableGenericRecommendations suppresses the general safety guidance
	// appended when no factor produced a detailed recommendation and risk
	// is low or medium.
	DisableGenericRecommendations bool `yaml:"disable_generic_recommendations"`
}

// SetDefaults applies default values to any unset fields.
func (c *Config) SetDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = defaultServiceVersion
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServicePort
	}
	if c.Service.Concurrency == 0 {
		c.Service.Concurrency = defaultConcurrency
	}
	if c.Service.BatchLimit == 0 {
		c.Service.BatchLimit = defaultBatchLimit
	}
	if c.Service.BatchRPS == 0 {
		c.Service.BatchRPS = defaultBatchRPS
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = defaultDBSSLMode
	}
	if c.Database.MaxConnections == 0 {
		c.Database.MaxConnections = defaultDBMaxConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaultDBMaxIdleConns
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = defaultDBConnLifetime
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if len(c.Analysis.Weights) == 0 {
		c.Analysis.Weights = DefaultWeights()
	}
	if len(c.Analysis.AlertThresholds) == 0 {
		c.Analysis.AlertThresholds = DefaultAlertThresholds()
	}
	if c.Analysis.ExplainMinScore == 0 {
		c.Analysis.ExplainMinScore = defaultExplainMinScore
	}
	if c.Analysis.TrustDiscount == 0 {
		c.Analysis.TrustDiscount = defaultTrustDiscount
	}
	if c.Analysis.CriticalFloor == 0 {
		c.Analysis.CriticalFloor = defaultCriticalFloor
	}
}

// DefaultWeights returns the default combination weight table. Weights favor
// the higher-severity factors (compensation realism, contact isolation and
// trafficking-keyword title/description hits) over secondary signals.
func DefaultWeights() map[domain.Factor]float64 {
	return map[domain.Factor]float64{
		domain.FactorTitle:        0.30,
		domain.FactorCompany:      0.18,
		domain.FactorDescription:  0.25,
		domain.FactorRequirements: 0.15,
		domain.FactorCompensation: 0.35,
		domain.FactorContact:      0.30,
		domain.FactorPlatform:     0.12,
		domain.FactorEmail:        0.12,
		domain.FactorURL:          0.15,
	}
}

// DefaultAlertThresholds returns the default per-factor alert thresholds.
func DefaultAlertThresholds() map[domain.Factor]int {
	thresholds := make(map[domain.Factor]int, len(domain.AllFactors))
	for _, f := range domain.AllFactors {
		thresholds[f] = defaultAlertThreshold
	}
	return thresholds
}
