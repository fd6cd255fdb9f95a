// Package config provides configuration management for idfgen.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	Defaults     DefaultsConfig     `mapstructure:"defaults"`
	Geometry     GeometryConfig     `mapstructure:"geometry"`
	HVAC         HVACConfig         `mapstructure:"hvac"`
	Determinism  DeterminismConfig  `mapstructure:"determinism"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
	Weather      WeatherConfig      `mapstructure:"weather"`
	SiteResolver SiteResolverConfig `mapstructure:"site_resolver"`
}

// DefaultsConfig points at the versioned building-type/construction
// defaults library (C2).
type DefaultsConfig struct {
	LibraryVersion string `mapstructure:"library_version"`
	LibraryPath    string `mapstructure:"library_path"`
}

// GeometryConfig tunes the zoning grid engine (C4).
type GeometryConfig struct {
	TargetCellAreaM2      float64 `mapstructure:"target_cell_area_m2"`
	MinCellAreaM2         float64 `mapstructure:"min_cell_area_m2"`
	MinCoverageFraction   float64 `mapstructure:"min_coverage_fraction"`
	MaxGridHalvings       int     `mapstructure:"max_grid_halvings"`
	DefaultCeilingHeightM float64 `mapstructure:"default_ceiling_height_m"`
}

// HVACConfig tunes the HVAC topology engine (C6).
type HVACConfig struct {
	CoolingWm2               float64  `mapstructure:"cooling_wm2"`
	HeatingWm2               float64  `mapstructure:"heating_wm2"`
	SupplyAirM3sm2           float64  `mapstructure:"supply_air_m3sm2"`
	ERVClimateZones          []string `mapstructure:"erv_climate_zones"`
	HumidEconomizerZones     []string `mapstructure:"humid_economizer_climate_zones"`
	ERVSensibleEffectiveness float64  `mapstructure:"erv_sensible_effectiveness"`
	ERVLatentEffectiveness   float64  `mapstructure:"erv_latent_effectiveness"`
	DCVBuildingTypes         []string `mapstructure:"dcv_building_types"`
	CHPProvidesPercentMin    float64  `mapstructure:"chp_provides_percent_min"`
	CHPProvidesPercentMax    float64  `mapstructure:"chp_provides_percent_max"`
}

// DeterminismConfig seeds the per-invocation PRNG.
type DeterminismConfig struct {
	SeedSalt string `mapstructure:"seed_salt"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	OutputPaths []string `mapstructure:"output_paths"`
	ErrorPaths  []string `mapstructure:"error_paths"`
	Development bool     `mapstructure:"development"`
	Sampling    bool     `mapstructure:"sampling"`
}

// DatabaseConfig contains the GenerationRecord persistence connection.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig contains the defaults/site-resolution cache connection.
type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	Database     int           `mapstructure:"database"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PoolSize     int           `mapstructure:"pool_size"`
	TTL          time.Duration `mapstructure:"ttl"`
}

// MetricsConfig contains Prometheus exposition settings.
type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	PrometheusPort int  `mapstructure:"prometheus_port"`
}

// WeatherConfig selects and configures the active WeatherStore backend.
type WeatherConfig struct {
	Backend         string `mapstructure:"backend"` // "s3" | "azblob" | "gcs"
	S3Bucket        string `mapstructure:"s3_bucket"`
	AzureServiceURL string `mapstructure:"azure_service_url"`
	AzureContainer  string `mapstructure:"azure_container"`
	GCSBucket       string `mapstructure:"gcs_bucket"`
}

// SiteResolverConfig rate-limits calls into the external SiteResolver
// during batch runs.
type SiteResolverConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load loads configuration from files and environment variables.
func Load() (*Config, error) {
	viper.SetDefault("defaults.library_version", "2024.1")
	viper.SetDefault("defaults.library_path", "./defaults")

	viper.SetDefault("geometry.target_cell_area_m2", 100.0)
	viper.SetDefault("geometry.min_cell_area_m2", 5.0)
	viper.SetDefault("geometry.min_coverage_fraction", 0.40)
	viper.SetDefault("geometry.max_grid_halvings", 1)
	viper.SetDefault("geometry.default_ceiling_height_m", 3.0)

	viper.SetDefault("hvac.cooling_wm2", 60.0)
	viper.SetDefault("hvac.heating_wm2", 50.0)
	viper.SetDefault("hvac.supply_air_m3sm2", 0.005)
	viper.SetDefault("hvac.erv_climate_zones", []string{"C1", "C2", "C3", "C6", "C7", "C8"})
	viper.SetDefault("hvac.humid_economizer_climate_zones", []string{"C1", "C2", "C5"})
	viper.SetDefault("hvac.erv_sensible_effectiveness", 0.70)
	viper.SetDefault("hvac.erv_latent_effectiveness", 0.65)
	viper.SetDefault("hvac.dcv_building_types", []string{"Office", "School", "Retail"})
	viper.SetDefault("hvac.chp_provides_percent_min", 20.0)
	viper.SetDefault("hvac.chp_provides_percent_max", 70.0)

	viper.SetDefault("determinism.seed_salt", "idfgen-v1")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output_paths", []string{"stdout"})
	viper.SetDefault("logging.error_paths", []string{"stderr"})
	viper.SetDefault("logging.development", false)
	viper.SetDefault("logging.sampling", true)

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.username", "idfgen")
	viper.SetDefault("database.database", "idfgen")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 2)
	viper.SetDefault("database.conn_max_lifetime", "300s")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.database", 0)
	viper.SetDefault("redis.dial_timeout", "5s")
	viper.SetDefault("redis.read_timeout", "3s")
	viper.SetDefault("redis.write_timeout", "3s")
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.ttl", "24h")

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.prometheus_port", 9090)

	viper.SetDefault("weather.backend", "s3")

	viper.SetDefault("site_resolver.requests_per_second", 5.0)
	viper.SetDefault("site_resolver.burst", 10)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/idfgen")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("IDFGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideWithEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) {
	if p := os.Getenv("IDFGEN_DATABASE_PASSWORD"); p != "" {
		cfg.Database.Password = p
	}
	if p := os.Getenv("IDFGEN_REDIS_PASSWORD"); p != "" {
		cfg.Redis.Password = p
	}
}

func validate(cfg *Config) error {
	if cfg.Geometry.TargetCellAreaM2 <= 0 {
		return fmt.Errorf("geometry.target_cell_area_m2 must be positive")
	}
	if cfg.Geometry.MinCoverageFraction <= 0 || cfg.Geometry.MinCoverageFraction > 1 {
		return fmt.Errorf("geometry.min_coverage_fraction must be in (0, 1]")
	}
	if cfg.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}
	switch cfg.Weather.Backend {
	case "s3", "azblob", "gcs":
	default:
		return fmt.Errorf("weather.backend must be one of s3, azblob, gcs, got %q", cfg.Weather.Backend)
	}
	return nil
}

// DatabaseDSN returns the postgres connection string for the
// GenerationRecord store.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.Username,
		c.Database.Password, c.Database.Database, c.Database.SSLMode,
	)
}

// RedisAddress returns the cache connection address.
func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// CreateLogger builds a zap logger from the Logging section.
func (c *Config) CreateLogger() (*zap.Logger, error) {
	var zcfg zap.Config
	if c.Logging.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", c.Logging.Level, err)
	}
	zcfg.Level = level
	zcfg.OutputPaths = c.Logging.OutputPaths
	zcfg.ErrorOutputPaths = c.Logging.ErrorPaths
	if c.Logging.Format == "console" {
		zcfg.Encoding = "console"
	} else {
		zcfg.Encoding = "json"
	}
	if !c.Logging.Sampling {
		zcfg.Sampling = nil
	}
	return zcfg.Build()
}
