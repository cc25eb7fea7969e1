package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string         `mapstructure:"environment"`
	LogLevel    string         `mapstructure:"log_level"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	SEC         SECConfig      `mapstructure:"sec"`
	Polygon     PolygonConfig  `mapstructure:"polygon"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Refresh     RefreshConfig  `mapstructure:"refresh"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SECConfig configures the EDGAR companyfacts client. The SEC requires a
// descriptive User-Agent and allows roughly 10 requests per second.
type SECConfig struct {
	BaseURL       string  `mapstructure:"base_url"`
	UserAgent     string  `mapstructure:"user_agent"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Timeout       int     `mapstructure:"timeout"`
}

type PolygonConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key" json:"-" yaml:"-"`
	Timeout int    `mapstructure:"timeout"`
}

type CacheConfig struct {
	PriceTTL   string `mapstructure:"price_ttl"`
	FilingTTL  string `mapstructure:"filing_ttl"`
	WrappedTTL string `mapstructure:"wrapped_ttl"`
	// SweepSchedule is a cron expression for the expired-row sweep.
	SweepSchedule string `mapstructure:"sweep_schedule"`
}

type RefreshConfig struct {
	// Interval paces bulk registry refreshes to respect provider rate limits.
	Interval string `mapstructure:"interval"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("polygon.api_key", "POLYGON_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind POLYGON_API_KEY environment variable: %w", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Environment = strings.ToLower(config.Environment)

	if config.Environment != "development" && config.Polygon.APIKey == "" {
		return nil, errors.New("POLYGON_API_KEY environment variable is required in non-development environments")
	}

	if config.SEC.UserAgent == "" {
		return nil, errors.New("sec.user_agent must identify the caller per SEC fair-access policy")
	}

	for name, val := range map[string]string{
		"cache.price_ttl":   config.Cache.PriceTTL,
		"cache.filing_ttl":  config.Cache.FilingTTL,
		"cache.wrapped_ttl": config.Cache.WrappedTTL,
		"refresh.interval":  config.Refresh.Interval,
	} {
		if _, err := time.ParseDuration(val); err != nil {
			return nil, fmt.Errorf("invalid duration for %s: %w", name, err)
		}
	}

	return &config, nil
}

// Duration parses a duration field that Load already validated.
func Duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func setDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.dbname", "finwrapped")
	viper.SetDefault("database.sslmode", "disable")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("sec.base_url", "https://data.sec.gov")
	viper.SetDefault("sec.user_agent", "FinancialWrapped contact@example.com")
	viper.SetDefault("sec.rate_per_second", 10.0)
	viper.SetDefault("sec.timeout", 30)

	viper.SetDefault("polygon.base_url", "https://api.polygon.io")
	viper.SetDefault("polygon.api_key", "")
	viper.SetDefault("polygon.timeout", 30)

	viper.SetDefault("cache.price_ttl", "1h")
	viper.SetDefault("cache.filing_ttl", "24h")
	viper.SetDefault("cache.wrapped_ttl", "24h")
	viper.SetDefault("cache.sweep_schedule", "@hourly")

	viper.SetDefault("refresh.interval", "2s")
}
