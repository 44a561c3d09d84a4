package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	I18n      I18nConfig
	Session   SessionConfig
	Telemetry TelemetryConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins []string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL time.Duration
	// StatsRefreshInterval - период фонового пересчёта статистики, 0 отключает воркер
	StatsRefreshInterval time.Duration
}

type LogConfig struct {
	Level string
}

type I18nConfig struct {
	DefaultLanguage string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	CollectorAddr  string
}

type MetricsConfig struct {
	Enabled bool
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - как Load, но с явным путём к env-файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: parseList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL:        time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
			StatsRefreshInterval: time.Duration(v.GetInt("STATS_REFRESH_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
			TTL:    time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
		},
		Telemetry: TelemetryConfig{
			Enabled:        v.GetBool("TELEMETRY_ENABLED"),
			ServiceName:    v.GetString("SERVICE_NAME"),
			ServiceVersion: v.GetString("SERVICE_VERSION"),
			CollectorAddr:  v.GetString("OTEL_COLLECTOR_ADDR"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	if cfg.Server.Env == "production" && cfg.Session.Secret == defaultSessionSecret {
		return nil, fmt.Errorf("SESSION_SECRET must be set in production")
	}

	return cfg, nil
}

const defaultSessionSecret = "dev-only-session-secret"

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STATS_CACHE_TTL", 3600)
	v.SetDefault("STATS_REFRESH_INTERVAL", 300)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_LANGUAGE", "en")
	v.SetDefault("SESSION_SECRET", defaultSessionSecret)
	v.SetDefault("SESSION_TTL", 86400)
	v.SetDefault("TELEMETRY_ENABLED", false)
	v.SetDefault("SERVICE_NAME", "venue-booking-portal")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
	v.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
	v.SetDefault("METRICS_ENABLED", true)
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
