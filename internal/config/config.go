package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
	Console   ConsoleConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	LogLevel string
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr    string
	MetaTTL time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type AdminConfig struct {
	Username string
	Password string
}

type ConsoleConfig struct {
	APIURL  string
	Timeout time.Duration
}

// Load reads configuration from the environment and an optional env file.
// An empty path falls back to ".env" in the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = ".env"
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
		zap.L().Debug("config file not found, using environment", zap.String("path", path))
	}

	return &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("APP_PORT"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Addr:    v.GetString("REDIS_ADDR"),
			MetaTTL: time.Duration(v.GetInt("REDIS_META_TTL_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			TTL:    time.Duration(v.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Console: ConsoleConfig{
			APIURL:  v.GetString("API_URL"),
			Timeout: time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "KhataSathi API")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "4000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_META_TTL_SECONDS", 300)
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("JWT_TTL_MINUTES", 60)
	v.SetDefault("RATE_LIMIT_RPS", 1)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("API_URL", "http://localhost:4000")
	v.SetDefault("API_TIMEOUT_SECONDS", 10)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
