/*
Package config loads service configuration from the environment.

PURPOSE:
  All runtime knobs come from environment variables (optionally via a
  local .env file), with development-friendly defaults. Nothing else in
  the repository reads the environment directly.

NOTABLE KNOBS:
  TIME_OFFSET  Shifts the engine's clock by a fixed duration. Demo and
               test environments use it to replay a past or future "now"
               (e.g. "8760h" to run a year ahead) without touching the
               host clock.
  PATTERNS_FILE
               Path to the registration-pattern JSON document. Empty
               means the built-in default pattern set.

SEE ALSO:
  - cmd/server/main.go: Consumes the config at startup
  - logger/logger.go: Built from the Log section
*/
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	// SessionDBPath is the SQLite session database; ":memory:" keeps
	// sessions in process, "" selects the pure in-memory store.
	SessionDBPath string

	// SessionTTL bounds how long an untouched session survives.
	SessionTTL time.Duration

	// PatternsFile points at the registration-pattern JSON document.
	PatternsFile string

	// TimeOffset shifts the engine clock by a fixed duration.
	TimeOffset time.Duration

	CORS CORSConfig
	Log  LogConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:           v.GetString("ENV"),
		Port:          v.GetInt("PORT"),
		SessionDBPath: v.GetString("SESSION_DB_PATH"),
		SessionTTL:    parseDuration(v.GetString("SESSION_TTL"), 2*time.Hour),
		PatternsFile:  v.GetString("PATTERNS_FILE"),
		TimeOffset:    parseDuration(v.GetString("TIME_OFFSET"), 0),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}
	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("SESSION_DB_PATH", "")
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("PATTERNS_FILE", "")
	v.SetDefault("TIME_OFFSET", "0s")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
