// Package config читает конфигурацию сервиса из переменных окружения.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config описывает все параметры запуска сервиса.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR"            envDefault:":8080"`
	JWTSecret       string        `env:"JWT_SECRET,required"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"            envDefault:"30m"`
	TeachersFile    string        `env:"TEACHERS_FILE"        envDefault:"teachers.json"`
	StaticDir       string        `env:"STATIC_DIR"           envDefault:"static"`
	DatabaseDSN     string        `env:"DB_DSN"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"5s"`
}

// Load парсит окружение и проверяет значения, которые env не умеет проверить сам.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must not be blank")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins

	return cfg, nil
}

// UsePostgres сообщает, нужно ли хранить реестр кружков в PostgreSQL.
func (c Config) UsePostgres() bool {
	return strings.TrimSpace(c.DatabaseDSN) != ""
}
