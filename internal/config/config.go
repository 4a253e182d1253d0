package config

import (
	"errors"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort             string   `env:"HTTP_PORT" envDefault:"5000"`
	DatabaseURL          string   `env:"DATABASE_URL"`
	JWTSecret            string   `env:"JWT_SECRET"`
	JWTAccessTTLMinutes  int      `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	JWTRefreshTTLMinutes int      `env:"JWT_REFRESH_TTL_MINUTES" envDefault:"43200"`
	RedisAddr            string   `env:"REDIS_ADDR"`
	RedisPassword        string   `env:"REDIS_PASSWORD"`
	RedisDB              int      `env:"REDIS_DB" envDefault:"0"`
	CORSOrigins          []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	// DemoMode reemplaza postgres por repositorios en memoria sembrados.
	// Es un modo explicito de composicion, nunca un fallback ante fallas.
	DemoMode bool `env:"DEMO_MODE" envDefault:"false"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if !cfg.DemoMode && cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required unless DEMO_MODE=true")
	}
	return &cfg, nil
}
