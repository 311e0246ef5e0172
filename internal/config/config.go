package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string        `env:"APP_ENV" env-default:"dev"`
	HTTPPort      string        `env:"HTTP_PORT" env-default:"8080"`
	DataDir       string        `env:"DATA_DIR" env-default:"."`
	AdminPassword string        `env:"ADMIN_PASSWORD" env-default:"admin"`
	JWTSecret     string        `env:"JWT_SECRET" env-default:"changeme-secret"`
	JWTIssuer     string        `env:"JWT_ISSUER" env-default:"xrm-by-json"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"24h"`
	RateRPS       int           `env:"RATE_RPS" env-default:"100"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
