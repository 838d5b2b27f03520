package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR,default=127.0.0.1:5001"`

	Mongo Mongo

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
	AppName   string `env:"APP_NAME,default=dog-walking"`
}

type Mongo struct {
	URI      string        `env:"MONGO_URI,required"`
	Database string        `env:"MONGO_DB,default=dog_walking"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT,default=10s"`
}

// Load lee .env (si existe, sin pisar variables ya definidas) y luego el entorno.
// MONGO_URI es obligatorio.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return Config{}, errors.New("config: MONGO_URI is required")
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		return Config{}, errors.New("config: MONGO_URI is required")
	}
	return cfg, nil
}
