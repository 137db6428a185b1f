package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPPort string
	MongoURI string
	Database string
	RateRPS  int
}

// Load reads configuration from the environment. A .env file is honored
// when present. MONGO_URI has no default: the process must not start
// without a store to talk to.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:      get("APP_ENV", "dev"),
		HTTPPort: get("HTTP_PORT", get("PORT", "3000")),
		MongoURI: os.Getenv("MONGO_URI"),
		Database: get("MONGO_DB", "exercise_tracker"),
		RateRPS:  100,
	}
	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGO_URI not set")
	}
	return cfg, nil
}

func get(key, def string) string { v := os.Getenv(key); if v == "" { return def }; return v }
