package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	NatsURL       string
	NatsToken     string
	DatabaseURL   string
	LogLevel      string
	APIToken      string
	UploadDir     string
	MaxUploadSize int64
}

// Load reads configuration from the environment, with an optional .env file
// applied first (already-set env vars win over file values).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          envInt("CONVOLENS_PORT", 8760),
		NatsURL:       envStr("NATS_URL", "nats://localhost:4222"),
		NatsToken:     envStr("NATS_TOKEN", ""),
		DatabaseURL:   envStr("DATABASE_URL", ""),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		APIToken:      envStr("CONVOLENS_API_TOKEN", ""),
		UploadDir:     envStr("UPLOAD_DIR", "uploads"),
		MaxUploadSize: envInt64("MAX_UPLOAD_BYTES", 10*1024*1024),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
