package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	AuthRPS     float64
	AuthBurst   int
}

func Load() Config {
	return Config{
		APIBaseURL:  getenv("API_BASE_URL", "http://localhost:8080"),
		HTTPTimeout: getenvDuration("HTTP_TIMEOUT", 10*time.Second),
		AuthRPS:     getenvFloat("AUTH_RPS", 5),
		AuthBurst:   getenvInt("AUTH_BURST", 10),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
