package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Client side.
	APIBaseURL                 string
	HTTPTimeoutSeconds         int
	NavigateDelayMS            int
	NotificationTTLSeconds     int
	LegacyCompletionTimestamps bool

	// Fixture server.
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	redisAddr := ""
	if redisHost := getEnv("REDIS_HOST", ""); redisHost != "" {
		redisAddr = fmt.Sprintf("%s:%s", redisHost, getEnv("REDIS_PORT", "6379"))
	}

	cfg := Config{
		APIBaseURL:                 getEnv("API_BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort)),
		HTTPTimeoutSeconds:         getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30),
		NavigateDelayMS:            getEnvAsInt("NAVIGATE_DELAY_MS", 1500),
		NotificationTTLSeconds:     getEnvAsInt("NOTIFY_TTL_SECONDS", 6),
		LegacyCompletionTimestamps: getEnvAsBool("LEGACY_COMPLETION_TIMESTAMPS", true),
		AppURL:                     fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:                getEnv("DATABASE_DSN", "tarefas.db"),
		RateLimit:                  getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:                  redisAddr,
		ShutdownTimeoutSeconds:     getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL must not be empty (e.g. http://127.0.0.1:8080)")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		log.Fatal("HTTP_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.NavigateDelayMS < 0 {
		log.Fatal("NAVIGATE_DELAY_MS must not be negative")
	}
	if cfg.NotificationTTLSeconds <= 0 {
		log.Fatal("NOTIFY_TTL_SECONDS must be greater than 0")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
