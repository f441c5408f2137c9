package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	AppSecret   string
	SessionTTL  time.Duration
	FrontendURL string
	SMTPAddr    string
	MailFrom    string
}

// Load builds Config from environment with sensible defaults.
// SessionTTL defaults to zero, meaning issued session tokens carry no expiry
// claim; the session cookie max-age is then the only lifetime bound.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/storefront?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		AppSecret:   getEnv("APP_SECRET", "change-me"),
		SessionTTL:  getEnvDuration("SESSION_TTL", 0),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:7777"),
		SMTPAddr:    getEnv("SMTP_ADDR", "localhost:25"),
		MailFrom:    getEnv("MAIL_FROM", "noreply@storefront.local"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
