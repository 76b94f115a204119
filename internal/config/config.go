package config

import (
	"log"
	"os"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	RedisURL    string

	JWTSecret          string
	SessionSecret      string
	TokenEncryptionKey string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	ResetWebhookURL    string
	ResetWebhookSecret string
	ResetWebhookStub   bool

	AudioDir  string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Env:         getEnvWithDefault("ENV", "development"),
		Port:        getEnvWithDefault("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    getEnvWithDefault("REDIS_URL", "redis://localhost:6379/0"),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		TokenEncryptionKey: os.Getenv("TOKEN_ENCRYPTION_KEY"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  os.Getenv("GOOGLE_CALLBACK_URL"),

		ResetWebhookURL:    os.Getenv("RESET_WEBHOOK_URL"),
		ResetWebhookSecret: os.Getenv("RESET_WEBHOOK_SECRET"),
		ResetWebhookStub:   getEnvWithDefault("RESET_WEBHOOK_STUB", "false") == "true",

		AudioDir:  getEnvWithDefault("AUDIO_DIR", "./uploads/audio"),
		LogLevel:  getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvWithDefault("LOG_FORMAT", "text"),
	}

	// Warn if using default secrets (insecure for production)
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-jwt-secret-change-in-production-use-openssl-rand-hex-32"
		log.Println("WARNING: Using default JWT_SECRET. Generate a secure secret with: openssl rand -hex 32")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-secret-change-in-production-use-openssl-rand-hex-32"
		log.Println("WARNING: Using default SESSION_SECRET. Generate a secure secret with: openssl rand -hex 32")
	}
	if cfg.TokenEncryptionKey == "" {
		// base64 of a fixed 32-byte string; fine for dev, not for production
		cfg.TokenEncryptionKey = "ZGV2LWVuY3J5cHRpb24ta2V5LTMyLWJ5dGVzISEhISE="
		log.Println("WARNING: Using default TOKEN_ENCRYPTION_KEY. Generate one with: openssl rand -base64 32")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
