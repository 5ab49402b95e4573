package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port    string
	Env     string
	LogFile string

	// Database
	DatabaseURL       string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Telegram
	TelegramBotToken    string
	TelegramAPIEndpoint string
	TelegramSendTimeout time.Duration
	PublicURL           string

	// Update de-duplication
	RedisURL       string
	UpdateDedupTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:    getEnv("PORT", "8080"),
		Env:     getEnv("ENV", "development"),
		LogFile: getEnv("LOG_FILE", ""),

		// Database
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "phonebot"),
		DBPassword:     getEnv("DB_PASSWORD", "phonebot"),
		DBName:         getEnv("DB_NAME", "phonebot"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		// Telegram
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAPIEndpoint: getEnv("TELEGRAM_API_ENDPOINT", "https://api.telegram.org/bot%s/%s"),
		PublicURL:           getEnv("PUBLIC_URL", ""),

		// Update de-duplication
		RedisURL: getEnv("REDIS_URL", ""),
	}

	config.DBConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour)
	config.TelegramSendTimeout = getEnvDuration("TELEGRAM_SEND_TIMEOUT", 10*time.Second)
	config.UpdateDedupTTL = getEnvDuration("UPDATE_DEDUP_TTL", 24*time.Hour)

	return config, nil
}

// BotConfigured reports whether a Telegram bot token was supplied.
func (c *Config) BotConfigured() bool {
	return c.TelegramBotToken != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
