package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string

	// DatabaseURI selects the PostgreSQL backend when set; otherwise the
	// SQLite file at DatabasePath is used.
	DatabaseURI  string
	DatabasePath string

	// ParserLocale selects the keyword table for the time extractor.
	ParserLocale string

	// Optional AI fallback for the categorizer.
	AIAPIKey  string
	AIBaseURL string
	AIModel   string

	CheckInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DatabaseURI:   os.Getenv("DATABASE_URI"),
		DatabasePath:  getEnvOrDefault("DATABASE_PATH", "mindflow.db"),
		ParserLocale:  getEnvOrDefault("PARSER_LOCALE", "en"),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
		AIBaseURL:     getEnvOrDefault("AI_BASE_URL", "https://openrouter.ai/api/v1"),
		AIModel:       getEnvOrDefault("AI_MODEL", "openai/gpt-4o-mini"),
		CheckInterval: time.Duration(getEnvInt("CHECK_INTERVAL_SECONDS", 60)) * time.Second,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d: %v", key, value, defaultValue, err)
		return defaultValue
	}
	return parsed
}
