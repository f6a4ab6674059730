package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds the settings read once at process start
type AppConfig struct {
	Port       string
	CheckInKey string // static API key for the ingestion endpoint; empty disables the check
	OpenAIKey  string
	Timezone   string // IANA zone naive dates and the stats warmer run in
}

// LoadEnv loads .env if present
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}
}

// GetEnv reads an environment variable
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault reads an environment variable with a fallback
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the AppConfig from the environment
func Load() AppConfig {
	return AppConfig{
		Port:       GetEnvDefault("PORT", "8083"),
		CheckInKey: GetEnv("CHECKIN_API_KEY"),
		OpenAIKey:  GetEnv("OPENAI_API_KEY"),
		Timezone:   GetEnvDefault("APP_TIMEZONE", "Local"),
	}
}
