package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	Env                  string
	DBPath               string
	SeedSampleData       bool
	ReminderPollInterval time.Duration
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:                 GetEnv("PORT", "3000"),
		Env:                  GetEnv("ENV", "development"),
		DBPath:               GetEnv("DB_PATH", "./data/task_notes.db"),
		SeedSampleData:       GetEnvBool("SEED_SAMPLE_DATA", true),
		ReminderPollInterval: GetEnvDuration("REMINDER_POLL_INTERVAL", time.Minute),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
