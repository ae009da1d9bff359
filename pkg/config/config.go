package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort string
	LogLevel   string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	SerperAPIKey  string
	SerperBaseURL string

	MaxSearchResults  int
	MaxScrapeURLs     int
	ScrapeConcurrency int

	GenerationTimeout time.Duration
	SearchTimeout     time.Duration
	PageLoadTimeout   time.Duration

	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	SearchCacheTTL   time.Duration
}

// Load loads configuration from environment variables. A local .env
// file is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "idea_validator"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		SerperAPIKey:  getEnv("SERPER_API_KEY", ""),
		SerperBaseURL: getEnv("SERPER_BASE_URL", "https://google.serper.dev"),

		MaxSearchResults:  getEnvAsInt("MAX_SEARCH_RESULTS", 10),
		MaxScrapeURLs:     getEnvAsInt("MAX_SCRAPE_URLS", 5),
		ScrapeConcurrency: getEnvAsInt("SCRAPE_CONCURRENCY", 3),

		GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT_SECONDS", 60) * time.Second,
		SearchTimeout:     getEnvAsDuration("SEARCH_TIMEOUT_SECONDS", 30) * time.Second,
		PageLoadTimeout:   getEnvAsDuration("PAGE_LOAD_TIMEOUT_SECONDS", 60) * time.Second,

		RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
		RetryBaseDelay:   getEnvAsDuration("RETRY_BASE_DELAY_MS", 500) * time.Millisecond,
		SearchCacheTTL:   getEnvAsDuration("SEARCH_CACHE_TTL_SECONDS", 86400) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback))
}
