package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Storage backend for client slots: memory, postgres or redis
	StorageDriver     string
	DBUrl             string
	RedisURL          string
	RedisPassword     string
	RedisSlotTTLHours int
	// Signs client identity tokens
	ClientTokenSecret string
	// Mock login pair
	MockAuthEmail        string
	MockAuthPassword     string
	MockAuthPasswordHash string
	// CORS
	FrontendURL    string
	AllowedOrigins []string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment wins in deployments
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		GinMode:                 getEnv("GIN_MODE", "debug"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		StorageDriver:           strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		DBUrl:                   getEnv("DATABASE_URL", ""),
		RedisURL:                getEnv("REDIS_URL", ""),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisSlotTTLHours:       getEnvInt("REDIS_SLOT_TTL_HOURS", 24*90),
		ClientTokenSecret:       getEnv("CLIENT_TOKEN_SECRET", ""),
		MockAuthEmail:           getEnv("MOCK_AUTH_EMAIL", "g@gmail.com"),
		MockAuthPassword:        getEnv("MOCK_AUTH_PASSWORD", "131204"),
		MockAuthPasswordHash:    getEnv("MOCK_AUTH_PASSWORD_HASH", ""),
		FrontendURL:             strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:          splitList(getEnv("ALLOWED_ORIGINS", "")),
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for storage driver %q", cfg.StorageDriver)
		}
	case StorageRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for storage driver %q", cfg.StorageDriver)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.ClientTokenSecret == "" {
		if cfg.GinMode == "release" {
			return nil, fmt.Errorf("CLIENT_TOKEN_SECRET is required in release mode")
		}
		log.Println("WARNING: CLIENT_TOKEN_SECRET not set. Using an insecure development secret.")
		cfg.ClientTokenSecret = "dev-only-client-token-secret"
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Origins returns every origin allowed by CORS.
func (c *Config) Origins() []string {
	origins := []string{}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	for _, o := range c.AllowedOrigins {
		if o != c.FrontendURL {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
