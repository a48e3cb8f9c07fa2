package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	ModelServerURL     string
	ModelServerAPIKey  string
	ModelServerTimeout int // seconds

	ProfileTopSkills    int
	ProfileCacheTTLMin  int
	LogLevel            string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "careerpath"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		ModelServerURL:     getEnv("MODEL_SERVER_URL", "http://localhost:8501"),
		ModelServerAPIKey:  os.Getenv("MODEL_SERVER_API_KEY"),
		ModelServerTimeout: getEnvInt("MODEL_SERVER_TIMEOUT_SECONDS", 10),

		ProfileTopSkills:   getEnvInt("PROFILE_TOP_SKILLS", 5),
		ProfileCacheTTLMin: getEnvInt("PROFILE_CACHE_TTL_MINUTES", 10),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
