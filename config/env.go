package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AppEnv        string
	LogLevel      string
	DBDriver      string // sqlite, postgres
	DBPath        string
	DBDSN         string
	SessionSecret string
	JWTSecret     string
	TokenExpiry   time.Duration
	SessionExpiry time.Duration
	CORSOrigin    string
	AdminUsername string
	AdminPassword string
	DBMaxAttempts int
}

var (
	AppConfig Config
)

func LoadConfig() {
	if path, err := FindEnvFile(".env"); err == nil {
		if err := godotenv.Load(path); err != nil {
			log.Printf("Warning: could not load %s: %v", path, err)
		}
	} else {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	sessionSecret := mustGetEnv("SESSION_SECRET")

	AppConfig = Config{
		Port:          getEnvOrDefault("PORT", "5000"),
		AppEnv:        getEnvOrDefault("APP_ENV", "production"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		DBDriver:      getEnvOrDefault("DB_DRIVER", "sqlite"),
		DBPath:        getEnvOrDefault("DB_PATH", "payroll.db"),
		DBDSN:         os.Getenv("DB_DSN"),
		SessionSecret: sessionSecret,
		JWTSecret:     getEnvOrDefault("JWT_SECRET", sessionSecret),
		TokenExpiry:   getEnvDuration("TOKEN_EXPIRY", 24*time.Hour),
		SessionExpiry: getEnvDuration("SESSION_EXPIRY", 24*time.Hour),
		CORSOrigin:    getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		DBMaxAttempts: getEnvInt("DB_MAX_ATTEMPTS", 5),
	}

	if AppConfig.DBDriver == "postgres" && AppConfig.DBDSN == "" {
		log.Fatalf("Environment variable DB_DSN is required when DB_DRIVER=postgres")
	}
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Warning: invalid integer for %s, using %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s, using %s", key, defaultValue)
	}
	return defaultValue
}
