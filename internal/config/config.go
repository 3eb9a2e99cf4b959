package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode    string
	Port       string
	BcryptCost int
	Storage    StorageConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Insights   InsightsConfig
}

// StorageConfig selects and configures the blob store backend
type StorageConfig struct {
	Driver        string // "file", "redis" or "mysql"
	DataDir       string // file driver
	RedisAddr     string // redis driver
	RedisPassword string
	RedisDB       int
}

// DatabaseConfig holds database configuration (mysql driver)
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// InsightsConfig holds the external insight generator configuration
type InsightsConfig struct {
	URL    string
	APIKey string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))
	bcryptCost, _ := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	config := &Config{
		AppMode:    appMode,
		Port:       getEnv("PORT", "3000"),
		BcryptCost: bcryptCost,
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "file"),
			DataDir:       getEnv("DATA_DIR", "./data"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASS", ""),
			DBName:   getEnv("DB_NAME", "amps"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "default_secret"),
			AccessTokenMins: accessMins,
		},
		Insights: InsightsConfig{
			URL:    getEnv("INSIGHTS_URL", ""),
			APIKey: getEnv("INSIGHTS_API_KEY", ""),
		},
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://amps.school.example"
	}
	return origins
}
