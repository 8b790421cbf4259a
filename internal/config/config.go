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
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Mail     MailConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig holds token issuance and guard configuration. Both token
// families are signed with the same secret; the token_type claim keeps
// them apart so a wrong-family token is rejected as wrong-family, not as
// a bad signature.
type JWTConfig struct {
	Secret                string
	AccessTokenMins       int
	RefreshTokenDays      int
	RequireFreshMutations bool
}

// MailConfig holds SMTP configuration for status-change notifications
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
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

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Mail:     loadMailConfig(),
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "5432"),
		User:     getEnv(prefix+"DB_USER", "postgres"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "ireporter"),
		SSLMode:  getEnv(prefix+"DB_SSLMODE", "disable"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "15"))
	refreshDays, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_DAYS", "7"))
	requireFresh, _ := strconv.ParseBool(getEnv("REQUIRE_FRESH_MUTATIONS", "true"))

	return JWTConfig{
		Secret:                getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins:       accessMins,
		RefreshTokenDays:      refreshDays,
		RequireFreshMutations: requireFresh,
	}
}

// loadMailConfig loads SMTP config. Notifications stay disabled when no
// host is configured.
func loadMailConfig() MailConfig {
	port, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))

	return MailConfig{
		Host:     getEnv("MAIL_HOST", ""),
		Port:     port,
		Username: getEnv("MAIL_USERNAME", ""),
		Password: getEnv("MAIL_PASSWORD", ""),
		Sender:   getEnv("MAIL_SENDER", "no-reply@ireporter.local"),
	}
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
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
