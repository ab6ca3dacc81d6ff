package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Catalog  CatalogConfig
	Advisor  AdvisorConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// CatalogConfig holds bond catalog configuration.
// SeedFile is a JSON catalog feed imported into the database when the bond
// table is empty. ReloadSchedule is a cron expression for periodic
// snapshot refresh.
type CatalogConfig struct {
	SeedFile       string
	ReloadSchedule string
}

// AdvisorConfig holds configuration for the external narrative analysis
// service. SecretKey is the fernet key used to encrypt the service token
// at rest; the integration stays inactive when it is unset.
type AdvisorConfig struct {
	SecretKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/bond_advisor.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Catalog: CatalogConfig{
			SeedFile:       getEnv("CATALOG_SEED_FILE", ""),
			ReloadSchedule: getEnv("CATALOG_RELOAD_SCHEDULE", "@daily"),
		},
		Advisor: AdvisorConfig{
			SecretKey: getEnv("ADVISOR_SECRET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
