package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	DBPath         string
	IsProduction   bool
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PATH", "balancify.db")
	viper.SetDefault("IS_PRODUCTION", false)
	// The browser UI is served from its own local origin during development.
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override defaults (and .env via godotenv above).
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.DBPath = viper.GetString("DB_PATH")
	if cfg.DBPath == "" {
		cfg.DBPath = "balancify.db"
		log.Printf("Warning: DB_PATH environment variable not set. Defaulting to %s\n", cfg.DBPath)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	for _, origin := range strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}
