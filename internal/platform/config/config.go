package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           string
	RateLimit          string
	CORSAllowedOrigins []string
	DefaultUserID      string
	EnableRoleSwitcher bool
	EnableMetrics      bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEFAULT_USER_ID", "u-1")
	v.SetDefault("ENABLE_ROLE_SWITCHER", true)
	v.SetDefault("ENABLE_METRICS", true)

	// Environment variables override the defaults above and any .env values.
	v.AutomaticEnv()

	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		RateLimit:          v.GetString("RATE_LIMIT"),
		DefaultUserID:      v.GetString("DEFAULT_USER_ID"),
		EnableRoleSwitcher: v.GetBool("ENABLE_ROLE_SWITCHER"),
		EnableMetrics:      v.GetBool("ENABLE_METRICS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.IsProduction && cfg.EnableRoleSwitcher {
		log.Println("Warning: ENABLE_ROLE_SWITCHER is on in production. Any caller can act under any role.")
	}

	return cfg, nil
}
