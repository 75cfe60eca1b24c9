package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	SQLitePath      string
	MigrationsPath  string
	Port            string
	IsProduction    bool
	FrontendBaseURL string

	// Defaults used for the business profile before the first save.
	BusinessName     string
	BusinessSubtitle string
	BusinessOwner    string
	DefaultTheme     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("SQLITE_PATH", "tbm.db")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("BUSINESS_NAME", "TYPO")
	viper.SetDefault("BUSINESS_SUBTITLE", "Apparel Co.")
	viper.SetDefault("BUSINESS_OWNER", "")
	viper.SetDefault("DEFAULT_THEME", "dark")

	viper.AutomaticEnv()

	cfg := &Config{
		SQLitePath:       viper.GetString("SQLITE_PATH"),
		MigrationsPath:   viper.GetString("MIGRATIONS_PATH"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		FrontendBaseURL:  viper.GetString("FRONTEND_BASE_URL"),
		BusinessName:     viper.GetString("BUSINESS_NAME"),
		BusinessSubtitle: viper.GetString("BUSINESS_SUBTITLE"),
		BusinessOwner:    viper.GetString("BUSINESS_OWNER"),
		DefaultTheme:     viper.GetString("DEFAULT_THEME"),
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "tbm.db"
		log.Println("Warning: SQLITE_PATH environment variable not set. Defaulting to tbm.db")
	}

	return cfg, nil
}
