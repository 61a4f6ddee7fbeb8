package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
}

// DatabaseConfig holds the settings for the hosted data service.
type DatabaseConfig struct {
	User       string
	Password   string
	Host       string
	Name       string
	Schema     string
	DisableTLS bool
	Migrations string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string
	DateFormat     string
}

// Load reads configuration from file and env. Env var overrides use prefix CUENTAS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.user", "cuentas")
	v.SetDefault("database.password", "cuentas")
	v.SetDefault("database.host", "localhost:5432")
	v.SetDefault("database.name", "cuentas")
	v.SetDefault("database.schema", "")
	v.SetDefault("database.disabletls", false)
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("ui.currencysymbol", "$")
	v.SetDefault("ui.dateformat", "02/01/2006")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CUENTAS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cuentas"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CUENTAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
