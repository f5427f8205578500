package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Cache   CacheConfig   `mapstructure:"cache"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig locates the catalog source
type DataConfig struct {
	File string `mapstructure:"file"` // Path to the catalog CSV
}

// CacheConfig controls the optional parsed-catalog snapshot
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// UIConfig holds dashboard preferences
type UIConfig struct {
	TopGenres    int    `mapstructure:"top_genres"`    // Initial genre chart size (5-20)
	DefaultView  string `mapstructure:"default_view"`  // Section shown at startup
	TopDirectors int    `mapstructure:"top_directors"` // Directors chart size
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			File: "netflix1.csv",
		},
		Cache: CacheConfig{
			Enabled: false,
			Dir:     defaultCachePath(),
		},
		UI: UIConfig{
			TopGenres:    10,
			DefaultView:  "overview",
			TopDirectors: 15,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "catalens", "catalens.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "catalens", "catalens.log")
	}
}

// defaultCachePath returns the default snapshot cache directory
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "catalens", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "catalens", "cache")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "catalens")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "catalens")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("CATALENS")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("data.file", cfg.Data.File)
	viper.Set("cache.enabled", cfg.Cache.Enabled)
	viper.Set("cache.dir", cfg.Cache.Dir)
	viper.Set("ui.top_genres", cfg.UI.TopGenres)
	viper.Set("ui.default_view", cfg.UI.DefaultView)
	viper.Set("ui.top_directors", cfg.UI.TopDirectors)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
