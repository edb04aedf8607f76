package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mmcdole/todos/internal/domain"
	"github.com/spf13/viper"
)

const envPrefix = "TODOS"

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the todo service configuration
type ServerConfig struct {
	URL     string        `mapstructure:"url"`     // Base URL, e.g. https://mate.academy/students-api
	UserID  int           `mapstructure:"user_id"` // Fixed owner of every todo
	Timeout time.Duration `mapstructure:"timeout"` // Per-request transport timeout
}

// UIConfig holds presentation configuration
type UIConfig struct {
	ErrorTimeout  time.Duration `mapstructure:"error_timeout"`
	DefaultFilter string        `mapstructure:"default_filter"` // all, active or completed
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "https://mate.academy/students-api",
			UserID:  965,
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			ErrorTimeout:  3 * time.Second,
			DefaultFilter: "all",
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
		return filepath.Join(os.Getenv("APPDATA"), "todos", "todos.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "todos", "todos.log")
	}
}

// DefaultConfigPath returns the default config directory for the current OS
func DefaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "todos")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "todos")
	}
}

// newViper creates a viper instance seeded with defaults and env overrides.
// TODOS_SERVER_URL overrides server.url, and so on.
func newViper(dirs ...string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("server.url", def.Server.URL)
	v.SetDefault("server.user_id", def.Server.UserID)
	v.SetDefault("server.timeout", def.Server.Timeout)
	v.SetDefault("ui.error_timeout", def.UI.ErrorTimeout)
	v.SetDefault("ui.default_filter", def.UI.DefaultFilter)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.level", def.Logging.Level)

	return v
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigPath(), ".")
}

// LoadConfigFrom loads configuration from the first config.yaml found in dirs
func LoadConfigFrom(dirs ...string) (*Config, error) {
	v := newViper(dirs...)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the default location
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(cfg, DefaultConfigPath())
}

// SaveConfigTo writes cfg as config.yaml in dir
func SaveConfigTo(cfg *Config, dir string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("server.url", cfg.Server.URL)
	v.Set("server.user_id", cfg.Server.UserID)
	v.Set("server.timeout", cfg.Server.Timeout.String())

	v.Set("ui.error_timeout", cfg.UI.ErrorTimeout.String())
	v.Set("ui.default_filter", cfg.UI.DefaultFilter)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration can drive a session
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server URL: %q", c.Server.URL)
	}
	if c.Server.UserID <= 0 {
		return fmt.Errorf("server user_id must be positive, got %d", c.Server.UserID)
	}
	if _, err := domain.ParseFilter(c.UI.DefaultFilter); err != nil {
		return fmt.Errorf("invalid ui.default_filter: %w", err)
	}
	return nil
}

// Filter returns the parsed default filter
func (c *Config) Filter() domain.Filter {
	f, _ := domain.ParseFilter(c.UI.DefaultFilter)
	return f
}
