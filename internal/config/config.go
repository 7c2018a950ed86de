package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ForeignPressIgnore = "ignore"
	ForeignPressBlur   = "blur"
)

type FocusConfig struct {
	ForeignPress  string `mapstructure:"foreign_press"`
	EmitUnchanged bool   `mapstructure:"emit_unchanged"`
}

type ListConfig struct {
	MaxRows int `mapstructure:"max_rows"`
}

type Config struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
	List         ListConfig    `mapstructure:"list"`
	Focus        FocusConfig   `mapstructure:"focus"`
	SeedFile     string        `mapstructure:"seed_file"`
	LogFile      string        `mapstructure:"log_file"`
	path         string
}

// LoadConfig reads the config file, writing a default one when missing.
// INSPECTOR_* environment variables override file values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return loadConfigFile(configPath)
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetDefault("tick_interval", 100*time.Millisecond)
	v.SetDefault("list.max_rows", 12)
	v.SetDefault("focus.foreign_press", ForeignPressIgnore)
	v.SetDefault("focus.emit_unchanged", true)
	v.SetDefault("seed_file", filepath.Join(filepath.Dir(configPath), "seed.yaml"))
	v.SetDefault("log_file", "")

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("INSPECTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func loadConfigFile(configPath string) (*Config, error) {
	v := newViper(configPath)

	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := v.SafeWriteConfigAs(configPath); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.path = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.List.MaxRows <= 0 {
		return fmt.Errorf("list.max_rows must be positive, got %d", c.List.MaxRows)
	}
	switch c.Focus.ForeignPress {
	case ForeignPressIgnore, ForeignPressBlur:
	default:
		return fmt.Errorf("focus.foreign_press must be %q or %q, got %q",
			ForeignPressIgnore, ForeignPressBlur, c.Focus.ForeignPress)
	}
	return nil
}

// Path is the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

func getConfigPath() (string, error) {
	var configDir string

	// Use INSPECTOR_HOME if set, otherwise use user's home directory
	if home := os.Getenv("INSPECTOR_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".inspector", "config.yaml"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}
