package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/kanactl"
	configFileName = "config.yaml"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

// BridgeConfig describes how to reach the extension bridge
type BridgeConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token,omitempty"`
}

// Config is the kanactl configuration file
type Config struct {
	Bridge       BridgeConfig  `yaml:"bridge"`
	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"pollInterval"`
	LogLevel     string        `yaml:"logLevel"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Bridge:       BridgeConfig{URL: constants.DefaultBridgeURL},
		Timeout:      constants.DefaultTimeout,
		PollInterval: constants.DefaultPollInterval,
		LogLevel:     "info",
	}
}

// DefaultPath returns ~/.config/kanactl/config.yaml
func DefaultPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

// Load reads path over the defaults. An empty path means DefaultPath, and a
// missing default file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the bridge URL, durations and log level
func (c Config) Validate() error {
	if err := utils.ValidateBridgeURL(c.Bridge.URL); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("pollInterval must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Save writes the config as YAML, creating parent directories
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// ParseLevel maps debug, info, warn and error to slog levels; empty means info
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
