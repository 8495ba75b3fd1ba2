package configloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultTokenDirectory        = "data/tokens"
	defaultMaxConcurrentRoutines = 10
	defaultLogLevel              = "info"
)

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// TokensConfig describes where token lists live and how strictly they are validated.
type TokensConfig struct {
	Directory string `yaml:"directory"`
	// BypassChecksum skips EIP-55 verification for addresses in token lists.
	BypassChecksum bool `yaml:"bypassChecksum"`
}

// CacheConfig holds configuration for the token registry cache.
// Zero expiration means entries never expire.
type CacheConfig struct {
	DefaultExpirationMinutes int `yaml:"defaultExpirationMinutes"`
	CleanupIntervalMinutes   int `yaml:"cleanupIntervalMinutes"`
}

// PerformanceConfig holds performance-related configurations.
type PerformanceConfig struct {
	MaxConcurrentRoutines int `yaml:"maxConcurrentRoutines"`
}

// Config is the top-level configuration structure.
type Config struct {
	Logging                   LoggingConfig     `yaml:"logging"`
	Tokens                    TokensConfig      `yaml:"tokens"`
	TrackedNetworkIdentifiers []string          `yaml:"trackedNetworks"`
	Cache                     CacheConfig       `yaml:"cache"`
	Performance               PerformanceConfig `yaml:"performance"`
}

// Load reads the YAML configuration file from the given path and unmarshals it.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return cfg, nil
}

// Parse unmarshals YAML bytes and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Tokens.Directory == "" {
		cfg.Tokens.Directory = defaultTokenDirectory
		logrus.Infof("tokens.directory not set, defaulting to %s", cfg.Tokens.Directory)
	}
	if cfg.Performance.MaxConcurrentRoutines <= 0 {
		cfg.Performance.MaxConcurrentRoutines = defaultMaxConcurrentRoutines
	}
	if cfg.Cache.DefaultExpirationMinutes < 0 {
		cfg.Cache.DefaultExpirationMinutes = 0
	}
	if cfg.Cache.CleanupIntervalMinutes < 0 {
		cfg.Cache.CleanupIntervalMinutes = 0
	}

	// Нормализуем идентификаторы сетей и убираем дубликаты
	seen := make(map[string]struct{}, len(cfg.TrackedNetworkIdentifiers))
	tracked := make([]string, 0, len(cfg.TrackedNetworkIdentifiers))
	for _, id := range cfg.TrackedNetworkIdentifiers {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			logrus.Warnf("Network '%s' listed more than once in trackedNetworks, ignoring duplicate.", id)
			continue
		}
		seen[id] = struct{}{}
		tracked = append(tracked, id)
	}
	cfg.TrackedNetworkIdentifiers = tracked

	if len(cfg.TrackedNetworkIdentifiers) == 0 {
		logrus.Warn("No trackedNetworks configured. No token lists will be loaded.")
	}
	if cfg.Tokens.BypassChecksum {
		logrus.Warn("tokens.bypassChecksum is enabled: token addresses are checked for format only.")
	}
}
