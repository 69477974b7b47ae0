package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zhubert/wowint/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. WOWINT_HOST.
const EnvPrefix = "WOWINT"

// Defaults
const (
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 7000
	DefaultIndex      = 0
	DefaultHoldMillis = 1000
	DefaultGapMillis  = 1000
)

// Target is a named receiver.
type Target struct {
	Host  string `json:"host" mapstructure:"host"`
	Port  uint16 `json:"port" mapstructure:"port"`
	Index int32  `json:"index" mapstructure:"index"`
}

// Config holds the application configuration
type Config struct {
	Host  string `json:"host" mapstructure:"host"`   // Receiver host (IPv4, IPv6 or hostname)
	Port  uint16 `json:"port" mapstructure:"port"`   // Receiver UDP port
	Index int32  `json:"index" mapstructure:"index"` // Default player index on the receiver

	HoldMillis int `json:"hold_ms" mapstructure:"hold_ms"` // How long taps hold a key down
	GapMillis  int `json:"gap_ms" mapstructure:"gap_ms"`   // Pause after each code in demo loops

	Targets map[string]Target `json:"targets,omitempty" mapstructure:"targets"` // Named receivers

	NotificationsEnabled bool `json:"notifications_enabled,omitempty" mapstructure:"notifications_enabled"` // Desktop notification when a demo run ends

	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wowint"), nil
}

// DefaultPath returns the path of the config file used when none is given.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns a config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Host:       DefaultHost,
		Port:       DefaultPort,
		Index:      DefaultIndex,
		HoldMillis: DefaultHoldMillis,
		GapMillis:  DefaultGapMillis,
		Targets:    make(map[string]Target),
	}
}

// Load reads the config at path, or DefaultPath when path is empty. A missing
// file yields the defaults. Environment variables (WOWINT_HOST, WOWINT_PORT,
// WOWINT_INDEX, WOWINT_HOLD_MS, WOWINT_GAP_MS) override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.wowint", err)
		}
		path = p
	}

	v := viper.New()
	def := Default()
	v.SetDefault("host", def.Host)
	v.SetDefault("port", def.Port)
	v.SetDefault("index", def.Index)
	v.SetDefault("hold_ms", def.HoldMillis)
	v.SetDefault("gap_ms", def.GapMillis)
	v.SetDefault("notifications_enabled", false)

	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	cfg.filePath = path
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.As(err, &notFound)
}

// ensureInitialized ensures maps are non-nil after unmarshaling.
func (c *Config) ensureInitialized() {
	if c.Targets == nil {
		c.Targets = make(map[string]Target)
	}
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.ConfigInvalid("host is empty")
	}
	if c.Port == 0 {
		return errors.ConfigInvalid("port must be non-zero")
	}
	if c.HoldMillis < 0 {
		return errors.ConfigInvalid("hold_ms must not be negative")
	}
	if c.GapMillis < 0 {
		return errors.ConfigInvalid("gap_ms must not be negative")
	}
	for name, t := range c.Targets {
		if name == "" {
			return errors.ConfigInvalid("target with empty name")
		}
		if t.Host == "" {
			return errors.ConfigInvalid("target " + name + " has empty host")
		}
		if t.Port == 0 {
			return errors.ConfigInvalid("target " + name + " has zero port")
		}
	}
	return nil
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.filePath
}

// SetPath changes where Save writes.
func (c *Config) SetPath(path string) {
	c.filePath = path
}

// Save writes the config to disk as indented JSON.
func (c *Config) Save() error {
	path := c.filePath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return errors.ConfigSaveFailed("~/.wowint", err)
		}
		path = p
		c.filePath = p
	}

	if err := c.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	data, err := c.JSON()
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// JSON returns the config as indented JSON.
func (c *Config) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Target returns the receiver called name. An empty name selects the
// top-level host, port and index.
func (c *Config) Target(name string) (Target, error) {
	if name == "" {
		return Target{Host: c.Host, Port: c.Port, Index: c.Index}, nil
	}
	t, ok := c.Targets[name]
	if !ok {
		// viper lowercases map keys read from the file
		t, ok = c.Targets[strings.ToLower(name)]
	}
	if !ok {
		return Target{}, errors.TargetNotFound(name)
	}
	return t, nil
}

// SetTarget adds or replaces a named receiver.
func (c *Config) SetTarget(name string, t Target) {
	c.ensureInitialized()
	c.Targets[name] = t
}

// RemoveTarget deletes a named receiver, reporting whether it existed.
func (c *Config) RemoveTarget(name string) bool {
	if _, ok := c.Targets[name]; !ok {
		return false
	}
	delete(c.Targets, name)
	return true
}

// TargetNames returns the named receivers in sorted order.
func (c *Config) TargetNames() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hold returns the tap hold time.
func (c *Config) Hold() time.Duration {
	return time.Duration(c.HoldMillis) * time.Millisecond
}

// Gap returns the pause after each sent code.
func (c *Config) Gap() time.Duration {
	return time.Duration(c.GapMillis) * time.Millisecond
}
