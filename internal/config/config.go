package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "notifications.json"

	// DefaultPort is the default demo server port.
	DefaultPort = 4000

	// DefaultHost is the default demo server host.
	DefaultHost = "localhost"

	// DefaultPosition is the default toast container corner.
	DefaultPosition = "top-right"

	// DefaultAutoHideDelayMS is the default widget auto-hide delay.
	DefaultAutoHideDelayMS = 5000

	// DefaultMaxVisible is the default cap on simultaneously
	// visible toasts the client runtime enforces.
	DefaultMaxVisible = 5
)

// validPositions are the accepted container corners.
var validPositions = map[string]bool{
	"top-right":    true,
	"top-left":     true,
	"bottom-right": true,
	"bottom-left":  true,
}

// Config represents the complete notifications.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server contains demo server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Toast contains toast display configuration.
	Toast ToastConfig `json:"toast,omitempty"`
}

// ServerConfig configures the demo server.
type ServerConfig struct {
	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`
}

// ToastConfig configures toast display behavior.
type ToastConfig struct {
	// Position is the container corner: top-right, top-left,
	// bottom-right, or bottom-left.
	Position string `json:"position,omitempty"`

	// AutoHideDelayMS is the widget auto-hide delay in milliseconds.
	AutoHideDelayMS int `json:"autoHideDelayMs,omitempty"`

	// MaxVisible caps simultaneously visible toasts.
	MaxVisible int `json:"maxVisible,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Name: "budgeteer-notifications",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Toast: ToastConfig{
			Position:        DefaultPosition,
			AutoHideDelayMS: DefaultAutoHideDelayMS,
			MaxVisible:      DefaultMaxVisible,
		},
	}
}

// Load reads ConfigFileName from the current directory. A missing
// file yields the defaults, not an error.
func Load() (*Config, error) {
	return LoadFrom(ConfigFileName)
}

// LoadFrom reads the configuration from the given path, applying
// defaults for any omitted field.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Toast.Position != "" && !validPositions[c.Toast.Position] {
		return fmt.Errorf("invalid toast position %q", c.Toast.Position)
	}
	if c.Toast.AutoHideDelayMS < 0 {
		return fmt.Errorf("invalid auto-hide delay %d", c.Toast.AutoHideDelayMS)
	}
	if c.Toast.MaxVisible < 0 {
		return fmt.Errorf("invalid max visible %d", c.Toast.MaxVisible)
	}
	return nil
}

// Addr returns the host:port the demo server listens on.
func (c *Config) Addr() string {
	host := c.Server.Host
	if host == "" {
		host = DefaultHost
	}
	port := c.Server.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("%s:%d", host, port)
}
