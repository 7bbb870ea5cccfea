package shared

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server" json:"server"`
	Spotify SpotifyConfig `toml:"spotify" json:"spotify"`
	CORS    CORSConfig    `toml:"cors" json:"cors"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `toml:"host" json:"host"`
	Port            int    `toml:"port" json:"port"`
	Debug           bool   `toml:"debug" json:"debug"`
	ShutdownTimeout int    `toml:"shutdown_timeout" json:"shutdown_timeout"`
}

// SpotifyConfig contains settings for the upstream Spotify Web API.
type SpotifyConfig struct {
	BaseURL   string  `toml:"base_url" json:"base_url"`
	Timeout   int     `toml:"timeout" json:"timeout"`
	RateLimit float64 `toml:"rate_limit" json:"rate_limit"`
}

// CORSConfig contains cross-origin settings applied to every route.
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" json:"allowed_origins"`
	AllowedHeaders []string `toml:"allowed_headers" json:"allowed_headers"`
}

// Addr returns the host:port pair the server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ShutdownGrace returns the shutdown timeout as a [time.Duration].
func (s ServerConfig) ShutdownGrace() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// RequestTimeout returns the upstream timeout as a [time.Duration]; zero means unbounded.
func (s SpotifyConfig) RequestTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first invalid setting wrapped in [ErrInvalidConfig].
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must not be negative", ErrInvalidConfig)
	}
	if c.Spotify.Timeout < 0 {
		return fmt.Errorf("%w: spotify.timeout must not be negative", ErrInvalidConfig)
	}
	if c.Spotify.RateLimit < 0 {
		return fmt.Errorf("%w: spotify.rate_limit must not be negative", ErrInvalidConfig)
	}

	u, err := url.Parse(c.Spotify.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: spotify.base_url %q is not an absolute URL", ErrInvalidConfig, c.Spotify.BaseURL)
	}

	return nil
}
