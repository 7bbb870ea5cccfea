package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 5000 {
			t.Errorf("expected server port 5000, got %d", config.Server.Port)
		}

		if !config.Server.Debug {
			t.Error("expected debug mode to be enabled by default")
		}

		if config.Spotify.BaseURL != "https://api.spotify.com/v1" {
			t.Errorf("expected spotify base URL https://api.spotify.com/v1, got %s", config.Spotify.BaseURL)
		}

		if config.Spotify.RequestTimeout() != 0 {
			t.Errorf("expected unbounded upstream timeout, got %v", config.Spotify.RequestTimeout())
		}

		if config.Spotify.RateLimit != 0 {
			t.Errorf("expected upstream rate limiting to be off, got %v", config.Spotify.RateLimit)
		}

		if len(config.CORS.AllowedOrigins) != 1 || config.CORS.AllowedOrigins[0] != "*" {
			t.Errorf("expected all origins allowed, got %v", config.CORS.AllowedOrigins)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should be valid, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Server.Addr() != defaultConfig.Server.Addr() {
			t.Errorf("created config address %s doesn't match default %s", config.Server.Addr(), defaultConfig.Server.Addr())
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
host = "0.0.0.0"
port = 8080
shutdown_timeout = 10

[spotify]
base_url = "http://localhost:9090/v1"
timeout = 30
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Addr() != "0.0.0.0:8080" {
			t.Errorf("expected address 0.0.0.0:8080, got %s", config.Server.Addr())
		}

		if config.Server.ShutdownGrace() != 10*time.Second {
			t.Errorf("expected shutdown grace 10s, got %v", config.Server.ShutdownGrace())
		}

		if config.Spotify.RequestTimeout() != 30*time.Second {
			t.Errorf("expected timeout 30s, got %v", config.Spotify.RequestTimeout())
		}

		if len(config.CORS.AllowedOrigins) == 0 {
			t.Error("omitted cors section should keep default origins")
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadConfig Malformed", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[server\nport = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected parse error for malformed config")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tt := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "negative shutdown timeout", mutate: func(c *Config) { c.Server.ShutdownTimeout = -1 }},
		{name: "negative upstream timeout", mutate: func(c *Config) { c.Spotify.Timeout = -5 }},
		{name: "negative rate limit", mutate: func(c *Config) { c.Spotify.RateLimit = -1 }},
		{name: "relative base url", mutate: func(c *Config) { c.Spotify.BaseURL = "/v1" }},
		{name: "empty base url", mutate: func(c *Config) { c.Spotify.BaseURL = "" }},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)

			err := config.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
