// Package config handles configuration for vertexchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the user configuration. Project and Location select
// the Vertex AI account/billing/region scope; when Project is empty the
// provider falls back to API-key access.
type Config struct {
	Project  string `json:"project,omitempty"`
	Location string `json:"location,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	Model    string `json:"model"`
	// Addr is the listen address for the relay server.
	Addr string `json:"addr"`
	// StaticDir is an optional prebuilt UI bundle served at the root
	// path by the relay server. Empty disables static serving.
	StaticDir string `json:"static_dir,omitempty"`
	// Greeting seeds the first assistant turn of every transcript.
	Greeting string `json:"greeting"`
	// RelayURL is the base URL the chat client talks to.
	RelayURL string `json:"relay_url"`
	// Verbose enables detailed logging output during operations.
	Verbose bool `json:"verbose"`
}

// DefaultGreeting is the assistant turn every new transcript starts with.
const DefaultGreeting = "Hello! How can I help you today?"

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Location: "us-central1",
		Model:    "gemini-2.0-flash",
		Addr:     ":8080",
		Greeting: DefaultGreeting,
		RelayURL: "http://localhost:8080",
		Verbose:  false,
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".vertexchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	// 0o700: the config may hold an API key
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk and applies environment
// overrides. Missing file means defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return applyEnv(cfg), err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return applyEnv(cfg), fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), fmt.Errorf("failed to parse config file: %w", err)
	}

	return applyEnv(cfg), nil
}

// applyEnv overlays environment variables onto cfg. Environment wins
// over the file so deployment platforms can inject scope and port.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("GOOGLE_CLOUD_PROJECT"); v != "" {
		cfg.Project = v
	}
	if v := os.Getenv("GOOGLE_CLOUD_LOCATION"); v != "" {
		cfg.Location = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	return cfg
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0o600: may contain an API key
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
