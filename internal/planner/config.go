package planner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ClientConfig configures the CLI's connection to the backend.
type ClientConfig struct {
	// BaseURL is the backend API root, e.g. "http://localhost:8080".
	BaseURL string `yaml:"base_url"`

	// Token is the bearer token sent on every call. The backend answers
	// 401 when it is missing or expired.
	Token string `yaml:"token"`

	// ItineraryID selects the itinerary an edit session opens on.
	ItineraryID int64 `yaml:"itinerary_id"`

	// TimeoutSeconds bounds each HTTP call. 0 means no client timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:        "http://localhost:8080",
		TimeoutSeconds: 30,
	}
}

// LoadClientConfig reads the YAML config at path. On first run the file
// is created with defaults and 0600 permissions.
func LoadClientConfig(path string) (*ClientConfig, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultClientConfig()
		if err := SaveClientConfig(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultClientConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveClientConfig writes the config back as YAML, creating parent
// directories as needed.
func SaveClientConfig(path string, cfg *ClientConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}
