package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a new Manager.
// A missing file is not an error; the defaults are used so the tool can
// run without any setup. SOUNDCLOUD_CLIENT_ID overrides the configured
// credential, picked up from a .env file when one is present.
func Load(path string) (*Manager, error) {
	godotenv.Load()

	cfg := defaultConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("Config file not found, using defaults", "path", path)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if id := os.Getenv("SOUNDCLOUD_CLIENT_ID"); id != "" {
		cfg.ClientID = id
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return NewManager(&cfg), nil
}
