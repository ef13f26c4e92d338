package config

import (
	"fmt"
	"os"
	"sync"
)

// Manager holds the application configuration and provides thread-safe access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new Manager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Update replaces the configuration. Only used while wiring flags at
// startup; the configuration is immutable once a run begins.
func (m *Manager) Update(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = config
}

// EnsureSaveFolder verifies the configured save folder before any
// network activity. A missing folder is created when CreateFolder is
// set, otherwise it is a configuration error and the run must not
// start.
func (m *Manager) EnsureSaveFolder() error {
	cfg := m.Get()
	if cfg.SaveFolder == "" {
		return nil
	}

	info, err := os.Stat(cfg.SaveFolder)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("save folder %s is not a directory", cfg.SaveFolder)
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to check save folder %s: %w", cfg.SaveFolder, err)
	}

	if !cfg.CreateFolder {
		return fmt.Errorf("save folder %s does not exist (use -x to create it)", cfg.SaveFolder)
	}
	if err := os.MkdirAll(cfg.SaveFolder, 0755); err != nil {
		return fmt.Errorf("failed to create save folder %s: %w", cfg.SaveFolder, err)
	}
	return nil
}
