package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML path is the path argument, else $MODERK_CONFIG, else
// ~/.moderk/config.yaml when that file exists.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("MODERK_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = filepath.Join(HomeDir(), "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(HomeDir(), "moderk.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// HomeDir returns the per-user moderk directory (~/.moderk).
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".moderk")
}
