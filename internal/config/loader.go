package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is consulted when CONFIG_PATH is unset.
const defaultPath = "./config.yaml"

// Load reads configuration for the scansion service and validates it.
// Precedence: environment variables > YAML file > struct defaults.
//
// The file comes from CONFIG_PATH when set (missing file is then an
// error); otherwise ./config.yaml is used if present, and a file-less
// deployment — the common case for the CLI, which only needs a lexicon
// path — falls back to environment and defaults alone.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		explicit = false
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
