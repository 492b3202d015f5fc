package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no path is given and the file exists.
const DefaultPath = "./config.yaml"

// Load reads the configuration file named by CONFIG_PATH. See LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads YAML from path, applies environment overrides and
// env-default tags, then validates. An explicit path must exist. With an
// empty path DefaultPath is tried and, when missing, the configuration
// comes from the environment alone.
func LoadFile(path string) (*Config, error) {
	cfg := Config{
		Workflow: WorkflowConfig{
			PostRequiresApproval:        true,
			PublicEventRequiresApproval: true,
		},
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
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
