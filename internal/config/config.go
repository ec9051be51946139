package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hearth-sh/hearth/internal/consts"
)

// ResourceConfig is the raw resource definition read from YAML.
// The factory turns it into a concrete Resource.
type ResourceConfig struct {
	Name   string                 `yaml:"name"`
	Type   string                 `yaml:"type"`
	When   string                 `yaml:"when"`
	Params map[string]interface{} `yaml:"params"`
}

type Config struct {
	// Root is the resource root directory symlink sources resolve against.
	// Relative values resolve against the config file's directory;
	// defaults to "files" next to the config.
	Root string `yaml:"root"`

	// Vars are user variables for templates and conditions. Entries from a
	// .env file next to the config are merged in; the config file wins.
	Vars map[string]string `yaml:"vars"`

	Resources []ResourceConfig `yaml:"resources"`
}

// Load reads and parses the config at path, resolves the resource root, and
// merges any .env sidecar into Vars.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	if cfg.Root == "" {
		cfg.Root = consts.FilesDirName
	}
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(dir, cfg.Root)
	}

	if cfg.Vars == nil {
		cfg.Vars = map[string]string{}
	}
	if env, err := godotenv.Read(filepath.Join(dir, consts.EnvFileName)); err == nil {
		for k, v := range env {
			if _, ok := cfg.Vars[k]; !ok {
				cfg.Vars[k] = v
			}
		}
	}

	return &cfg, nil
}
