// Package config holds user defaults for the cnoiddev CLI.
//
// Config is stored at $XDG_CONFIG_HOME/cnoiddev/config.yaml (defaults to
// ~/.config/cnoiddev/config.yaml). A missing file means built-in defaults,
// not an error; flags always win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRepository is the local repository the image build step tags
	// its results under.
	DefaultRepository = "choreonoid-grasp"

	defaultPluginDirName = "graspPlugin"
)

// Config holds the persisted defaults.
type Config struct {
	Repository string   `yaml:"repository,omitempty"` // image repository to resolve against
	PluginDir  string   `yaml:"plugin-dir,omitempty"` // host graspPlugin checkout to bind mount
	Distro     string   `yaml:"distro,omitempty"`     // default distro when none given
	RunArgs    []string `yaml:"run-args,omitempty"`   // extra args for new containers
}

// Path returns the config file location. It respects XDG_CONFIG_HOME,
// falling back to ~/.config/cnoiddev/config.yaml.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "cnoiddev", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "cnoiddev", "config.yaml")
}

// Load reads the config file and fills unset fields with built-in defaults.
// A missing file yields pure defaults.
func Load() (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to disk, creating directories as needed.
func (c *Config) Save() error {
	p := Path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Repository == "" {
		c.Repository = DefaultRepository
	}
	if c.PluginDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.PluginDir = filepath.Join(home, defaultPluginDirName)
		} else {
			c.PluginDir = defaultPluginDirName
		}
	}
}
