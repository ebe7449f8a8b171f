package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TaskSpec describes one installable unit from the config file. The
// orchestration core treats the body as inert data; internal/installer turns
// it into a runnable action.
// - Name: stable identifier, unique across the file.
// - Label: human-readable description shown in menus and logs.
// - Source: how to install ("commands", "github" or "url").
// - Commands: shell command lines, for the "commands" source.
// - Repo/Tag/Version: GitHub release coordinates, for the "github" source.
// - URL: direct download location, for the "url" source.
// - PathEntry: directory to export on PATH after a successful install.
type TaskSpec struct {
	Name      string   `yaml:"name"`
	Label     string   `yaml:"label"`
	Source    string   `yaml:"source"`
	Commands  []string `yaml:"commands"`
	Repo      string   `yaml:"repo"`
	Tag       string   `yaml:"tag"`
	Version   string   `yaml:"version"`
	URL       string   `yaml:"url"`
	PathEntry string   `yaml:"path_entry"`
}

// Hook holds the command list for one of the two pseudo-tasks that bracket a
// run: the leading package-index update and the trailing cleanup.
type Hook struct {
	Label    string   `yaml:"label"`
	Commands []string `yaml:"commands"`
}

// Config is the top-level structure loaded from the YAML config file.
type Config struct {
	Shell   string     `yaml:"shell"`   // Overrides $SHELL detection when set (e.g. "bash")
	BinDir  string     `yaml:"bin_dir"` // Where downloaded binaries are installed
	Update  Hook       `yaml:"update"`
	Cleanup Hook       `yaml:"cleanup"`
	Tasks   []TaskSpec `yaml:"tasks"`
}

// Defaults applied when the config file leaves the pseudo-task hooks or the
// bin directory unset. Debian-flavored because that is what the curated
// toolset targets.
var (
	defaultUpdateCommands  = []string{"sudo apt-get update -y"}
	defaultCleanupCommands = []string{"sudo apt-get autoremove -y", "sudo apt-get clean"}
)

const (
	defaultUpdateLabel  = "Update package index"
	defaultCleanupLabel = "Clean up package caches"
	defaultBinDir       = "/usr/local/bin"
)

// Load reads and validates the YAML config file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BinDir == "" {
		c.BinDir = defaultBinDir
	}
	if c.Update.Label == "" {
		c.Update.Label = defaultUpdateLabel
	}
	if len(c.Update.Commands) == 0 {
		c.Update.Commands = defaultUpdateCommands
	}
	if c.Cleanup.Label == "" {
		c.Cleanup.Label = defaultCleanupLabel
	}
	if len(c.Cleanup.Commands) == 0 {
		c.Cleanup.Commands = defaultCleanupCommands
	}
	for i := range c.Tasks {
		if c.Tasks[i].Label == "" {
			c.Tasks[i].Label = c.Tasks[i].Name
		}
		if c.Tasks[i].Source == "" {
			c.Tasks[i].Source = "commands"
		}
	}
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		if t.Name == "" {
			return fmt.Errorf("task with empty name")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate task name %q", t.Name)
		}
		seen[t.Name] = true

		switch t.Source {
		case "commands":
			if len(t.Commands) == 0 {
				return fmt.Errorf("task %q: source \"commands\" needs at least one command", t.Name)
			}
		case "github":
			if t.Repo == "" {
				return fmt.Errorf("task %q: source \"github\" needs a repo", t.Name)
			}
		case "url":
			if t.URL == "" {
				return fmt.Errorf("task %q: source \"url\" needs a url", t.Name)
			}
		default:
			return fmt.Errorf("task %q: unknown source %q", t.Name, t.Source)
		}
	}
	return nil
}
