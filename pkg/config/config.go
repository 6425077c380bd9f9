package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the settings shared by the CLI and the server. Every field can also be
// set by a flag; flags that are set explicitly take precedence over the file.
type Config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Warnings string `yaml:"warnings"`

	Source string `yaml:"source"`
	Target string `yaml:"target"`

	ReportUnrecognized bool       `yaml:"reportUnrecognized"`
	StrictKeys         bool       `yaml:"strictKeys"`
	KeyAliases         KeyAliases `yaml:"keyAliases"`
}

// Default returns the settings used when neither a file nor flags override them.
func Default() *Config {
	return &Config{
		Input:    "input",
		Output:   "output",
		Warnings: "warnings",
		Source:   "C",
		Target:   "D",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
