package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors schedsim.yml
type Config struct {
	Algorithm    string `yaml:"algorithm"`     // fcfs | sjf | both (by default)
	Input        string `yaml:"input"`         // processes.txt (by default)
	CSVPrefix    string `yaml:"csv_prefix"`    // empty = no CSV export
	Listen       string `yaml:"listen"`        // :9095 (by default)
	Strict       bool   `yaml:"strict"`        // reject malformed input lines
	MaxProcesses int    `yaml:"max_processes"` // 256 (by default)
}

// DefaultConfig holds the values used when no config file is present
func DefaultConfig() Config {
	return Config{
		Algorithm:    "both",
		Input:        "processes.txt",
		Listen:       ":9095",
		MaxProcesses: 256,
	}
}

// Load overlays the YAML file at path on the defaults. An empty path or a
// missing file yields the defaults. A file that cannot be read or decoded is
// an error, and the defaults are returned alongside it untouched.
func Load(path string) (Config, error) {
	defaults := DefaultConfig()

	if path == "" {
		return defaults, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("config %s: %w", path, err)
	}

	// decode into a copy so a bad file never leaves a half-applied config
	cfg := defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("config %s: %w", path, err)
	}

	// sanity clamps
	if cfg.Algorithm == "" {
		cfg.Algorithm = "both"
	}
	if cfg.Input == "" {
		cfg.Input = "processes.txt"
	}
	if cfg.Listen == "" {
		cfg.Listen = ":9095"
	}
	if cfg.MaxProcesses <= 0 {
		cfg.MaxProcesses = 256
	}

	return cfg, nil
}
