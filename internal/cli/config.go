package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration accepted via --config.
// Positional arguments and flags take precedence over it.
type FileConfig struct {
	// Database is the default database path.
	Database string `yaml:"database,omitempty"`

	// Counter is the default counter name.
	Counter string `yaml:"counter,omitempty"`
}

// LoadConfig reads and strictly decodes a YAML config file.
// Unknown keys are rejected. An empty file yields the zero config.
func LoadConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
