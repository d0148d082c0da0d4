package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the vlanadm.yaml layout. Every field is optional; CLI
// flags override whatever the file provides.
type File struct {
	Prefix        string            `yaml:"prefix,omitempty"`
	Kind          Kind              `yaml:"kind,omitempty"`
	Namespace     string            `yaml:"namespace,omitempty"`
	Description   string            `yaml:"description,omitempty"`
	Bridge        string            `yaml:"bridge,omitempty"`
	MTU           int               `yaml:"mtu,omitempty"`
	MacSpoofCheck *bool             `yaml:"mac_spoof_check,omitempty"`
	Labels        map[string]string `yaml:"labels,omitempty"`
	Range         *FileRange        `yaml:"range,omitempty"`
	Concurrency   int               `yaml:"concurrency,omitempty"`
}

// FileRange is the range block of a vlanadm.yaml file.
type FileRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// LoadFile reads and parses a vlanadm.yaml file.
func LoadFile(path string) (*File, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return &f, nil
}
