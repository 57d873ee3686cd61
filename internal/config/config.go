// Package config loads the optional YAML configuration file. Command-line
// flags override anything set here.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML configuration document.
type File struct {
	ThresholdDays  float64           `yaml:"threshold_days"`
	EntityName     string            `yaml:"entity_name"`
	IDColumn       string            `yaml:"id_column"`
	ImageFormat    string            `yaml:"image_format"`
	Colors         map[string]string `yaml:"colors"`
	LabelMappings  map[string]string `yaml:"label_mappings"`
	RemoveSuffixes []string          `yaml:"remove_suffixes"`
	Layout         Layout            `yaml:"layout"`
}

// Layout controls output image geometry.
type Layout struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	PointSize float64 `yaml:"point_size"`
	FontSize  float64 `yaml:"font_size"`
}

// Load reads and validates a config file. Unknown fields are rejected so a
// typo never silently becomes a no-op.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
