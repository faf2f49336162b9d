package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Builder holds configuration for the bounds checker.
type Builder struct {
	// Logging: debug, info, warn or error
	LogLevel string `yaml:"log_level"`

	// Validate turns on the cuboid self-check and range assertions.
	// Expensive: every preset is walked cell by cell.
	Validate bool `yaml:"validate"`

	// Regions to open on startup
	Presets []Preset `yaml:"presets"`
}

// Preset names a region of fixed extents, e.g. a schematic footprint.
type Preset struct {
	Name  string `yaml:"name"`
	SizeX int32  `yaml:"size_x"`
	SizeY int32  `yaml:"size_y"`
	SizeZ int32  `yaml:"size_z"`
}

// DefaultBuilder returns Builder config with sensible defaults.
func DefaultBuilder() Builder {
	return Builder{
		LogLevel: "info",
		Validate: false,
		Presets: []Preset{
			{
				Name:  "chunk",
				SizeX: 16,
				SizeY: 256,
				SizeZ: 16,
			},
		},
	}
}

// LoadBuilder loads builder config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBuilder(path string) (Builder, error) {
	cfg := DefaultBuilder()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
