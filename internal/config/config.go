// Package config loads CLI defaults from an optional YAML or JSON file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Format   string `mapstructure:"format"`   // "text" or "json"
	Grouping bool   `mapstructure:"grouping"` // thousands separators in counts
	Verbose  bool   `mapstructure:"verbose"`
}

func Default() Config {
	return Config{Format: "text", Grouping: true}
}

// DefaultPath is counting/config.yaml under the user's configuration directory, or "" when
// that directory is unknown.
func DefaultPath() string {
	directory, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(directory, "counting", "config.yaml")
}

// Load reads file over the defaults. Keys absent from the file keep their default.
func Load(file string) (Config, error) {
	config := Default()

	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	// JSON documents are valid YAML
	var raw map[string]any
	if err := yaml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %v: %w", file, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config file %v: %w", file, err)
	}
	return config, nil
}

// LoadDefault loads DefaultPath when it exists and returns the defaults otherwise.
func LoadDefault() (Config, error) {
	file := DefaultPath()
	if file == "" {
		return Default(), nil
	}
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(file)
}
