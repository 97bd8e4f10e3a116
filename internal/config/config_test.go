package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	directory := t.TempDir()

	yamlFile := filepath.Join(directory, "config.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("format: json\ngrouping: false\n"), 0644))
	config, err := Load(yamlFile)
	require.NoError(t, err)
	assert.Equal(t, Config{Format: "json", Grouping: false, Verbose: false}, config)

	jsonFile := filepath.Join(directory, "config.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"verbose": true}`), 0644))
	config, err = Load(jsonFile)
	require.NoError(t, err)
	assert.Equal(t, Config{Format: "text", Grouping: true, Verbose: true}, config)

	emptyFile := filepath.Join(directory, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, nil, 0644))
	config, err = Load(emptyFile)
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadRejects(t *testing.T) {
	directory := t.TempDir()

	_, err := Load(filepath.Join(directory, "missing.yaml"))
	assert.Error(t, err)

	unknownFile := filepath.Join(directory, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknownFile, []byte("solver: kissat\n"), 0644))
	_, err = Load(unknownFile)
	assert.ErrorContains(t, err, "solver")

	brokenFile := filepath.Join(directory, "broken.yaml")
	require.NoError(t, os.WriteFile(brokenFile, []byte("format: [json\n"), 0644))
	_, err = Load(brokenFile)
	assert.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	directory := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", directory)
	t.Setenv("HOME", directory)

	config, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}
