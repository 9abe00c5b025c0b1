/*
File    : go-fresh/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Defaults verifies the built-in settings
func TestConfig_Defaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "fresh > ", cfg.Prompt)
	assert.Equal(t, 1000, cfg.RecursionLimit)
}

// TestConfig_MissingFile verifies that absent files yield defaults
func TestConfig_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestConfig_LoadFile verifies YAML overrides on top of defaults
func TestConfig_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.yaml")
	content := "prompt: \">> \"\nrecursion_limit: 64\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, 64, cfg.RecursionLimit)
	assert.Equal(t, "", cfg.HistoryFile, "unset keys keep defaults")
}

// TestConfig_Malformed verifies the parse error path
func TestConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ]["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
