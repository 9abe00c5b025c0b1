/*
File    : go-fresh/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the interpreter's optional YAML configuration.
// A fresh.yaml next to the working directory (or an explicit --config
// path) can adjust the REPL prompt, the history file and the recursion
// bound; absent files silently yield the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultFile is the config file probed when no --config is given.
const DefaultFile = "fresh.yaml"

// Config holds the tunable settings of the interpreter.
type Config struct {
	// Prompt is the REPL prompt string
	Prompt string `yaml:"prompt"`
	// HistoryFile is where the REPL persists line history ("" disables)
	HistoryFile string `yaml:"history_file"`
	// RecursionLimit bounds user-function call depth
	RecursionLimit int `yaml:"recursion_limit"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Prompt:         "fresh > ",
		HistoryFile:    "",
		RecursionLimit: 1000,
	}
}

// Load reads a config file over the defaults. An empty path probes
// DefaultFile; a missing file (explicit or probed) is not an error and
// yields the defaults. A present but malformed file is reported.
func Load(path string) (*Config, error) {
	cfg := Default()

	probed := path == ""
	if probed {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		if probed {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
