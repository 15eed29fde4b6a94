// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the engine's process-level configuration,
// grounded on jhkimqd-chaos-utils's pkg/config/config.go: a YAML file
// overlaid on defaults, with environment-variable expansion.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the engine's process-level configuration: logging, the
// default mesh encoding, and a resource-limit setting (the
// front-end/broker layer, an external collaborator, enforces queue
// depth and job timeouts; this config only holds the core's own knobs).
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Mesh   MeshConfig   `yaml:"mesh"`
	Limits LimitsConfig `yaml:"limits"`
}

// LogConfig controls the structured logger (internal/log).
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MeshConfig holds the default mesh encoding setting (spec.md §4.8). The
// cmd/geocruncher subcommands encode OFF and do not read it.
type MeshConfig struct {
	// DefaultFormat is "off" or "draco"; OFF is the specified default.
	DefaultFormat string `yaml:"default_format"`
}

// LimitsConfig holds a cap on grid resolution for the dense
// indicator/voxel grids this engine allocates. Load reads it; no job
// checks a requested shape against it.
type LimitsConfig struct {
	MaxResolution int `yaml:"max_resolution"`
}

// Default returns the engine's default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Mesh: MeshConfig{
			DefaultFormat: "off",
		},
		Limits: LimitsConfig{
			MaxResolution: 512,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
