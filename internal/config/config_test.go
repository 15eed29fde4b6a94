// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Fatalf("Load(\"\") = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Mesh.DefaultFormat != "off" {
		t.Fatalf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysYAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geocruncher.yaml")
	yaml := "log:\n  level: debug\nlimits:\n  max_resolution: 128\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("cfg.Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Limits.MaxResolution != 128 {
		t.Fatalf("cfg.Limits.MaxResolution = %d, want 128", cfg.Limits.MaxResolution)
	}
	// Untouched fields keep their default.
	if cfg.Mesh.DefaultFormat != "off" {
		t.Fatalf("cfg.Mesh.DefaultFormat = %q, want off (unmodified default)", cfg.Mesh.DefaultFormat)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geocruncher.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: ${GEOCRUNCHER_TEST_LEVEL}\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
	t.Setenv("GEOCRUNCHER_TEST_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("cfg.Log.Level = %q, want warn (from env)", cfg.Log.Level)
	}
}
