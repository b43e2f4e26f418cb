package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tolerance != DefaultTolerance {
		t.Errorf("expected tolerance %g, got %g", DefaultTolerance, cfg.Tolerance)
	}
	if cfg.Continuation.StepSize <= 0 {
		t.Error("step size should be positive")
	}
	if cfg.Continuation.MinStepSize > cfg.Continuation.MaxStepSize {
		t.Error("min step size should not exceed max step size")
	}
	if cfg.Continuation.MaxSteps <= 0 {
		t.Error("max steps should be positive")
	}
	if cfg.Plot.Width <= 0 || cfg.Plot.Height <= 0 {
		t.Error("plot dimensions should be positive")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biflab.yaml")

	cfg := DefaultConfig()
	cfg.Tolerance = 1e-8
	cfg.Continuation.MaxSteps = 500
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Tolerance != 1e-8 {
		t.Errorf("expected tolerance 1e-8, got %g", loaded.Tolerance)
	}
	if loaded.Continuation.MaxSteps != 500 {
		t.Errorf("expected max steps 500, got %d", loaded.Continuation.MaxSteps)
	}
	// untouched fields keep their defaults
	if loaded.Continuation.StepSize != DefaultStepSize {
		t.Errorf("expected step size %g, got %g", DefaultStepSize, loaded.Continuation.StepSize)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
