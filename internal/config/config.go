package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/biflab/internal/branch"
)

const (
	DefaultTolerance          = 1e-6
	DefaultStepSize           = 0.01
	DefaultMinStepSize        = 1e-6
	DefaultMaxStepSize        = 0.1
	DefaultMaxSteps           = 200
	DefaultCorrectorSteps     = 8
	DefaultCorrectorTolerance = 1e-8
	DefaultStepTolerance      = 1e-6
)

type Config struct {
	// DataDir is where the external engine writes branch snapshots.
	DataDir string `yaml:"data_dir"`
	// Tolerance is the neutral band used when classifying stability
	// from eigenvalues or Floquet multipliers.
	Tolerance    float64         `yaml:"tolerance"`
	Continuation branch.Settings `yaml:"continuation"`
	Plot         PlotConfig      `yaml:"plot"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   ".biflab",
		Tolerance: DefaultTolerance,
		Continuation: branch.Settings{
			StepSize:           DefaultStepSize,
			MinStepSize:        DefaultMinStepSize,
			MaxStepSize:        DefaultMaxStepSize,
			MaxSteps:           DefaultMaxSteps,
			CorrectorSteps:     DefaultCorrectorSteps,
			CorrectorTolerance: DefaultCorrectorTolerance,
			StepTolerance:      DefaultStepTolerance,
		},
		Plot: PlotConfig{Width: 80, Height: 15},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
