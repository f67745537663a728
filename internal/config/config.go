// Package config loads the run configuration from a YAML file and applies
// command-line overrides on top.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pssmlab/loorun/pkg/loo/model"
)

// Config models a run configuration file.
type Config struct {
	Dataset    string   `yaml:"dataset"`
	OutputDir  string   `yaml:"output_dir"`
	Items      []string `yaml:"items"`
	Threshold  float64  `yaml:"threshold"`
	MaxResults int      `yaml:"max_results"`

	SearchCmd string `yaml:"search_cmd"`
	PlotCmd   string `yaml:"plot_cmd"`

	Concurrency int    `yaml:"concurrency"`
	Draw        string `yaml:"draw,omitempty"`
	Measure     bool   `yaml:"measure,omitempty"`
}

// Default returns the configuration used when no file and no flags are given.
func Default() Config {
	return Config{
		OutputDir:  ".",
		Threshold:  0.05,
		MaxResults: 20,
		SearchCmd:  "search_sensor",
		PlotCmd:    "plot_distributions",
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "unable to read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unable to parse config %s", path)
	}

	return cfg, nil
}

// Validate checks the fields the driver cannot default.
func (c Config) Validate() error {
	if c.Dataset == "" {
		return errors.New("dataset must be set")
	}
	if len(c.Items) == 0 {
		return errors.New("items must be set")
	}

	return nil
}

// ItemSet converts the configured item names to model items.
func (c Config) ItemSet() []model.Item {
	items := make([]model.Item, len(c.Items))
	for i, name := range c.Items {
		items[i] = model.Item(name)
	}

	return items
}
