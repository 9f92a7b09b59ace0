// Package config loads the optional generation configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/stormino/my-resume-generator/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigParse = errors.New("failed to parse config")
)

// Default values applied when the config file is absent or a key is unset.
const (
	DefaultTemplate = "awesome-cv"
	DefaultColor    = "skyblue"
)

// Config holds the generation settings read from config.yaml.
type Config struct {
	Template            string `yaml:"template"`               // template name in internal/assets/templates/
	Color               string `yaml:"color"`                  // awesome-cv color scheme suffix
	ShowTechnologies    bool   `yaml:"show_technologies"`      // emit the technologies line per job
	MaxHighlightsPerJob int    `yaml:"max_highlights_per_job"` // 0 = unlimited
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Template:            DefaultTemplate,
		Color:               DefaultColor,
		ShowTechnologies:    true,
		MaxHighlightsPerJob: 0,
	}
}

// Load reads the config file at path, overlaying its keys on the defaults.
// A missing file is not an error: defaults apply. A file that exists but
// does not parse is fatal (ErrConfigParse); unknown keys are rejected so
// typos surface instead of silently doing nothing.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if len(data) == 0 {
		return cfg, nil
	}

	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}
