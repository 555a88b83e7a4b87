package config

import (
	"errors"
	"io"
	"os"

	"blindpoker/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// output formats
const (
	OutputText   = "text"
	OutputPretty = "pretty"
	OutputJSON   = "json"
)

// Config provides configuration for blindpoker
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Output struct {
		Format  string `yaml:"format" envconfig:"format"`
		Verbose bool   `yaml:"verbose" envconfig:"verbose"`
	} `yaml:"output"`
	Deal struct {
		Seed  int64 `yaml:"seed" envconfig:"seed"`
		Count int   `yaml:"count" envconfig:"count"`
	} `yaml:"deal"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Output.Format = OutputText
	cfg.Deal.Count = 1

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BLINDPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		// an empty file decodes to io.EOF
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("blindpoker", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values that are not free-form
func (c Config) Validate() error {
	switch c.Output.Format {
	case OutputText, OutputPretty, OutputJSON:
	default:
		return errors.New("output.format must be one of text, pretty or json")
	}

	if c.Deal.Seed < 0 {
		return errors.New("deal.seed cannot be negative")
	}

	if c.Deal.Count < 1 {
		return errors.New("deal.count must be at least 1")
	}

	return nil
}
