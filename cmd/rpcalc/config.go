package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds defaults for flags that aren't given on the command line.
type config struct {
	// Format is the result formatting string.
	Format string `yaml:"format"`
	// Lines is whether each input line is a separate expression.
	Lines bool `yaml:"lines"`
	// Echo is whether tokens are printed before results.
	Echo bool `yaml:"echo"`
}

func readConfig(name string) (config, error) {
	f, err := os.Open(name)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	cfg, err := loadConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// loadConfig decodes a YAML config. Keys that aren't config fields are
// errors. An empty document gives the default config.
func loadConfig(r io.Reader) (config, error) {
	cfg := config{Format: "%g"}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, err
	}
	if cfg.Format == "" {
		return config{}, errors.New("empty format")
	}
	return cfg, nil
}
