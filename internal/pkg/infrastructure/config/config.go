package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Cfg carries the portal settings that are file based rather than
// environment based.
type Cfg struct {
	Geocoder struct {
		SearchURL string `yaml:"searchUrl"`
	} `yaml:"geocoder"`
	Coverage struct {
		MaxEntries      int    `yaml:"maxEntries"`
		DefaultTimezone string `yaml:"defaultTimezone"`
	} `yaml:"coverage"`
}

// Defaults returns the configuration used when no file is supplied.
func Defaults() *Cfg {
	cfg := &Cfg{}
	cfg.Geocoder.SearchURL = "https://nominatim.openstreetmap.org/search"
	cfg.Coverage.MaxEntries = 99
	cfg.Coverage.DefaultTimezone = "UTC"
	return cfg
}

// Load reads a YAML configuration, filling unset values from Defaults.
func Load(input io.Reader) (*Cfg, error) {
	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	cfg := Defaults()

	if err = yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Coverage.MaxEntries < 1 {
		cfg.Coverage.MaxEntries = Defaults().Coverage.MaxEntries
	}

	return cfg, nil
}
