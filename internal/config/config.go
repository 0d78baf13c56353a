// Package config defines the generator configuration, its defaults, YAML
// loading and validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/shapegen/internal/layout"
	"github.com/ironsheep/shapegen/internal/palette"
	"github.com/ironsheep/shapegen/internal/shapes"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Color is one catalog entry. A nil Jitter uses FallbackJitter.
type Color struct {
	Name   string `yaml:"name"`
	Hex    string `yaml:"hex"`
	Jitter *int   `yaml:"jitter,omitempty"`
}

// Config is the full set of generation options.
type Config struct {
	Width          int      `yaml:"width"`
	Height         int      `yaml:"height"`
	Count          int      `yaml:"count"`
	Margin         int      `yaml:"margin"`
	Colors         []Color  `yaml:"colors"`
	FallbackJitter int      `yaml:"fallback_jitter"`
	Shapes         []string `yaml:"shapes"`
	ValRatio       float64  `yaml:"val_ratio"`
	Output         string   `yaml:"output"`

	// Seed fixes every random draw. Zero picks a random seed per run.
	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"`

	// Archive packs labels_all/ into labels_all.tar.xz after generation.
	Archive bool `yaml:"archive"`
}

// Default returns the stock configuration: 2000 samples of 1080×720 with a
// 50px margin, nine colors, six shapes and a 20% validation split.
func Default() *Config {
	entries := palette.DefaultEntries()
	colors := make([]Color, len(entries))
	for i, e := range entries {
		jitter := e.Jitter
		colors[i] = Color{Name: e.Name, Hex: e.Hex, Jitter: &jitter}
	}

	kinds := shapes.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return &Config{
		Width:          1080,
		Height:         720,
		Count:          2000,
		Margin:         50,
		Colors:         colors,
		FallbackJitter: palette.DefaultFallbackJitter,
		Shapes:         names,
		ValRatio:       0.2,
		Output:         "dataset",
		Workers:        1,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Empty input yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks every option and that the catalogs can be built.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return invalid("count must be at least 1, got %d", c.Count)
	}
	if _, err := layout.New(c.Width, c.Height, c.Margin); err != nil {
		return invalid("%v", err)
	}
	if c.ValRatio < 0 || c.ValRatio > 1 {
		return invalid("val_ratio %v outside [0,1]", c.ValRatio)
	}
	if c.Output == "" {
		return invalid("output directory is empty")
	}
	if c.Workers < 1 {
		return invalid("workers must be at least 1, got %d", c.Workers)
	}

	cat, err := c.Catalog()
	if err != nil {
		return err
	}
	if _, ok := cat.Lookup(palette.White); !ok {
		return invalid("colors must include %q for black backgrounds", palette.White)
	}
	if _, err := c.ShapeKinds(); err != nil {
		return err
	}
	return nil
}

// Catalog builds the color catalog from Colors.
func (c *Config) Catalog() (*palette.Catalog, error) {
	entries := make([]palette.Entry, len(c.Colors))
	for i, col := range c.Colors {
		jitter := -1
		if col.Jitter != nil {
			if *col.Jitter < 0 {
				return nil, invalid("color %q: jitter %d is negative", col.Name, *col.Jitter)
			}
			jitter = *col.Jitter
		}
		entries[i] = palette.Entry{Name: col.Name, Hex: col.Hex, Jitter: jitter}
	}
	cat, err := palette.NewCatalog(entries, c.FallbackJitter)
	if err != nil {
		return nil, invalid("%v", err)
	}
	return cat, nil
}

// ShapeKinds resolves Shapes in order.
func (c *Config) ShapeKinds() ([]shapes.Kind, error) {
	if len(c.Shapes) == 0 {
		return nil, invalid("shapes list is empty")
	}
	kinds, err := shapes.ParseKinds(c.Shapes)
	if err != nil {
		return nil, invalid("%v", err)
	}
	return kinds, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
