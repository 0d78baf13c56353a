// Package palette holds the base color catalog and the jittered color sampler.
//
// A base color has two identities: its name, which is what ends up in the
// class label, and its canonical RGB value, which is only a reference point
// for rendering. Rendered pixels are drawn with a perturbed copy of the
// reference value so the detector learns the color family rather than one
// exact triple.
package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultFallbackJitter is the jitter radius used for colors without an
// explicit radius.
const DefaultFallbackJitter = 30

// White is the name of the color forced onto black backgrounds. It also
// gets the brightness floor in Sample.
const White = "white"

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// NRGBA returns the opaque image/color value for c.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns c formatted as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// BaseColor is a named catalog entry. Name is the identity; RGB is the
// unjittered reference value.
type BaseColor struct {
	Name string
	RGB  RGB
}

// Entry describes a catalog color before parsing. A negative Jitter selects
// the catalog's fallback radius.
type Entry struct {
	Name   string
	Hex    string
	Jitter int
}

var defaultEntries = []Entry{
	{Name: "red", Hex: "#ff0000", Jitter: 40},
	{Name: "orange", Hex: "#ffa500", Jitter: 40},
	{Name: "yellow", Hex: "#ffff00", Jitter: 40},
	{Name: "green", Hex: "#00ff00", Jitter: 40},
	{Name: "cyan", Hex: "#00ffff", Jitter: 40},
	{Name: "blue", Hex: "#0000ff", Jitter: 40},
	{Name: "purple", Hex: "#800080", Jitter: 40},
	{Name: "black", Hex: "#000000", Jitter: 25},
	{Name: White, Hex: "#ffffff", Jitter: 25},
}

// DefaultEntries returns a copy of the built-in catalog: seven hues, black
// and white, in label order.
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// Catalog is an immutable, ordered set of base colors with their jitter
// radii. It is safe for concurrent use.
type Catalog struct {
	colors   []BaseColor
	index    map[string]int
	jitter   map[string]int
	fallback int
}

// NewCatalog parses entries in order. Names must be unique and non-empty,
// hex values must parse and radii must not exceed 255.
func NewCatalog(entries []Entry, fallback int) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("color catalog is empty")
	}
	if fallback < 0 || fallback > 255 {
		return nil, fmt.Errorf("fallback jitter %d outside [0,255]", fallback)
	}

	c := &Catalog{
		colors:   make([]BaseColor, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
		jitter:   make(map[string]int, len(entries)),
		fallback: fallback,
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("color with hex %q has no name", e.Hex)
		}
		if _, dup := c.index[e.Name]; dup {
			return nil, fmt.Errorf("duplicate color %q", e.Name)
		}
		parsed, err := colorful.Hex(e.Hex)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", e.Name, err)
		}
		if e.Jitter > 255 {
			return nil, fmt.Errorf("color %q: jitter %d exceeds 255", e.Name, e.Jitter)
		}
		r, g, b := parsed.RGB255()
		c.index[e.Name] = len(c.colors)
		c.colors = append(c.colors, BaseColor{Name: e.Name, RGB: RGB{R: r, G: g, B: b}})
		if e.Jitter >= 0 {
			c.jitter[e.Name] = e.Jitter
		}
	}
	return c, nil
}

// DefaultCatalog returns the built-in nine-color catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultEntries, DefaultFallbackJitter)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of colors.
func (c *Catalog) Len() int { return len(c.colors) }

// Names returns the color names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.colors))
	for i, bc := range c.colors {
		names[i] = bc.Name
	}
	return names
}

// Lookup returns the base color called name.
func (c *Catalog) Lookup(name string) (BaseColor, bool) {
	i, ok := c.index[name]
	if !ok {
		return BaseColor{}, false
	}
	return c.colors[i], true
}

// Jitter returns the radius for name, or the fallback radius when the color
// has none configured.
func (c *Catalog) Jitter(name string) int {
	if r, ok := c.jitter[name]; ok {
		return r
	}
	return c.fallback
}

// Nearest returns the catalog color closest to rgb in CIE L*a*b* space.
func (c *Catalog) Nearest(rgb RGB) string {
	target := rgb.colorful()
	best, bestDist := "", math.Inf(1)
	for _, bc := range c.colors {
		if d := target.DistanceLab(bc.RGB.colorful()); d < bestDist {
			best, bestDist = bc.Name, d
		}
	}
	return best
}
