package dataset

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/ironsheep/shapegen/internal/classes"
	"github.com/ironsheep/shapegen/internal/imaging"
	"github.com/ironsheep/shapegen/internal/label"
	"github.com/ironsheep/shapegen/internal/layout"
	"github.com/ironsheep/shapegen/internal/palette"
	"github.com/ironsheep/shapegen/internal/shapes"
	"github.com/ironsheep/shapegen/internal/split"
)

var (
	blackBackground = palette.RGB{}
	whiteBackground = palette.RGB{R: 255, G: 255, B: 255}
)

// Sample is one generated image with its label. It is never modified after
// Build returns it.
type Sample struct {
	Index      int
	Split      split.Split
	Color      string
	Shape      shapes.Kind
	Fill       palette.RGB
	Background palette.RGB
	Requested  shapes.Box
	Actual     shapes.Box
	ClassID    int
	Label      label.Label
}

// BaseName returns the file stem shared by the image and both label copies.
func (s *Sample) BaseName() string {
	return BaseName(s.Shape, s.Color, s.Index)
}

// BaseName formats "{shape}_{color}_{index+1:04d}".
func BaseName(shape shapes.Kind, color string, index int) string {
	return fmt.Sprintf("%s_%s_%04d", shape, color, index+1)
}

// Assembler builds samples from shared, read-only catalogs. It is safe for
// concurrent use as long as each goroutine passes its own generator.
type Assembler struct {
	catalog  *palette.Catalog
	colors   []string
	kinds    []shapes.Kind
	registry *classes.Registry
	planner  *layout.Planner
}

// NewAssembler wires the catalogs together. The class registry is built
// from the catalog's colors and kinds, in that order.
func NewAssembler(catalog *palette.Catalog, kinds []shapes.Kind, planner *layout.Planner) *Assembler {
	colors := catalog.Names()
	return &Assembler{
		catalog:  catalog,
		colors:   colors,
		kinds:    kinds,
		registry: classes.NewRegistry(colors, kinds),
		planner:  planner,
	}
}

// Registry returns the class registry.
func (a *Assembler) Registry() *classes.Registry {
	return a.registry
}

// Build draws sample index for split sp and returns it with its rendered
// image.
func (a *Assembler) Build(index int, sp split.Split, rng *rand.Rand) (*Sample, *image.NRGBA) {
	bg, color := whiteBackground, ""
	if rng.IntN(2) == 0 {
		bg, color = blackBackground, palette.White
	} else {
		color = a.colors[rng.IntN(len(a.colors))]
	}

	fill := a.catalog.Sample(color, rng)
	kind := a.kinds[rng.IntN(len(a.kinds))]
	classID := a.registry.ID(color, kind)
	requested := a.planner.Plan(rng)

	width, height := a.planner.Width(), a.planner.Height()
	canvas := imaging.NewCanvas(width, height, bg.NRGBA())
	actual := shapes.Render(canvas, kind, requested, fill.NRGBA())

	return &Sample{
		Index:      index,
		Split:      sp,
		Color:      color,
		Shape:      kind,
		Fill:       fill,
		Background: bg,
		Requested:  requested,
		Actual:     actual,
		ClassID:    classID,
		Label:      label.Normalize(classID, actual, width, height),
	}, canvas.Image()
}
