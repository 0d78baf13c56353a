// Package layout picks where on the canvas a shape is placed.
package layout

import (
	"fmt"
	"math/rand/v2"

	"github.com/ironsheep/shapegen/internal/shapes"
)

// Size bounds of a requested box, as fractions of the usable extent.
const (
	MinFraction = 0.3
	MaxFraction = 0.7
)

// Planner chooses requested boxes on a fixed canvas. The zero value is not
// usable; construct with New.
type Planner struct {
	width, height int
	margin        int
	minW, maxW    int
	minH, maxH    int
}

// New returns a planner for a width×height canvas keeping shapes margin
// pixels away from every edge. The usable extent on each axis must allow a
// box of at least one pixel at MinFraction.
func New(width, height, margin int) (*Planner, error) {
	if margin < 0 {
		return nil, fmt.Errorf("margin %d is negative", margin)
	}
	usableW := width - 2*margin
	usableH := height - 2*margin
	if usableW <= 0 || usableH <= 0 {
		return nil, fmt.Errorf("canvas %dx%d leaves no room inside margin %d", width, height, margin)
	}

	p := &Planner{
		width:  width,
		height: height,
		margin: margin,
		minW:   int(float64(usableW) * MinFraction),
		maxW:   int(float64(usableW) * MaxFraction),
		minH:   int(float64(usableH) * MinFraction),
		maxH:   int(float64(usableH) * MaxFraction),
	}
	if p.minW < 1 || p.minH < 1 {
		return nil, fmt.Errorf("canvas %dx%d with margin %d is too small for a %.0f%% shape",
			width, height, margin, MinFraction*100)
	}
	return p, nil
}

// Width returns the canvas width.
func (p *Planner) Width() int { return p.width }

// Height returns the canvas height.
func (p *Planner) Height() int { return p.height }

// Margin returns the edge margin.
func (p *Planner) Margin() int { return p.margin }

// Usable returns the region shapes may occupy: the canvas inset by the margin.
func (p *Planner) Usable() shapes.Box {
	m := float64(p.margin)
	return shapes.Box{X1: m, Y1: m, X2: float64(p.width) - m, Y2: float64(p.height) - m}
}

// Plan draws a requested box. Width and height are uniform integers in
// [MinFraction, MaxFraction] of the usable extent; the top-left corner is
// uniform over the positions that keep the box inside the margin.
func (p *Planner) Plan(rng *rand.Rand) shapes.Box {
	w := between(rng, p.minW, p.maxW)
	h := between(rng, p.minH, p.maxH)
	x1 := between(rng, p.margin, p.width-p.margin-w)
	y1 := between(rng, p.margin, p.height-p.margin-h)

	return shapes.Box{
		X1: float64(x1),
		Y1: float64(y1),
		X2: float64(x1 + w),
		Y2: float64(y1 + h),
	}
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
