package shapes

import (
	"fmt"
	"image/color"
	"math"
)

// starInnerRatio is the inner radius of a star relative to its outer radius.
const starInnerRatio = 0.5

// Surface is the rasterizer capability the renderer draws onto.
type Surface interface {
	// FillPolygon fills the closed polygon through pts.
	FillPolygon(pts []Point, c color.Color)

	// FillEllipse fills the ellipse inscribed in b.
	FillEllipse(b Box, c color.Color)
}

// Outline is the resolved geometry of one shape.
type Outline struct {
	Kind Kind

	// Ellipse is true when the shape is the ellipse inscribed in Box;
	// Vertices is nil in that case.
	Ellipse bool

	// Vertices is the closed polygon, in drawing order.
	Vertices []Point

	// Box is the bounding box the shape occupies. This is the box used for
	// labeling and may be smaller than the requested box.
	Box Box
}

// Plan resolves the outline of kind k for the requested box.
func Plan(k Kind, requested Box) Outline {
	switch k {
	case Circle:
		return Outline{Kind: k, Ellipse: true, Box: requested}
	case Square:
		return squareOutline(requested)
	case Rectangle:
		return polygonOutline(k, corners(requested), requested)
	case Triangle:
		return triangleOutline(requested)
	case Star:
		return starOutline(requested)
	case Diamond:
		return diamondOutline(requested)
	default:
		panic(fmt.Sprintf("shapes: unknown kind %d", int(k)))
	}
}

// Draw fills the outline onto dst.
func (o Outline) Draw(dst Surface, fill color.Color) {
	if o.Ellipse {
		dst.FillEllipse(o.Box, fill)
		return
	}
	dst.FillPolygon(o.Vertices, fill)
}

// Render draws a shape of kind k into requested and returns the box it
// actually occupies.
func Render(dst Surface, k Kind, requested Box, fill color.Color) Box {
	o := Plan(k, requested)
	o.Draw(dst, fill)
	return o.Box
}

func polygonOutline(k Kind, pts []Point, box Box) Outline {
	return Outline{Kind: k, Vertices: pts, Box: box}
}

func corners(b Box) []Point {
	return []Point{{b.X1, b.Y1}, {b.X2, b.Y1}, {b.X2, b.Y2}, {b.X1, b.Y2}}
}

func squareOutline(b Box) Outline {
	side := math.Min(b.Width(), b.Height())
	sq := Box{X1: b.X1, Y1: b.Y1, X2: b.X1 + side, Y2: b.Y1 + side}
	return polygonOutline(Square, corners(sq), sq)
}

func triangleOutline(b Box) Outline {
	pts := []Point{
		{X: (b.X1 + b.X2) / 2, Y: b.Y1},
		{X: b.X1, Y: b.Y2},
		{X: b.X2, Y: b.Y2},
	}
	return polygonOutline(Triangle, pts, b)
}

func starOutline(b Box) Outline {
	c := b.Center()
	outer := math.Min(b.Width(), b.Height()) / 2
	inner := outer * starInnerRatio

	pts := make([]Point, 10)
	for i := range pts {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
	}
	return polygonOutline(Star, pts, BoundsOf(pts))
}

func diamondOutline(b Box) Outline {
	c := b.Center()
	pts := []Point{
		{X: c.X, Y: b.Y1},
		{X: b.X2, Y: c.Y},
		{X: c.X, Y: b.Y2},
		{X: b.X1, Y: c.Y},
	}
	return polygonOutline(Diamond, pts, b)
}

// Area returns the area enclosed by the outline.
func (o Outline) Area() float64 {
	if o.Ellipse {
		return math.Pi / 4 * o.Box.Width() * o.Box.Height()
	}
	// Shoelace.
	var twice float64
	n := len(o.Vertices)
	for i, p := range o.Vertices {
		q := o.Vertices[(i+1)%n]
		twice += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(twice) / 2
}

// FillRatio returns the share of its own bounding box that a shape of kind
// k covers. The ratio does not depend on the requested box.
func (k Kind) FillRatio() float64 {
	o := Plan(k, Box{X2: 100, Y2: 60})
	return o.Area() / (o.Box.Width() * o.Box.Height())
}
