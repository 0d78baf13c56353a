package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"github.com/ironsheep/shapegen/internal/shapes"
)

// coverageThreshold is the minimum coverage (out of 255) for a pixel to be
// painted.
const coverageThreshold = 0x80

// kappa places cubic Bézier control points so four segments approximate an
// ellipse.
const kappa = 0.5522847498

// Canvas is an RGB drawing surface with a solid background. It implements
// shapes.Surface.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas creates a width×height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	return &Canvas{img: imaging.New(width, height, bg)}
}

// Image returns the underlying image. It aliases the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// FillPolygon fills the closed polygon through pts with fill. Fewer than
// three points draw nothing.
func (c *Canvas) FillPolygon(pts []shapes.Point, fill color.Color) {
	if len(pts) < 3 {
		return
	}
	z := c.rasterizer()
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	c.paint(z, fill)
}

// FillEllipse fills the ellipse inscribed in b with fill.
func (c *Canvas) FillEllipse(b shapes.Box, fill color.Color) {
	if !b.Valid() {
		return
	}
	ctr := b.Center()
	cx, cy := float32(ctr.X), float32(ctr.Y)
	rx, ry := float32(b.Width()/2), float32(b.Height()/2)
	kx, ky := rx*kappa, ry*kappa

	z := c.rasterizer()
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	c.paint(z, fill)
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// paint rasterizes the accumulated path into a coverage mask and copies fill
// into every pixel at or above coverageThreshold.
func (c *Canvas) paint(z *vector.Rasterizer, fill color.Color) {
	b := c.img.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	nc := color.NRGBAModel.Convert(fill).(color.NRGBA)
	for y := 0; y < b.Dy(); y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+b.Dx()]
		for x, a := range row {
			if a >= coverageThreshold {
				c.img.SetNRGBA(b.Min.X+x, b.Min.Y+y, nc)
			}
		}
	}
}
