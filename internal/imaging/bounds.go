package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// DefaultForegroundLevel is the grayscale difference from the background at
// which a pixel counts as foreground.
const DefaultForegroundLevel = 8

// Region is the foreground found on a solid background.
type Region struct {
	// Bounds encloses every foreground pixel, with an exclusive Max.
	Bounds image.Rectangle

	// Pixels is the number of foreground pixels.
	Pixels int
}

// Fill returns the share of Bounds covered by foreground pixels.
func (r Region) Fill() float64 {
	area := r.Bounds.Dx() * r.Bounds.Dy()
	if area == 0 {
		return 0
	}
	return float64(r.Pixels) / float64(area)
}

// ForegroundBounds returns the smallest rectangle enclosing every pixel that
// differs from the solid background bg. See Foreground.
func ForegroundBounds(img image.Image, bg color.Color, level uint8) (image.Rectangle, bool) {
	r, ok := Foreground(img, bg, level)
	return r.Bounds, ok
}

// Foreground locates every pixel that differs from the solid background bg.
//
// # Algorithm
//
//  1. Difference: per-channel |img - bg| against a solid bg backdrop
//  2. Grayscale: collapse the difference to luminance
//  3. Threshold: pixels at or above level become foreground
//  4. Scan: min/max and count over foreground pixels
//
// Bounds is in img's coordinate space. ok is false when no pixel reaches
// level.
func Foreground(img image.Image, bg color.Color, level uint8) (Region, bool) {
	bounds := img.Bounds()
	backdrop := imaging.New(bounds.Dx(), bounds.Dy(), bg)

	diff := blend.Difference(backdrop, img)
	mask := segment.Threshold(effect.Grayscale(diff), level)

	mb := mask.Bounds()
	minX, minY := mb.Max.X, mb.Max.Y
	maxX, maxY := mb.Min.X-1, mb.Min.Y-1
	pixels := 0
	for y := mb.Min.Y; y < mb.Max.Y; y++ {
		for x := mb.Min.X; x < mb.Max.X; x++ {
			if mask.GrayAt(x, y).Y == 0 {
				continue
			}
			pixels++
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return Region{}, false
	}

	off := bounds.Min.Sub(mb.Min)
	return Region{Bounds: image.Rect(minX, minY, maxX+1, maxY+1).Add(off), Pixels: pixels}, true
}
