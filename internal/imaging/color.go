package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/shapegen/internal/palette"
)

// SampleColor returns the 8-bit RGB value of the pixel at (x, y).
//
// Coordinates are absolute image coordinates. For 16-bit images, values are
// scaled down by right-shifting 8 bits. Alpha is ignored.
func SampleColor(img image.Image, x, y int) (palette.RGB, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return palette.RGB{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, _ := img.At(x, y).RGBA()
	return palette.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, nil
}
