package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestForegroundBounds(t *testing.T) {
	tests := []struct {
		name string
		bg   color.Color
		fg   color.Color
	}{
		{"black on white", color.White, color.RGBA{0, 0, 0, 255}},
		{"yellow on white", color.White, color.RGBA{255, 255, 0, 255}},
		{"white on black", color.Black, color.RGBA{235, 240, 250, 255}},
		{"purple on white", color.White, color.RGBA{128, 0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(50, 40, tt.bg)
			fillRect(img, 5, 6, 15, 20, tt.fg)

			r, ok := ForegroundBounds(img, tt.bg, DefaultForegroundLevel)
			if !ok {
				t.Fatal("ForegroundBounds found nothing")
			}
			if want := image.Rect(5, 6, 15, 20); r != want {
				t.Errorf("got %v, want %v", r, want)
			}
		})
	}
}

func TestForegroundBounds_Empty(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	if _, ok := ForegroundBounds(img, color.White, DefaultForegroundLevel); ok {
		t.Error("uniform image should have no foreground")
	}
}

func TestForegroundBounds_BelowLevel(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)
	fillRect(img, 2, 2, 8, 8, color.RGBA{253, 253, 253, 255})

	if _, ok := ForegroundBounds(img, color.White, DefaultForegroundLevel); ok {
		t.Error("near-background pixels should not count as foreground")
	}
}

func TestForegroundBounds_OffsetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(100, 200, 140, 230))
	for y := 200; y < 230; y++ {
		for x := 100; x < 140; x++ {
			img.Set(x, y, color.White)
		}
	}
	for y := 210; y < 215; y++ {
		for x := 120; x < 125; x++ {
			img.Set(x, y, color.Black)
		}
	}

	r, ok := ForegroundBounds(img, color.White, DefaultForegroundLevel)
	if !ok {
		t.Fatal("ForegroundBounds found nothing")
	}
	if want := image.Rect(120, 210, 125, 215); r != want {
		t.Errorf("got %v, want %v", r, want)
	}
}

func TestForeground_Fill(t *testing.T) {
	img := createInMemoryImage(40, 40, color.Black)
	// An L shape: 10x10 block plus a 10x10 block to its right and below.
	fillRect(img, 10, 10, 20, 20, color.White)
	fillRect(img, 20, 20, 30, 30, color.White)

	r, ok := Foreground(img, color.Black, DefaultForegroundLevel)
	if !ok {
		t.Fatal("Foreground found nothing")
	}
	if r.Pixels != 200 {
		t.Errorf("Pixels = %d, want 200", r.Pixels)
	}
	if r.Bounds != image.Rect(10, 10, 30, 30) {
		t.Errorf("Bounds = %v", r.Bounds)
	}
	if r.Fill() != 0.5 {
		t.Errorf("Fill = %v, want 0.5", r.Fill())
	}
	if (Region{}).Fill() != 0 {
		t.Error("empty region should have zero fill")
	}
}
