// Package label converts pixel boxes into normalized YOLO detection labels
// and back.
//
// A label line reads
//
//	<class_id> <x_center> <y_center> <width> <height>
//
// with the four geometry fields expressed as fractions of the canvas width
// and height and printed with six decimals.
package label

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/shapegen/internal/shapes"
)

// Label is one normalized detection.
type Label struct {
	ClassID int     `json:"class_id"`
	XCenter float64 `json:"x_center"`
	YCenter float64 `json:"y_center"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Normalize expresses box relative to a width×height canvas.
func Normalize(classID int, box shapes.Box, width, height int) Label {
	w, h := float64(width), float64(height)
	c := box.Center()
	return Label{
		ClassID: classID,
		XCenter: c.X / w,
		YCenter: c.Y / h,
		Width:   box.Width() / w,
		Height:  box.Height() / h,
	}
}

// Box converts l back into pixel coordinates on a width×height canvas.
func (l Label) Box(width, height int) shapes.Box {
	w, h := float64(width), float64(height)
	cx, cy := l.XCenter*w, l.YCenter*h
	hw, hh := l.Width*w/2, l.Height*h/2
	return shapes.Box{X1: cx - hw, Y1: cy - hh, X2: cx + hw, Y2: cy + hh}
}

// Valid reports whether every geometry field lies in [0,1], the extent is
// positive and the box stays inside the unit square.
func (l Label) Valid() bool {
	for _, v := range []float64{l.XCenter, l.YCenter, l.Width, l.Height} {
		if v < 0 || v > 1 {
			return false
		}
	}
	if l.Width <= 0 || l.Height <= 0 || l.ClassID < 0 {
		return false
	}
	const eps = 1e-6
	return l.XCenter-l.Width/2 >= -eps && l.XCenter+l.Width/2 <= 1+eps &&
		l.YCenter-l.Height/2 >= -eps && l.YCenter+l.Height/2 <= 1+eps
}

// String formats l as a label line without the trailing newline.
func (l Label) String() string {
	return fmt.Sprintf("%d %.6f %.6f %.6f %.6f", l.ClassID, l.XCenter, l.YCenter, l.Width, l.Height)
}

// Parse reads a single label line.
func Parse(line string) (Label, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Label{}, fmt.Errorf("label line has %d fields, want 5", len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Label{}, fmt.Errorf("invalid class id %q: %w", fields[0], err)
	}

	var vals [4]float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Label{}, fmt.Errorf("invalid field %d %q: %w", i+2, f, err)
		}
		vals[i] = v
	}

	return Label{ClassID: id, XCenter: vals[0], YCenter: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// ReadFile parses a label file holding exactly one label line.
func ReadFile(path string) (Label, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Label{}, fmt.Errorf("failed to read label: %w", err)
	}
	l, err := Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return Label{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// WriteFile writes l as a single newline-terminated line.
func WriteFile(path string, l Label) error {
	if err := os.WriteFile(path, []byte(l.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write label: %w", err)
	}
	return nil
}
