// Package classes enumerates the combination classes a detector is trained on.
//
// A combination class is one (color, shape) pair. Class ids are positions in
// the list built with colors as the outer loop and shapes as the inner loop;
// consumers depend on that order through classes.txt, so it must never change
// for a given color and shape list.
package classes

import (
	"fmt"
	"io"

	"github.com/ironsheep/shapegen/internal/shapes"
)

// Class is one combination class.
type Class struct {
	ID    int         `json:"id" yaml:"id"`
	Color string      `json:"color" yaml:"color"`
	Shape shapes.Kind `json:"shape" yaml:"shape"`
}

// Name returns the class name, "{color}_{shape}".
func (c Class) Name() string {
	return Name(c.Color, c.Shape)
}

// Name formats the class name for a color and shape.
func Name(color string, shape shapes.Kind) string {
	return color + "_" + shape.String()
}

// Registry is the immutable, ordered list of combination classes.
type Registry struct {
	classes []Class
	ids     map[string]int
}

// NewRegistry builds the registry for colors × kinds.
func NewRegistry(colors []string, kinds []shapes.Kind) *Registry {
	r := &Registry{
		classes: make([]Class, 0, len(colors)*len(kinds)),
		ids:     make(map[string]int, len(colors)*len(kinds)),
	}
	for _, color := range colors {
		for _, kind := range kinds {
			c := Class{ID: len(r.classes), Color: color, Shape: kind}
			r.classes = append(r.classes, c)
			r.ids[c.Name()] = c.ID
		}
	}
	return r
}

// Len returns the number of classes.
func (r *Registry) Len() int { return len(r.classes) }

// Classes returns a copy of the class list in id order.
func (r *Registry) Classes() []Class {
	out := make([]Class, len(r.classes))
	copy(out, r.classes)
	return out
}

// Names returns the class names in id order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.classes))
	for i, c := range r.classes {
		names[i] = c.Name()
	}
	return names
}

// Lookup returns the id of the (color, shape) pair.
func (r *Registry) Lookup(color string, shape shapes.Kind) (int, bool) {
	id, ok := r.ids[Name(color, shape)]
	return id, ok
}

// ID returns the id of the (color, shape) pair. The pair must come from the
// lists the registry was built with; anything else panics.
func (r *Registry) ID(color string, shape shapes.Kind) int {
	id, ok := r.Lookup(color, shape)
	if !ok {
		panic(fmt.Sprintf("classes: unknown class %q", Name(color, shape)))
	}
	return id
}

// Class returns the class with the given id.
func (r *Registry) Class(id int) (Class, bool) {
	if id < 0 || id >= len(r.classes) {
		return Class{}, false
	}
	return r.classes[id], true
}

// WriteTo writes one class name per line; line index equals class id.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range r.classes {
		n, err := io.WriteString(w, c.Name()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
