package dataset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/shapegen/internal/classes"
	"github.com/ironsheep/shapegen/internal/imaging"
	"github.com/ironsheep/shapegen/internal/label"
	"github.com/ironsheep/shapegen/internal/split"
)

// writeSample persists the image, then the split label, then the aggregate
// label. A failed image leaves no labels behind.
func writeSample(p Paths, s *Sample, img image.Image) error {
	base := s.BaseName()
	if err := imaging.Save(img, p.ImagePath(s.Split, base)); err != nil {
		return err
	}
	if err := label.WriteFile(p.LabelPath(s.Split, base), s.Label); err != nil {
		return err
	}
	return label.WriteFile(p.AggregatePath(base), s.Label)
}

// WriteClasses writes the class list, one name per line.
func WriteClasses(path string, reg *classes.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create class list: %w", err)
	}
	if _, err := reg.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write class list: %w", err)
	}
	return f.Close()
}

// ReadClasses reads a class list written by WriteClasses.
func ReadClasses(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class list: %w", err)
	}
	var names []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			names = append(names, string(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		names = append(names, string(data[start:]))
	}
	return names, nil
}

// dataYAML is the dataset descriptor understood by YOLO trainers.
type dataYAML struct {
	Path  string   `yaml:"path"`
	Train string   `yaml:"train"`
	Val   string   `yaml:"val"`
	NC    int      `yaml:"nc"`
	Names []string `yaml:"names"`
}

// WriteDataYAML writes data.yaml pointing at the image directories.
func WriteDataYAML(p Paths, reg *classes.Registry) error {
	root, err := filepath.Abs(p.Root)
	if err != nil {
		root = p.Root
	}
	doc := dataYAML{
		Path:  filepath.ToSlash(root),
		Train: ImagesDir + "/" + split.Train.String(),
		Val:   ImagesDir + "/" + split.Val.String(),
		NC:    reg.Len(),
		Names: reg.Names(),
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode data.yaml: %w", err)
	}
	if err := os.WriteFile(p.DataYAML(), out, 0o644); err != nil {
		return fmt.Errorf("failed to write data.yaml: %w", err)
	}
	return nil
}
