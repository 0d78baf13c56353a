package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ironsheep/shapegen/internal/split"
)

// File and directory names under the output root.
const (
	ImagesDir    = "images"
	LabelsDir    = "labels"
	AggregateDir = "labels_all"
	ClassesFile  = "classes.txt"
	DataYAMLFile = "data.yaml"
	ArchiveFile  = "labels_all.tar.xz"
	ImageExt     = ".png"
	LabelExt     = ".txt"
)

// Paths resolves every output location under Root.
type Paths struct {
	Root string
}

// ImageDir returns images/<split>.
func (p Paths) ImageDir(s split.Split) string {
	return filepath.Join(p.Root, ImagesDir, s.String())
}

// LabelDir returns labels/<split>.
func (p Paths) LabelDir(s split.Split) string {
	return filepath.Join(p.Root, LabelsDir, s.String())
}

// AggregateDir returns labels_all.
func (p Paths) AggregateDir() string {
	return filepath.Join(p.Root, AggregateDir)
}

// ImagePath returns the image file for base in split s.
func (p Paths) ImagePath(s split.Split, base string) string {
	return filepath.Join(p.ImageDir(s), base+ImageExt)
}

// LabelPath returns the split label file for base.
func (p Paths) LabelPath(s split.Split, base string) string {
	return filepath.Join(p.LabelDir(s), base+LabelExt)
}

// AggregatePath returns the labels_all copy for base.
func (p Paths) AggregatePath(base string) string {
	return filepath.Join(p.AggregateDir(), base+LabelExt)
}

// Classes returns the class list path.
func (p Paths) Classes() string { return filepath.Join(p.Root, ClassesFile) }

// DataYAML returns the dataset descriptor path.
func (p Paths) DataYAML() string { return filepath.Join(p.Root, DataYAMLFile) }

// Archive returns the aggregate label archive path.
func (p Paths) Archive() string { return filepath.Join(p.Root, ArchiveFile) }

// Prepare creates every output directory.
func (p Paths) Prepare() error {
	dirs := []string{p.AggregateDir()}
	for _, s := range split.All {
		dirs = append(dirs, p.ImageDir(s), p.LabelDir(s))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", d, err)
		}
	}
	return nil
}
