package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ironsheep/shapegen/internal/imaging"
	"github.com/ironsheep/shapegen/internal/label"
	"github.com/ironsheep/shapegen/internal/palette"
	"github.com/ironsheep/shapegen/internal/shapes"
	"github.com/ironsheep/shapegen/internal/split"
)

// DefaultTolerance is the allowed distance in pixels between a labeled box
// edge and the detected foreground edge.
const DefaultTolerance = 4.0

// DefaultFillTolerance is the allowed difference between the measured and
// the expected share of the box covered by the shape.
const DefaultFillTolerance = 0.1

// FindingKind classifies an audit finding.
type FindingKind string

// Finding kinds. The last three are reported as warnings.
const (
	MissingImage      FindingKind = "missing-image"
	MissingLabel      FindingKind = "missing-label"
	BadLabel          FindingKind = "bad-label"
	UnknownClass      FindingKind = "unknown-class"
	NameMismatch      FindingKind = "name-mismatch"
	AggregateMismatch FindingKind = "aggregate-mismatch"
	BoxMismatch       FindingKind = "box-mismatch"
	NoForeground      FindingKind = "no-foreground"
	ColorMismatch     FindingKind = "color-mismatch"
	ShapeMismatch     FindingKind = "shape-mismatch"
)

// Finding is one problem with one sample.
type Finding struct {
	Split  string      `json:"split"`
	Name   string      `json:"name"`
	Kind   FindingKind `json:"kind"`
	Detail string      `json:"detail"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s/%s: %s: %s", f.Split, f.Name, f.Kind, f.Detail)
}

// AuditOptions tunes Audit. Zero values select the defaults.
type AuditOptions struct {
	// Tolerance is the maximum edge distance in pixels.
	Tolerance float64

	// Level is the foreground threshold passed to ForegroundBounds.
	Level uint8

	// FillTolerance bounds the fill ratio check.
	FillTolerance float64

	// Catalog resolves pixel colors to names for the color check.
	Catalog *palette.Catalog
}

func (o AuditOptions) withDefaults() AuditOptions {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.FillTolerance <= 0 {
		o.FillTolerance = DefaultFillTolerance
	}
	if o.Level == 0 {
		o.Level = imaging.DefaultForegroundLevel
	}
	if o.Catalog == nil {
		o.Catalog = palette.DefaultCatalog()
	}
	return o
}

// Report is the outcome of Audit.
type Report struct {
	Checked  int       `json:"checked"`
	Errors   []Finding `json:"errors,omitempty"`
	Warnings []Finding `json:"warnings,omitempty"`
}

// OK reports whether the dataset has no errors. Warnings do not count.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Audit re-reads a generated dataset and checks that every label agrees
// with its image:
//
//   - every label has an image and every image has a label
//   - the label parses, is normalized and names a known class
//   - the file name matches the class
//   - the labels_all copy is identical
//   - the labeled box matches the rendered foreground within Tolerance
//
// Three softer checks are reported as warnings: a foreground that cannot be
// told apart from the background (a light white on a white canvas), a
// center pixel nearer to another catalog color, and a fill ratio that does
// not fit the labeled shape.
//
// The error is reserved for problems that stop the audit itself, such as an
// unreadable class list or a cancelled context.
func Audit(ctx context.Context, root string, opts AuditOptions, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &auditor{
		paths: Paths{Root: root},
		opts:  opts.withDefaults(),
		log:   log,
		rep:   &Report{},
	}

	names, err := ReadClasses(a.paths.Classes())
	if err != nil {
		return nil, err
	}
	a.names = names

	for _, sp := range split.All {
		if err := a.auditSplit(ctx, sp); err != nil {
			return a.rep, err
		}
	}

	log.Info("audit finished",
		zap.String("root", root),
		zap.Int("checked", a.rep.Checked),
		zap.Int("errors", len(a.rep.Errors)),
		zap.Int("warnings", len(a.rep.Warnings)),
	)
	return a.rep, nil
}

type auditor struct {
	paths Paths
	opts  AuditOptions
	log   *zap.Logger
	names []string
	rep   *Report
}

func (a *auditor) fail(sp split.Split, name string, kind FindingKind, format string, args ...any) {
	f := Finding{Split: sp.String(), Name: name, Kind: kind, Detail: fmt.Sprintf(format, args...)}
	a.log.Debug("audit error", zap.Stringer("finding", f))
	a.rep.Errors = append(a.rep.Errors, f)
}

func (a *auditor) warn(sp split.Split, name string, kind FindingKind, format string, args ...any) {
	f := Finding{Split: sp.String(), Name: name, Kind: kind, Detail: fmt.Sprintf(format, args...)}
	a.log.Debug("audit warning", zap.Stringer("finding", f))
	a.rep.Warnings = append(a.rep.Warnings, f)
}

func (a *auditor) auditSplit(ctx context.Context, sp split.Split) error {
	labels, err := stems(a.paths.LabelDir(sp), LabelExt)
	if err != nil {
		return err
	}
	images, err := stems(a.paths.ImageDir(sp), ImageExt)
	if err != nil {
		return err
	}

	for _, name := range images {
		if !contains(labels, name) {
			a.fail(sp, name, MissingLabel, "image has no label")
		}
	}
	for _, name := range labels {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.rep.Checked++
		a.auditSample(sp, name)
	}
	return nil
}

func (a *auditor) auditSample(sp split.Split, name string) {
	labelPath := a.paths.LabelPath(sp, name)
	l, err := label.ReadFile(labelPath)
	if err != nil {
		a.fail(sp, name, BadLabel, "%v", err)
		return
	}
	if !l.Valid() {
		a.fail(sp, name, BadLabel, "label %q is not normalized", l.String())
		return
	}
	if l.ClassID >= len(a.names) {
		a.fail(sp, name, UnknownClass, "class id %d, only %d classes", l.ClassID, len(a.names))
		return
	}

	color, shape, ok := splitClassName(a.names[l.ClassID])
	if !ok {
		a.fail(sp, name, UnknownClass, "class name %q is malformed", a.names[l.ClassID])
		return
	}
	if !strings.HasPrefix(name, shape+"_"+color+"_") {
		a.fail(sp, name, NameMismatch, "file name does not match class %s", a.names[l.ClassID])
	}

	if err := sameFile(labelPath, a.paths.AggregatePath(name)); err != nil {
		a.fail(sp, name, AggregateMismatch, "%v", err)
	}

	img, err := imaging.Load(a.paths.ImagePath(sp, name))
	if err != nil {
		a.fail(sp, name, MissingImage, "%v", err)
		return
	}
	a.auditPixels(sp, name, img, l, color, shape)
}

func (a *auditor) auditPixels(sp split.Split, name string, img image.Image, l label.Label, color, shape string) {
	b := img.Bounds()
	want := l.Box(b.Dx(), b.Dy())

	bg := backgroundOf(img)
	region, ok := imaging.Foreground(img, bg.NRGBA(), a.opts.Level)
	if !ok {
		a.warn(sp, name, NoForeground, "shape is indistinguishable from background %s", bg.Hex())
		return
	}

	got := region.Bounds.Sub(b.Min)
	edges := []struct {
		side      string
		got, want float64
	}{
		{"left", float64(got.Min.X), want.X1},
		{"top", float64(got.Min.Y), want.Y1},
		{"right", float64(got.Max.X), want.X2},
		{"bottom", float64(got.Max.Y), want.Y2},
	}
	for _, e := range edges {
		if math.Abs(e.got-e.want) > a.opts.Tolerance {
			a.fail(sp, name, BoxMismatch, "%s edge at %.1f, label says %.1f", e.side, e.got, e.want)
		}
	}

	kind, _ := shapes.ParseKind(shape)
	if fill, expect := region.Fill(), kind.FillRatio(); math.Abs(fill-expect) > a.opts.FillTolerance {
		a.warn(sp, name, ShapeMismatch, "fill ratio %.3f, a %s covers %.3f", fill, shape, expect)
	}

	c := want.Center()
	px, err := imaging.SampleColor(img, b.Min.X+int(c.X), b.Min.Y+int(c.Y))
	if err != nil {
		a.fail(sp, name, BoxMismatch, "%v", err)
		return
	}
	if nearest := a.opts.Catalog.Nearest(px); nearest != color {
		a.warn(sp, name, ColorMismatch, "center pixel %s is nearest to %s, labeled %s", px.Hex(), nearest, color)
	}
}

// backgroundOf returns the most common of the four corner colors.
func backgroundOf(img image.Image) palette.RGB {
	b := img.Bounds()
	corners := [][2]int{
		{b.Min.X, b.Min.Y},
		{b.Max.X - 1, b.Min.Y},
		{b.Min.X, b.Max.Y - 1},
		{b.Max.X - 1, b.Max.Y - 1},
	}
	counts := make(map[palette.RGB]int, len(corners))
	var best palette.RGB
	for _, xy := range corners {
		c, err := imaging.SampleColor(img, xy[0], xy[1])
		if err != nil {
			continue
		}
		counts[c]++
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// splitClassName splits "color_shape". Shape names never contain an
// underscore, so the last one separates the two.
func splitClassName(class string) (color, shape string, ok bool) {
	i := strings.LastIndexByte(class, '_')
	if i <= 0 || i == len(class)-1 {
		return "", "", false
	}
	color, shape = class[:i], class[i+1:]
	if _, err := shapes.ParseKind(shape); err != nil {
		return "", "", false
	}
	return color, shape, true
}

func sameFile(a, b string) error {
	x, err := os.ReadFile(a)
	if err != nil {
		return err
	}
	y, err := os.ReadFile(b)
	if err != nil {
		return err
	}
	if !bytes.Equal(x, y) {
		return fmt.Errorf("%s differs from %s", filepath.Base(filepath.Dir(b)), filepath.Base(filepath.Dir(a)))
	}
	return nil
}

// stems lists the names in dir ending in ext, without the extension. A
// missing directory is empty.
func stems(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ext) {
			out = append(out, strings.TrimSuffix(e.Name(), ext))
		}
	}
	return out, nil
}

func contains(sorted []string, s string) bool {
	_, found := slices.BinarySearch(sorted, s)
	return found
}
