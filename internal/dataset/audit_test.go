package dataset

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/shapegen/internal/label"
	"github.com/ironsheep/shapegen/internal/palette"
	"github.com/ironsheep/shapegen/internal/shapes"
)

func kinds(findings []Finding) []FindingKind {
	out := make([]FindingKind, len(findings))
	for i, f := range findings {
		out[i] = f.Kind
	}
	return out
}

// generated writes a small dataset and returns its generator.
func generated(t *testing.T, count int) *Generator {
	t.Helper()
	g, err := NewGenerator(smallConfig(t, count), nil)
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	require.NoError(t, err)
	return g
}

// visibleSample returns a sample whose shape differs clearly from its
// background, i.e. anything but white on white.
func visibleSample(t *testing.T, g *Generator) *Sample {
	t.Helper()
	for i := range g.Assignment() {
		s, _ := g.Sample(i)
		if s.Background == blackBackground || s.Color != palette.White {
			return s
		}
	}
	t.Fatal("no visible sample")
	return nil
}

func TestAudit_CleanDataset(t *testing.T) {
	g := generated(t, 20)

	rep, err := Audit(context.Background(), g.Paths().Root, AuditOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, rep.Checked)
	assert.True(t, rep.OK(), "errors: %v", rep.Errors)
	for _, w := range rep.Warnings {
		assert.Contains(t, []FindingKind{NoForeground, ColorMismatch, ShapeMismatch}, w.Kind)
	}
}

func TestAudit_ShiftedLabel(t *testing.T) {
	g := generated(t, 12)
	s := visibleSample(t, g)
	p := g.Paths()

	shifted := s.Label
	shifted.XCenter -= 10.0 / 320
	require.NoError(t, label.WriteFile(p.LabelPath(s.Split, s.BaseName()), shifted))

	rep, err := Audit(context.Background(), p.Root, AuditOptions{}, nil)
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Contains(t, kinds(rep.Errors), BoxMismatch)
	assert.Contains(t, kinds(rep.Errors), AggregateMismatch)
}

func TestAudit_MissingFiles(t *testing.T) {
	g := generated(t, 12)
	p := g.Paths()

	s0, _ := g.Sample(0)
	require.NoError(t, os.Remove(p.ImagePath(s0.Split, s0.BaseName())))

	s1, _ := g.Sample(1)
	require.NoError(t, os.Remove(p.LabelPath(s1.Split, s1.BaseName())))

	rep, err := Audit(context.Background(), p.Root, AuditOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 11, rep.Checked)
	assert.ElementsMatch(t, []FindingKind{MissingImage, MissingLabel}, kinds(rep.Errors))
}

func TestAudit_BadLabels(t *testing.T) {
	g := generated(t, 4)
	p := g.Paths()

	s0, _ := g.Sample(0)
	require.NoError(t, os.WriteFile(p.LabelPath(s0.Split, s0.BaseName()), []byte("not a label\n"), 0o644))

	s1, _ := g.Sample(1)
	unknown := s1.Label
	unknown.ClassID = 99
	require.NoError(t, label.WriteFile(p.LabelPath(s1.Split, s1.BaseName()), unknown))

	rep, err := Audit(context.Background(), p.Root, AuditOptions{}, nil)
	require.NoError(t, err)
	assert.Contains(t, kinds(rep.Errors), BadLabel)
	assert.Contains(t, kinds(rep.Errors), UnknownClass)
}

func TestAudit_WrongClass(t *testing.T) {
	g := generated(t, 6)
	p := g.Paths()
	s, _ := g.Sample(2)

	other := s.Label
	other.ClassID = (s.ClassID + 1) % g.Registry().Len()
	require.NoError(t, label.WriteFile(p.LabelPath(s.Split, s.BaseName()), other))
	require.NoError(t, label.WriteFile(p.AggregatePath(s.BaseName()), other))

	rep, err := Audit(context.Background(), p.Root, AuditOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []FindingKind{NameMismatch}, kinds(rep.Errors))
}

func TestAudit_MissingClassList(t *testing.T) {
	_, err := Audit(context.Background(), t.TempDir(), AuditOptions{}, nil)
	assert.Error(t, err)
}

func TestAudit_Cancelled(t *testing.T) {
	g := generated(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Audit(ctx, g.Paths().Root, AuditOptions{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplitClassName(t *testing.T) {
	color, shape, ok := splitClassName("dark_red_star")
	require.True(t, ok)
	assert.Equal(t, "dark_red", color)
	assert.Equal(t, "star", shape)

	for _, bad := range []string{"star", "_star", "red_", "red_hexagon"} {
		_, _, ok := splitClassName(bad)
		assert.False(t, ok, bad)
	}
}

func TestAudit_ShapeMismatch(t *testing.T) {
	g := generated(t, 40)
	p := g.Paths()

	// Relabel a visible circle as a square of the same color; the disc
	// covers too little of its box.
	for i := range g.Assignment() {
		s, _ := g.Sample(i)
		if s.Shape != shapes.Circle || (s.Background == whiteBackground && s.Color == palette.White) {
			continue
		}
		square := s.Label
		square.ClassID = g.Registry().ID(s.Color, shapes.Square)
		require.NoError(t, label.WriteFile(p.LabelPath(s.Split, s.BaseName()), square))
		require.NoError(t, label.WriteFile(p.AggregatePath(s.BaseName()), square))

		rep, err := Audit(context.Background(), p.Root, AuditOptions{}, nil)
		require.NoError(t, err)
		assert.Contains(t, kinds(rep.Warnings), ShapeMismatch)
		assert.Contains(t, kinds(rep.Errors), NameMismatch)
		return
	}
	t.Skip("no visible circle drawn")
}
