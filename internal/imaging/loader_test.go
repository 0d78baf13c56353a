package imaging

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	img := createInMemoryImage(40, 30, color.White)
	fillRect(img, 10, 5, 20, 15, color.RGBA{200, 10, 30, 255})

	path := filepath.Join(t.TempDir(), "sample.png")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Bounds().Dx() != 40 || loaded.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}

	got, err := SampleColor(loaded, 12, 7)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if got.R != 200 || got.G != 10 || got.B != 30 {
		t.Errorf("pixel: got (%d,%d,%d), want (200,10,30)", got.R, got.G, got.B)
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Error("Load should fail for nonexistent file")
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	img := createInMemoryImage(4, 4, color.Black)
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "x.png")

	if err := Save(img, path); err == nil {
		t.Error("Save should fail when the directory does not exist")
	}
}
