package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFaceMissing(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "liberation.ttf"), 12)
	if !errors.Is(err, ErrFontMissing) {
		t.Fatalf("expected ErrFontMissing, got %v", err)
	}
}

func TestLoadFaceGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFace(path, 12)
	if err == nil || errors.Is(err, ErrFontMissing) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadFaceEmbedded(t *testing.T) {
	face, err := LoadFace("", 12)
	if err != nil {
		t.Fatalf("embedded font: %v", err)
	}
	if face == nil {
		t.Fatal("nil face")
	}
}
