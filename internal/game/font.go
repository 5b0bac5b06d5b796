package game

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrFontMissing is returned when a configured font file does not exist.
var ErrFontMissing = errors.New("font not found")

// LoadFace loads the TrueType font at path, or the embedded Go Regular face
// when path is empty.
func LoadFace(path string, size float64) (text.Face, error) {
	data, name := goregular.TTF, "goregular"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFontMissing, path)
			}
			return nil, fmt.Errorf("read font: %w", err)
		}
		data, name = b, path
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &text.GoTextFace{
		Source: source,
		Size:   size,
	}, nil
}
