package gfx

import (
	"errors"
	"fmt"
	"image/png"
	"os"
)

var ErrNoSnapshot = errors.New("backend keeps no presented frame")

// SaveSnapshot writes the last presented frame as PNG.
func SaveSnapshot(w *Window, path string) error {
	img, ok := w.Snapshot()
	if !ok {
		return fmt.Errorf("%s: %w", w.Backend(), ErrNoSnapshot)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
