//go:build purego || js

package main

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	re "rasteredge/pkg/rasteredge"
)

func saveImageGrid(path string, g *re.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image: %w", err)
	}
	defer f.Close()

	img := re.GridToGray16(g)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		err = fmt.Errorf("unsupported output image format: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	return nil
}
