//go:build !purego && !js

package main

import (
	"fmt"

	"gocv.io/x/gocv"

	re "rasteredge/pkg/rasteredge"
)

func loadImageGrid(path string) (*re.Grid, error) {
	src := gocv.IMRead(path, gocv.IMReadGrayScale)
	if src.Empty() {
		return nil, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	w, h := src.Cols(), src.Rows()
	data, err := src.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	// Scale 8-bit samples up to the 16-bit range the pure loader
	// produces, so both backends feed the filter the same magnitudes.
	pixels := make([]uint16, w*h)
	for i, b := range data[:w*h] {
		pixels[i] = uint16(b) << 8
	}
	return re.PixelsToGrid(pixels, w, h), nil
}
