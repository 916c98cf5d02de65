//go:build !purego && !js

package main

import (
	"fmt"

	"gocv.io/x/gocv"

	re "rasteredge/pkg/rasteredge"
)

func saveImageGrid(path string, g *re.Grid) error {
	img := re.GridToGray(g)
	mat, err := gocv.NewMatFromBytes(g.Rows(), g.Cols(), gocv.MatTypeCV8UC1, img.Pix)
	if err != nil {
		return fmt.Errorf("building image matrix: %w", err)
	}
	defer mat.Close()

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("could not write image: %s", path)
	}
	return nil
}
