package rasteredge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderPreview writes a JPG preview of the grid to a file: the
// grayscale edge map downscaled to screen size, with a legend strip
// underneath.
func RenderPreview(g *Grid, outputPath string) error {
	img, err := renderPreviewImage(g)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create preview file: %w", err)
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// RenderPreviewBytes renders the preview and returns it as JPEG bytes.
func RenderPreviewBytes(g *Grid) ([]byte, error) {
	img, err := renderPreviewImage(g)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderPreviewImage creates the preview image in memory.
func renderPreviewImage(g *Grid) (*image.RGBA, error) {
	if g == nil || g.rows == 0 || g.cols == 0 {
		return nil, fmt.Errorf("no grid data")
	}

	// Render at reduced resolution (at most 800px wide, proportional
	// height)
	imgW := g.cols
	scale := 1.0
	const targetWidth = 800
	if imgW > targetWidth {
		scale = float64(targetWidth) / float64(g.cols)
		imgW = targetWidth
	}
	imgH := int(float64(g.rows) * scale)
	if imgH < 1 {
		imgH = 1
	}

	// Reserve space for legend text at bottom
	legendH := 40
	totalH := imgH + legendH

	img := image.NewRGBA(image.Rect(0, 0, imgW, totalH))
	for y := 0; y < totalH; y++ {
		for x := 0; x < imgW; x++ {
			img.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}

	min, max, ok := g.MinMax()
	span := max - min
	if !ok || span == 0 {
		span = 1
	}

	// Nearest-neighbor sample of the grid onto the preview area; nodata
	// stays black.
	for y := 0; y < imgH; y++ {
		row := int(float64(y) / scale)
		if row >= g.rows {
			row = g.rows - 1
		}
		for x := 0; x < imgW; x++ {
			col := int(float64(x) / scale)
			if col >= g.cols {
				col = g.cols - 1
			}
			v := g.data[row*g.cols+col]
			if v == g.nodata {
				continue
			}
			gray := uint8((v - min) / span * 255)
			img.Set(x, y, color.RGBA{gray, gray, gray, 255})
		}
	}

	face := basicfont.Face7x13
	legendColor := color.RGBA{220, 220, 220, 255}
	legendY := imgH + 15
	sizeStr := fmt.Sprintf("%d x %d", g.cols, g.rows)
	rangeStr := fmt.Sprintf("min: %.4g  max: %.4g  nodata cells: %d", min, max, g.NodataCount())
	if !ok {
		rangeStr = "no valid cells"
	}

	drawText(img, face, sizeStr, 10, legendY, legendColor)
	drawText(img, face, rangeStr, 10, legendY+18, legendColor)

	return img, nil
}

// drawText draws a string at (x, y) using the given font face.
func drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
