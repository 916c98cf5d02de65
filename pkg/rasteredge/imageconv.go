package rasteredge

import (
	"image"
)

// ImageNodata is the sentinel used for grids built from image pixels.
// No uint16 sample can take this value, so image-sourced grids never
// contain accidental nodata cells.
const ImageNodata = -32768.0

// PixelsToGrid converts a row-major uint16 pixel buffer into a grid
// with the ImageNodata sentinel.
func PixelsToGrid(pixels []uint16, width, height int) *Grid {
	g := NewGrid(height, width, ImageNodata)
	for i, p := range pixels {
		g.data[i] = float64(p)
	}
	return g
}

// ImageToGrid converts a decoded image into a grid of 16-bit luminance
// values with the ImageNodata sentinel.
func ImageToGrid(img image.Image) *Grid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]uint16, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = uint16((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
		}
	}
	return PixelsToGrid(pixels, w, h)
}

// GridToGray16 renders the grid as a 16-bit grayscale image, linearly
// scaling the [min, max] value range onto the full gray range. Nodata
// cells map to black.
func GridToGray16(g *Grid) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.cols, g.rows))
	min, max, ok := g.MinMax()
	span := max - min
	if !ok || span == 0 {
		span = 1
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			v := g.data[row*g.cols+col]
			if v == g.nodata {
				continue
			}
			scaled := (v - min) / span * 65535
			i := img.PixOffset(col, row)
			img.Pix[i] = uint8(uint16(scaled) >> 8)
			img.Pix[i+1] = uint8(uint16(scaled))
		}
	}
	return img
}

// GridToGray is the 8-bit variant of GridToGray16, used for previews
// and backends that only take 8-bit buffers.
func GridToGray(g *Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.cols, g.rows))
	min, max, ok := g.MinMax()
	span := max - min
	if !ok || span == 0 {
		span = 1
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			v := g.data[row*g.cols+col]
			if v == g.nodata {
				continue
			}
			img.Pix[row*img.Stride+col] = uint8((v - min) / span * 255)
		}
	}
	return img
}
