package rasteredge

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewTestGrid() *Grid {
	g := NewGrid(20, 30, testNodata)
	for r := 0; r < 20; r++ {
		for c := 0; c < 30; c++ {
			g.SetValue(r, c, float64(r*c))
		}
	}
	g.SetValue(0, 0, testNodata)
	return g
}

func TestRenderPreviewWritesJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.jpg")
	require.NoError(t, RenderPreview(previewTestGrid(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	// Grid area plus the 40px legend strip.
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestRenderPreviewBytes(t *testing.T) {
	raw, err := RenderPreviewBytes(previewTestGrid())
	require.NoError(t, err)
	_, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestRenderPreviewNilGrid(t *testing.T) {
	_, err := RenderPreviewBytes(nil)
	require.Error(t, err)
}

func TestRenderPreviewDownscalesWideGrids(t *testing.T) {
	g := NewGrid(10, 1600, testNodata)
	raw, err := RenderPreviewBytes(g)
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 45, img.Bounds().Dy()) // 10 rows at half scale, plus legend
}
