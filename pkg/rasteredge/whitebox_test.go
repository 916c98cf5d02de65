package rasteredge

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepRoundTripFloat(t *testing.T) {
	g := gridFrom(t, [][]float64{
		{0.5, 1.25, -3},
		{testNodata, 42, 7.75},
	})
	hdr := NewDepHeader()
	hdr.North, hdr.South = 100, 0
	hdr.East, hdr.West = 50, 0
	hdr.AddMetadataEntry("Created by a test")
	hdr.AddMetadataEntry("Input file: in.dep")

	path := filepath.Join(t.TempDir(), "out.dep")
	require.NoError(t, WriteDep(path, g, hdr))

	got, gotHdr, err := ReadDep(path)
	require.NoError(t, err)
	assertGridsEqual(t, g, got)
	assert.Equal(t, testNodata, got.Nodata())
	assert.Equal(t, "float", gotHdr.DataType)
	assert.Equal(t, "grey.plt", gotHdr.Palette)
	assert.Equal(t, ByteOrderLittle, gotHdr.ByteOrder)
	assert.Equal(t, []string{"Created by a test", "Input file: in.dep"}, gotHdr.Metadata)
	assert.Equal(t, -3.0, gotHdr.Min)
	assert.Equal(t, 42.0, gotHdr.Max)
	assert.Equal(t, 100.0, gotHdr.North)
}

func TestDepRoundTripDoubleBigEndian(t *testing.T) {
	g := NewGrid(2, 2, -9999)
	g.SetValue(0, 0, math.Pi)
	g.SetValue(0, 1, -math.E)
	g.SetValue(1, 0, 1e-12)
	hdr := NewDepHeader()
	hdr.DataType = "double"
	hdr.ByteOrder = ByteOrderBig

	path := filepath.Join(t.TempDir(), "out.dep")
	require.NoError(t, WriteDep(path, g, hdr))

	got, gotHdr, err := ReadDep(path)
	require.NoError(t, err)
	assert.Equal(t, ByteOrderBig, gotHdr.ByteOrder)
	assert.Equal(t, math.Pi, got.Value(0, 0))
	assert.Equal(t, -math.E, got.Value(0, 1))
	assert.Equal(t, 1e-12, got.Value(1, 0))
	assert.Equal(t, -9999.0, got.Value(1, 1))
}

func TestDepRoundTripInteger(t *testing.T) {
	g := NewGrid(1, 3, testNodata)
	g.SetValue(0, 0, 120)
	g.SetValue(0, 1, -450)
	hdr := NewDepHeader()
	hdr.DataType = "integer"

	path := filepath.Join(t.TempDir(), "out.dep")
	require.NoError(t, WriteDep(path, g, hdr))

	got, _, err := ReadDep(path)
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.Value(0, 0))
	assert.Equal(t, -450.0, got.Value(0, 1))
	assert.Equal(t, testNodata, got.Value(0, 2))
}

func TestReadDepMissingFile(t *testing.T) {
	_, _, err := ReadDep(filepath.Join(t.TempDir(), "absent.dep"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadDepMissingDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.dep")
	header := "Rows:\t2\nCols:\t2\nData Type:\tfloat\nNoData:\t-32768\nByte Order:\tLITTLE_ENDIAN\n"
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))

	_, _, err := ReadDep(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadDepTruncatedData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.dep")
	header := "Rows:\t2\nCols:\t2\nData Type:\tfloat\nNoData:\t-32768\nByte Order:\tLITTLE_ENDIAN\n"
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.tas"), make([]byte, 7), 0o644))

	_, _, err := ReadDep(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated")
}

func TestReadDepInvalidDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.dep")
	require.NoError(t, os.WriteFile(path, []byte("Data Type:\tfloat\n"), 0o644))

	_, _, err := ReadDep(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid raster header")
}

func TestReadDepUnsupportedDataType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.dep")
	header := "Rows:\t1\nCols:\t1\nData Type:\tcomplex\n"
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))

	_, _, err := ReadDep(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported data type")
}
