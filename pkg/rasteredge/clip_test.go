package rasteredge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceGrid fills a rows x cols grid with the values 1..rows*cols.
func sequenceGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols, testNodata)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.SetValue(r, c, float64(r*cols+c+1))
		}
	}
	return g
}

func assertGridsEqual(t *testing.T, want, got *Grid) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for r := 0; r < want.Rows(); r++ {
		for c := 0; c < want.Cols(); c++ {
			require.Equal(t, want.Value(r, c), got.Value(r, c), "cell (%d,%d)", r, c)
		}
	}
}

func TestClipTailsZeroIsNoOp(t *testing.T) {
	g := sequenceGrid(10, 10)
	want := g.Clone()
	ClipTails(g, 0)
	assertGridsEqual(t, want, g)
}

func TestClipTailsNegativeTreatedAsZero(t *testing.T) {
	g := sequenceGrid(10, 10)
	want := g.Clone()
	ClipTails(g, -5)
	assertGridsEqual(t, want, g)
}

func TestClipTailsClampsBothTails(t *testing.T) {
	g := sequenceGrid(10, 10) // values 1..100
	ClipTails(g, 10)

	min, max, ok := g.MinMax()
	require.True(t, ok)
	assert.InDelta(t, 10, min, 1)
	assert.InDelta(t, 90, max, 1)

	// Interior values are untouched.
	assert.Equal(t, 50.0, g.Value(4, 9))
}

// A stronger clip can never produce a wider value range than a weaker
// one.
func TestClipTailsMonotonicRange(t *testing.T) {
	weak := sequenceGrid(10, 10)
	strong := weak.Clone()
	ClipTails(weak, 5)
	ClipTails(strong, 20)

	minW, maxW, _ := weak.MinMax()
	minS, maxS, _ := strong.MinMax()
	assert.GreaterOrEqual(t, minS, minW)
	assert.LessOrEqual(t, maxS, maxW)
}

func TestClipTailsExcludesNodata(t *testing.T) {
	g := sequenceGrid(10, 10)
	g.SetValue(0, 0, testNodata)
	g.SetValue(9, 9, testNodata)
	ClipTails(g, 10)

	// Nodata cells stay nodata rather than being clamped up to the low
	// cutoff.
	assert.Equal(t, testNodata, g.Value(0, 0))
	assert.Equal(t, testNodata, g.Value(9, 9))

	// The sentinel (-32768) did not drag the low cutoff down: the
	// smallest valid value is a clipped positive one.
	min, _, ok := g.MinMax()
	require.True(t, ok)
	assert.Greater(t, min, 0.0)
}

func TestClipTailsAllNodata(t *testing.T) {
	g := NewGrid(4, 4, testNodata)
	ClipTails(g, 10)
	assert.Equal(t, 16, g.NodataCount())
}

func TestClipTailsOverFiftyPercentCollapsesToMedian(t *testing.T) {
	g := sequenceGrid(10, 10)
	ClipTails(g, 99)
	min, max, ok := g.MinMax()
	require.True(t, ok)
	assert.Equal(t, min, max)
}
