package rasteredge

// Grid is a single-band raster: rows x cols float64 cells stored
// row-major, with a distinguished nodata sentinel marking missing
// cells. Sentinel comparisons are exact, never tolerance-based.
type Grid struct {
	data   []float64
	rows   int
	cols   int
	nodata float64
}

// NewGrid allocates a rows x cols grid with every cell set to nodata.
func NewGrid(rows, cols int, nodata float64) *Grid {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = nodata
	}
	return &Grid{data: data, rows: rows, cols: cols, nodata: nodata}
}

// NewGridLike allocates a grid with the same geometry and nodata
// sentinel as g.
func NewGridLike(g *Grid) *Grid {
	return NewGrid(g.rows, g.cols, g.nodata)
}

func (g *Grid) Rows() int       { return g.rows }
func (g *Grid) Cols() int       { return g.cols }
func (g *Grid) Nodata() float64 { return g.nodata }

// Value returns the cell at (row, col), or the nodata sentinel when
// the coordinates fall outside the grid.
func (g *Grid) Value(row, col int) float64 {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return g.nodata
	}
	return g.data[row*g.cols+col]
}

// SetValue writes the cell at (row, col). Out-of-range coordinates are
// ignored.
func (g *Grid) SetValue(row, col int, v float64) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.data[row*g.cols+col] = v
}

// SetRow copies values into the given row. len(values) must equal
// Cols.
func (g *Grid) SetRow(row int, values []float64) {
	copy(g.data[row*g.cols:(row+1)*g.cols], values)
}

func (g *Grid) Clone() *Grid {
	out := &Grid{data: make([]float64, len(g.data)), rows: g.rows, cols: g.cols, nodata: g.nodata}
	copy(out.data, g.data)
	return out
}

// MinMax returns the smallest and largest non-nodata cell values. ok
// is false when the grid holds no valid cells.
func (g *Grid) MinMax() (min, max float64, ok bool) {
	for _, v := range g.data {
		if v == g.nodata {
			continue
		}
		if !ok {
			min, max = v, v
			ok = true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}

// NodataCount returns the number of cells holding the nodata sentinel.
func (g *Grid) NodataCount() int {
	n := 0
	for _, v := range g.data {
		if v == g.nodata {
			n++
		}
	}
	return n
}
