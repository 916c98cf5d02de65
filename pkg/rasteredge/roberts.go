package rasteredge

import (
	"math"
	"runtime"
	"sync"
)

// FilterOptions controls the parallel filter pass.
type FilterOptions struct {
	// Workers is the number of row-block workers. <= 0 selects one per
	// CPU.
	Workers int
	// Progress, when non-nil, is called from the collector with the
	// completed percentage each time it changes.
	Progress func(percent int)
}

// rowResult carries one computed output row from a worker to the
// collector. The row index is the only ordering key: arrival order
// across workers is unspecified.
type rowResult struct {
	row    int
	values []float64
}

// RobertsCross computes the Robert's-cross gradient magnitude of every
// cell of in and returns it as a new grid with the same geometry and
// nodata sentinel. The input grid is shared read-only across all
// workers and never mutated.
func RobertsCross(in *Grid, opts FilterOptions) *Grid {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rows := in.Rows()
	out := NewGridLike(in)

	// Buffered to rows so no worker ever blocks on send; the receive
	// loop below is the only consumer.
	results := make(chan rowResult, rows)
	var wg sync.WaitGroup
	for _, block := range RowBlocks(rows, workers) {
		wg.Add(1)
		go func(b RowBlock) {
			defer wg.Done()
			for row := b.Start; row < b.End; row++ {
				results <- rowResult{row: row, values: robertsRow(in, row)}
			}
		}(block)
	}

	// Exactly one message arrives per covered row, so receiving rows
	// messages is the synchronization barrier for the parallel phase.
	// Rows are written positionally by index, independent of worker
	// scheduling.
	lastPercent := -1
	for i := 0; i < rows; i++ {
		res := <-results
		out.SetRow(res.row, res.values)
		if opts.Progress != nil {
			percent := (i + 1) * 100 / rows
			if percent != lastPercent {
				opts.Progress(percent)
				lastPercent = percent
			}
		}
	}
	wg.Wait()
	return out
}

// robertsRow computes the edge-strength values for one row: the sum of
// absolute differences along the two diagonals of the 2x2 forward
// neighborhood of each cell.
func robertsRow(in *Grid, row int) []float64 {
	cols := in.Cols()
	nodata := in.Nodata()
	data := make([]float64, cols)
	for col := 0; col < cols; col++ {
		z1 := in.Value(row, col)
		if z1 == nodata {
			data[col] = nodata
			continue
		}
		// Nodata neighbors, including reads past the last row or
		// column, take the center value so missing data never bleeds
		// outward from the raster edge.
		z2 := in.Value(row, col+1)
		if z2 == nodata {
			z2 = z1
		}
		z3 := in.Value(row+1, col)
		if z3 == nodata {
			z3 = z1
		}
		z4 := in.Value(row+1, col+1)
		if z4 == nodata {
			z4 = z1
		}
		data[col] = math.Abs(z1-z4) + math.Abs(z2-z3)
	}
	return data
}
