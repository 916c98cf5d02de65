package rasteredge

// RowBlock is a half-open range [Start, End) of grid rows assigned to
// one worker.
type RowBlock struct {
	Start int
	End   int
}

// RowBlocks splits [0, rows) into contiguous blocks of rows/workerCount
// rows each, never fewer than one, with the final block truncated at
// rows. The blocks are disjoint, in increasing order, and their union
// covers every row exactly once; the rows/workerCount remainder shows
// up as one extra block rather than a longer last one.
func RowBlocks(rows, workerCount int) []RowBlock {
	if rows <= 0 {
		return nil
	}
	if workerCount < 1 {
		workerCount = 1
	}
	size := rows / workerCount
	if size < 1 {
		size = 1
	}
	blocks := make([]RowBlock, 0, workerCount+1)
	for start := 0; start < rows; start += size {
		end := start + size
		if end > rows {
			end = rows
		}
		blocks = append(blocks, RowBlock{Start: start, End: end})
	}
	return blocks
}
