package rasteredge

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ClipTails rescales the grid's value distribution by clamping its
// extreme tails: every non-nodata cell below the percent-th empirical
// quantile is raised to it, and every cell above the (100-percent)-th
// quantile is lowered to it. Nodata cells are excluded from both the
// quantile computation and the clamp. percent is the percentage
// clipped from each tail; values at or below zero leave the grid
// unchanged, and values above 50 are treated as 50.
func ClipTails(g *Grid, percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent == 0 {
		return
	}
	if percent > 50 {
		percent = 50
	}

	values := make([]float64, 0, len(g.data))
	for _, v := range g.data {
		if v != g.nodata {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return
	}
	sort.Float64s(values)

	low := stat.Quantile(percent/100, stat.Empirical, values, nil)
	high := stat.Quantile(1-percent/100, stat.Empirical, values, nil)

	for i, v := range g.data {
		if v == g.nodata {
			continue
		}
		if v < low {
			g.data[i] = low
		} else if v > high {
			g.data[i] = high
		}
	}
}
