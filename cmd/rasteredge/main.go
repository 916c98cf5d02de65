package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	re "rasteredge/pkg/rasteredge"
)

const toolName = "RobertsCrossFilter"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rasteredge", flag.ContinueOnError)
	var (
		input   string
		output  string
		preview string
		clip    float64
		workers int
		verbose bool
	)
	fs.StringVar(&input, "i", "", "input raster file (.dep, or an image)")
	fs.StringVar(&input, "input", "", "input raster file (.dep, or an image)")
	fs.StringVar(&output, "o", "", "output raster file (.dep, or an image)")
	fs.StringVar(&output, "output", "", "output raster file (.dep, or an image)")
	fs.Float64Var(&clip, "clip", 0.0, "amount to clip the distribution tails by, in percent")
	fs.IntVar(&workers, "workers", 0, "number of worker goroutines (default: one per CPU)")
	fs.StringVar(&preview, "preview", "", "optional path for a JPG preview of the result")
	fs.BoolVar(&verbose, "v", false, "print progress and a result summary")
	fs.BoolVar(&verbose, "verbose", false, "print progress and a result summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if input == "" {
		return fmt.Errorf("an input file is required (-i)")
	}
	if output == "" {
		return fmt.Errorf("an output file is required (-o)")
	}
	if clip < 0 {
		clip = 0
	}

	if verbose {
		fmt.Println("Reading data...")
	}
	grid, hdr, err := readRaster(input)
	if err != nil {
		return err
	}

	startTime := time.Now()
	opts := re.FilterOptions{Workers: workers}
	if verbose {
		opts.Progress = func(percent int) { fmt.Printf("Progress: %d%%\n", percent) }
	}
	out := re.RobertsCross(grid, opts)

	if clip > 0 {
		if verbose {
			fmt.Println("Clipping output...")
		}
		re.ClipTails(out, clip)
	}
	elapsed := time.Since(startTime)

	if verbose {
		fmt.Println("Saving data...")
	}
	if err := writeRaster(output, out, hdr, input, clip, elapsed); err != nil {
		return err
	}

	if preview != "" {
		if err := re.RenderPreview(out, preview); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Println()
		fmt.Printf("=== Edge Detection Results (%.1fs) ===\n", elapsed.Seconds())
		fmt.Printf("  Raster size:   %d x %d\n", out.Cols(), out.Rows())
		if min, max, ok := out.MinMax(); ok {
			fmt.Printf("  Value range:   %.4g .. %.4g\n", min, max)
		}
		fmt.Printf("  Nodata cells:  %d\n", out.NodataCount())
		fmt.Printf("  Clip amount:   %.2f%%\n", clip)
		fmt.Println("==============================")
	}
	return nil
}

// readRaster dispatches on the input extension: .dep rasters are read
// directly, everything else goes through the image loader.
func readRaster(path string) (*re.Grid, *re.DepHeader, error) {
	if strings.EqualFold(filepath.Ext(path), ".dep") {
		return re.ReadDep(path)
	}
	g, err := loadImageGrid(path)
	return g, nil, err
}

// writeRaster writes a .dep raster with the grey palette and the
// descriptive metadata entries, or an image for any other extension.
func writeRaster(path string, g *re.Grid, hdr *re.DepHeader, inputPath string, clip float64, elapsed time.Duration) error {
	if !strings.EqualFold(filepath.Ext(path), ".dep") {
		return saveImageGrid(path, g)
	}
	if hdr == nil {
		hdr = re.NewDepHeader()
	}
	hdr.Palette = "grey.plt"
	hdr.AddMetadataEntry(fmt.Sprintf("Created by the rasteredge %s tool", toolName))
	hdr.AddMetadataEntry(fmt.Sprintf("Input file: %s", inputPath))
	hdr.AddMetadataEntry(fmt.Sprintf("Clip amount: %v", clip))
	hdr.AddMetadataEntry(fmt.Sprintf("Elapsed Time (excluding I/O): %s", elapsed.Round(time.Millisecond)))
	return re.WriteDep(path, g, hdr)
}
