package rasteredge

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Byte order names accepted in .dep headers.
const (
	ByteOrderLittle = "LITTLE_ENDIAN"
	ByteOrderBig    = "BIG_ENDIAN"
)

// DepHeader holds the ASCII header of a Whitebox GAT raster (.dep file).
// The cell payload lives in a sibling .tas file with the same stem.
type DepHeader struct {
	Min        float64
	Max        float64
	North      float64
	South      float64
	East       float64
	West       float64
	Rows       int
	Cols       int
	DataType   string // "float", "double" or "integer"
	ZUnits     string
	XYUnits    string
	Projection string
	DataScale  string
	Palette    string
	Nodata     float64
	ByteOrder  string // ByteOrderLittle or ByteOrderBig
	Metadata   []string
}

// NewDepHeader returns a header with the conventional defaults for a
// continuous float raster.
func NewDepHeader() *DepHeader {
	return &DepHeader{
		DataType:   "float",
		ZUnits:     "not specified",
		XYUnits:    "not specified",
		Projection: "not specified",
		DataScale:  "continuous",
		Palette:    "grey.plt",
		Nodata:     -32768,
		ByteOrder:  ByteOrderLittle,
	}
}

// AddMetadataEntry appends a descriptive entry, written out as a
// "Metadata Entry:" header line.
func (h *DepHeader) AddMetadataEntry(entry string) {
	h.Metadata = append(h.Metadata, entry)
}

func (h *DepHeader) byteOrder() binary.ByteOrder {
	if strings.EqualFold(h.ByteOrder, ByteOrderBig) {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// cellSize returns the number of bytes per cell in the .tas payload.
func (h *DepHeader) cellSize() (int, error) {
	switch strings.ToLower(h.DataType) {
	case "float":
		return 4, nil
	case "double":
		return 8, nil
	case "integer":
		return 2, nil
	}
	return 0, fmt.Errorf("unsupported data type: %q", h.DataType)
}

// tasPath returns the data file path matching a .dep header path.
func tasPath(depPath string) string {
	return strings.TrimSuffix(depPath, filepath.Ext(depPath)) + ".tas"
}

// ReadDep reads a Whitebox raster: the ASCII header at path and the
// cell data from the sibling .tas file.
func ReadDep(path string) (*Grid, *DepHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening raster header: %w", err)
	}
	defer f.Close()

	hdr := NewDepHeader()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "min":
			hdr.Min, _ = strconv.ParseFloat(value, 64)
		case "max":
			hdr.Max, _ = strconv.ParseFloat(value, 64)
		case "north":
			hdr.North, _ = strconv.ParseFloat(value, 64)
		case "south":
			hdr.South, _ = strconv.ParseFloat(value, 64)
		case "east":
			hdr.East, _ = strconv.ParseFloat(value, 64)
		case "west":
			hdr.West, _ = strconv.ParseFloat(value, 64)
		case "rows":
			hdr.Rows, _ = strconv.Atoi(value)
		case "cols", "columns":
			hdr.Cols, _ = strconv.Atoi(value)
		case "data type":
			hdr.DataType = strings.ToLower(value)
		case "z units":
			hdr.ZUnits = value
		case "xy units":
			hdr.XYUnits = value
		case "projection":
			hdr.Projection = value
		case "data scale":
			hdr.DataScale = value
		case "preferred palette":
			hdr.Palette = value
		case "nodata":
			hdr.Nodata, _ = strconv.ParseFloat(value, 64)
		case "byte order":
			hdr.ByteOrder = strings.ToUpper(value)
		case "metadata entry":
			hdr.Metadata = append(hdr.Metadata, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading raster header: %w", err)
	}
	if hdr.Rows <= 0 || hdr.Cols <= 0 {
		return nil, nil, fmt.Errorf("invalid raster header: Rows=%d, Cols=%d", hdr.Rows, hdr.Cols)
	}

	g, err := readTas(tasPath(path), hdr)
	if err != nil {
		return nil, nil, err
	}
	return g, hdr, nil
}

func readTas(path string, hdr *DepHeader) (*Grid, error) {
	size, err := hdr.cellSize()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening raster data: %w", err)
	}
	n := hdr.Rows * hdr.Cols
	if len(raw) < n*size {
		return nil, fmt.Errorf("truncated raster data: want %d bytes, have %d", n*size, len(raw))
	}

	order := hdr.byteOrder()
	g := NewGrid(hdr.Rows, hdr.Cols, hdr.Nodata)
	switch size {
	case 4:
		for i := 0; i < n; i++ {
			g.data[i] = float64(math.Float32frombits(order.Uint32(raw[i*4:])))
		}
	case 8:
		for i := 0; i < n; i++ {
			g.data[i] = math.Float64frombits(order.Uint64(raw[i*8:]))
		}
	case 2:
		for i := 0; i < n; i++ {
			g.data[i] = float64(int16(order.Uint16(raw[i*2:])))
		}
	}
	return g, nil
}

// WriteDep writes the grid as a Whitebox raster: the header at path and
// the cell data to the sibling .tas file. The header's Min, Max, Rows,
// Cols and Nodata fields are recomputed from the grid; a nil hdr gets
// NewDepHeader defaults.
func WriteDep(path string, g *Grid, hdr *DepHeader) error {
	if hdr == nil {
		hdr = NewDepHeader()
	}
	hdr.Rows = g.Rows()
	hdr.Cols = g.Cols()
	hdr.Nodata = g.Nodata()
	if min, max, ok := g.MinMax(); ok {
		hdr.Min, hdr.Max = min, max
	} else {
		hdr.Min, hdr.Max = hdr.Nodata, hdr.Nodata
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Min:\t%v\n", hdr.Min)
	fmt.Fprintf(&buf, "Max:\t%v\n", hdr.Max)
	fmt.Fprintf(&buf, "North:\t%v\n", hdr.North)
	fmt.Fprintf(&buf, "South:\t%v\n", hdr.South)
	fmt.Fprintf(&buf, "East:\t%v\n", hdr.East)
	fmt.Fprintf(&buf, "West:\t%v\n", hdr.West)
	fmt.Fprintf(&buf, "Cols:\t%d\n", hdr.Cols)
	fmt.Fprintf(&buf, "Rows:\t%d\n", hdr.Rows)
	fmt.Fprintf(&buf, "Stacks:\t1\n")
	fmt.Fprintf(&buf, "Data Type:\t%s\n", hdr.DataType)
	fmt.Fprintf(&buf, "Z Units:\t%s\n", hdr.ZUnits)
	fmt.Fprintf(&buf, "XY Units:\t%s\n", hdr.XYUnits)
	fmt.Fprintf(&buf, "Projection:\t%s\n", hdr.Projection)
	fmt.Fprintf(&buf, "Data Scale:\t%s\n", hdr.DataScale)
	fmt.Fprintf(&buf, "Preferred Palette:\t%s\n", hdr.Palette)
	fmt.Fprintf(&buf, "NoData:\t%v\n", hdr.Nodata)
	fmt.Fprintf(&buf, "Byte Order:\t%s\n", hdr.ByteOrder)
	for _, entry := range hdr.Metadata {
		fmt.Fprintf(&buf, "Metadata Entry:\t%s\n", entry)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing raster header: %w", err)
	}

	if err := writeTas(tasPath(path), g, hdr); err != nil {
		return err
	}
	return nil
}

func writeTas(path string, g *Grid, hdr *DepHeader) error {
	size, err := hdr.cellSize()
	if err != nil {
		return err
	}
	order := hdr.byteOrder()
	raw := make([]byte, len(g.data)*size)
	switch size {
	case 4:
		for i, v := range g.data {
			order.PutUint32(raw[i*4:], math.Float32bits(float32(v)))
		}
	case 8:
		for i, v := range g.data {
			order.PutUint64(raw[i*8:], math.Float64bits(v))
		}
	case 2:
		for i, v := range g.data {
			order.PutUint16(raw[i*2:], uint16(int16(v)))
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing raster data: %w", err)
	}
	return nil
}
