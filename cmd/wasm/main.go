//go:build js && wasm

package main

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"
	"syscall/js"

	re "rasteredge/pkg/rasteredge"
)

func main() {
	js.Global().Set("filterImage", js.FuncOf(filterImage))
	select {} // block forever
}

// filterImage(fileBytes, clipPercent) decodes an image, runs the
// Robert's-cross filter plus optional tail clipping, and returns the
// result as PNG bytes with summary statistics.
func filterImage(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("usage: filterImage(fileBytes, clipPercent)")
	}

	// Extract file bytes
	jsBytes := args[0]
	fileBytes := make([]byte, jsBytes.Get("length").Int())
	js.CopyBytesToGo(fileBytes, jsBytes)

	clip := 0.0
	if len(args) >= 2 {
		clip = args[1].Float()
	}

	img, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return errorResult("decoding image: " + err.Error())
	}

	grid := re.ImageToGrid(img)
	out := re.RobertsCross(grid, re.FilterOptions{})
	re.ClipTails(out, clip)

	var buf bytes.Buffer
	if err := png.Encode(&buf, re.GridToGray16(out)); err != nil {
		return errorResult("encoding result: " + err.Error())
	}

	// Create Uint8Array and copy bytes
	uint8Array := js.Global().Get("Uint8Array").New(buf.Len())
	js.CopyBytesToJS(uint8Array, buf.Bytes())

	min, max, _ := out.MinMax()
	return js.ValueOf(map[string]interface{}{
		"width":  out.Cols(),
		"height": out.Rows(),
		"min":    min,
		"max":    max,
		"png":    uint8Array,
	})
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}
