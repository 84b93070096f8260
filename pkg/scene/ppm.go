package scene

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mravel/pathtracer/pkg/renderer"
)

// WritePPM writes the accumulator's current frame as a P3 (ASCII) PPM
// image: a "P3\nW H\n255\n" header followed by one "r g b" triple per
// pixel. Pixel index 0 is the bottom-left of the frame (matching the
// accumulator's row-0-is-bottom convention), so rows are emitted from
// the top down, same ordering the reference screenshot writer used.
func WritePPM(w io.Writer, acc *renderer.Accumulator) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", acc.Width, acc.Height); err != nil {
		return err
	}

	for y := acc.Height - 1; y >= 0; y-- {
		for x := 0; x < acc.Width; x++ {
			r, g, b := acc.Bytes(y*acc.Width + x)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
