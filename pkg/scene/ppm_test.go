package scene

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/mravel/pathtracer/pkg/core"
	"github.com/mravel/pathtracer/pkg/renderer"
)

func TestWritePPMHeaderMatchesDimensions(t *testing.T) {
	acc := renderer.NewAccumulator(4, 3)
	var buf bytes.Buffer
	if err := WritePPM(&buf, acc); err != nil {
		t.Fatalf("WritePPM() error = %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "P3" {
		t.Errorf("header[0] = %q, want P3", lines[0])
	}
	if lines[1] != "4 3" {
		t.Errorf("header[1] = %q, want %q", lines[1], "4 3")
	}
	if lines[2] != "255" {
		t.Errorf("header[2] = %q, want 255", lines[2])
	}
}

func TestWritePPMEmitsOneTripletPerPixel(t *testing.T) {
	acc := renderer.NewAccumulator(5, 2)
	for i := 0; i < acc.Len(); i++ {
		acc.Replace(i, core.Vec3{})
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, acc); err != nil {
		t.Fatalf("WritePPM() error = %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	lineCount := 0
	for scanner.Scan() {
		lineCount++
	}
	// 3 header lines + width*height pixel lines.
	want := 3 + acc.Width*acc.Height
	if lineCount != want {
		t.Errorf("line count = %d, want %d", lineCount, want)
	}
}
