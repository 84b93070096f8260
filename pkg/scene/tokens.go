package scene

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mravel/pathtracer/pkg/core"
)

// tokenReader scans whitespace-separated tokens from a scene file,
// matching the format's "one record per line, whitespace-separated"
// grammar; ScanWords makes the line boundaries themselves irrelevant to
// parsing, same as the original `is >> x >> y >> z` stream extraction.
type tokenReader struct {
	scanner *bufio.Scanner

	peeked  string
	hasPeek bool
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &tokenReader{scanner: s}
}

func (t *tokenReader) next() (string, bool) {
	if t.hasPeek {
		t.hasPeek = false
		return t.peeked, true
	}
	if !t.scanner.Scan() {
		return "", false
	}
	return t.scanner.Text(), true
}

// peekWord returns the next token without consuming it, so callers can
// decide whether an optional record (Material, Texture) is present.
func (t *tokenReader) peekWord() (string, bool) {
	if t.hasPeek {
		return t.peeked, true
	}
	tok, ok := t.next()
	if !ok {
		return "", false
	}
	t.peeked, t.hasPeek = tok, true
	return tok, true
}

func (t *tokenReader) word() (string, error) {
	tok, ok := t.next()
	if !ok {
		return "", fmt.Errorf("scene: unexpected end of file")
	}
	return tok, nil
}

func (t *tokenReader) float() (float64, error) {
	tok, err := t.word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("scene: malformed float token %q: %w", tok, err)
	}
	return v, nil
}

func (t *tokenReader) int() (int, error) {
	tok, err := t.word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("scene: malformed int token %q: %w", tok, err)
	}
	return v, nil
}

func (t *tokenReader) uint32() (uint32, error) {
	tok, err := t.word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("scene: malformed uint32 token %q: %w", tok, err)
	}
	return uint32(v), nil
}

func (t *tokenReader) vec3() (core.Vec3, error) {
	x, err := t.float()
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := t.float()
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := t.float()
	if err != nil {
		return core.Vec3{}, err
	}
	return core.Vec3{X: x, Y: y, Z: z}, nil
}

func (t *tokenReader) err() error {
	return t.scanner.Err()
}
