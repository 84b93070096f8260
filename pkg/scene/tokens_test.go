package scene

import (
	"strings"
	"testing"
)

func TestTokenReaderPeekWordDoesNotConsume(t *testing.T) {
	tr := newTokenReader(strings.NewReader("Material 2 0.5"))

	peeked, ok := tr.peekWord()
	if !ok || peeked != "Material" {
		t.Fatalf("peekWord() = %q, %v, want %q, true", peeked, ok, "Material")
	}

	word, err := tr.word()
	if err != nil {
		t.Fatalf("word() error = %v", err)
	}
	if word != "Material" {
		t.Errorf("word() = %q, want %q (peek should not have consumed it)", word, "Material")
	}

	n, err := tr.int()
	if err != nil || n != 2 {
		t.Errorf("int() = %d, %v, want 2, nil", n, err)
	}
}

func TestTokenReaderPeekWordAtEOFReturnsFalse(t *testing.T) {
	tr := newTokenReader(strings.NewReader(""))
	if _, ok := tr.peekWord(); ok {
		t.Error("peekWord() on empty input = true, want false")
	}
}

func TestTokenReaderVec3ParsesThreeFloats(t *testing.T) {
	tr := newTokenReader(strings.NewReader("1.5 -2 0.25"))
	v, err := tr.vec3()
	if err != nil {
		t.Fatalf("vec3() error = %v", err)
	}
	if v.X != 1.5 || v.Y != -2 || v.Z != 0.25 {
		t.Errorf("vec3() = %v, want {1.5 -2 0.25}", v)
	}
}

func TestTokenReaderFloatRejectsMalformedToken(t *testing.T) {
	tr := newTokenReader(strings.NewReader("not-a-number"))
	if _, err := tr.float(); err == nil {
		t.Error("float() on malformed token = nil error, want an error")
	}
}
