package password

import (
	"strings"
	"testing"
)

func TestNewTemp_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := NewTemp()
		if len(p) != TempLength {
			t.Fatalf("len(%q) = %d, want %d", p, len(p), TempLength)
		}
		for _, c := range p {
			if !strings.ContainsRune(Alphabet, c) {
				t.Fatalf("password %q contains %q outside alphabet", p, c)
			}
		}
	}
}

func TestNewTemp_NotConstant(t *testing.T) {
	a, b := NewTemp(), NewTemp()
	if a == b {
		// 62^8 values; a collision here means the generator is broken
		t.Fatalf("two consecutive passwords identical: %q", a)
	}
}
