package huffman

import (
	"testing"
)

func TestBits_String(t *testing.T) {
	testData := []struct {
		bits Bits
		str  string
	}{
		{nil, `""`},
		{Bits{0}, `"0"`},
		{Bits{1}, `"1"`},
		{Bits{1, 0, 1, 1, 0, 0, 0}, `"1011000"`},
	}
	for _, row := range testData {
		if actual := row.bits.String(); actual != row.str {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.str, actual)
		}
	}
}

func TestBitReader(t *testing.T) {
	r := bitReader{bits: Bits{1, 0, 1}}
	expect := Bits{1, 0, 1}
	for i, want := range expect {
		if got, ok := r.next(); !ok || got != want {
			t.Errorf("next() #%d: expected (%d, true), got (%d, %v)", i, want, got, ok)
		}
	}
	if r.remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", r.remaining())
	}
	if _, ok := r.next(); ok {
		t.Error("next() succeeded on a drained reader")
	}
}
