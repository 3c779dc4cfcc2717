package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Bit is a single bit with value 0 or 1.
type Bit uint8

// Bits is an ordered bit sequence.  Producers append to the back; consumers
// read strictly front to back.
type Bits []Bit

// String returns the string representation of this Bit.
func (b Bit) String() string {
	checkBit(b)
	return strconv.FormatUint(uint64(b), 10)
}

// String returns the quoted string representation of this bit sequence.
func (bs Bits) String() string {
	return strconv.Quote(bitsText(bs))
}

var _ fmt.Stringer = Bit(0)
var _ fmt.Stringer = Bits(nil)

func checkBit(b Bit) {
	assert.Assertf(b <= 1, "bit value %d out of range", b)
}

// bitsText renders a bit sequence as a bare string of '0' and '1' characters.
func bitsText(bs Bits) string {
	buf := make([]byte, len(bs))
	for i, b := range bs {
		checkBit(b)
		buf[i] = '0' + byte(b)
	}
	return string(buf)
}

// parseBits is the inverse of bitsText.  Characters other than '0' and '1'
// fail with ErrMalformedInput.
func parseBits(s string) (Bits, error) {
	bs := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			// already zero
		case '1':
			bs[i] = 1
		default:
			return nil, fmt.Errorf("%w: bit character %q", ErrMalformedInput, s[i])
		}
	}
	return bs, nil
}

// bitReader consumes a Bits front to back.  Tree reconstruction threads one
// reader through every recursive call, so the shared-consumption contract is
// explicit in the call signatures.
type bitReader struct {
	bits Bits
	pos  int
}

func (r *bitReader) next() (Bit, bool) {
	if r.pos >= len(r.bits) {
		return 0, false
	}
	b := r.bits[r.pos]
	checkBit(b)
	r.pos++
	return b, true
}

func (r *bitReader) remaining() int {
	return len(r.bits) - r.pos
}

// leafReader consumes a leaf symbol sequence front to back.
type leafReader struct {
	leaves []byte
	pos    int
}

func (r *leafReader) next() (byte, bool) {
	if r.pos >= len(r.leaves) {
		return 0, false
	}
	sym := r.leaves[r.pos]
	r.pos++
	return sym, true
}

func (r *leafReader) remaining() int {
	return len(r.leaves) - r.pos
}
