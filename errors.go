package huffman

import (
	"errors"
)

// ErrInvalidInput indicates text that cannot be Huffman coded: building a
// prefix code requires at least two distinct symbols.
var ErrInvalidInput = errors.New("huffman: invalid input")

// ErrMalformedInput indicates an encoded payload that violates the wire
// contract, such as a truncated tree shape or a bit sequence that ends in the
// middle of a symbol.
var ErrMalformedInput = errors.New("huffman: malformed input")
