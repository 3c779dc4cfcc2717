package huffman

import (
	"encoding/json"
	"fmt"
)

// EncodedData is the complete interchange form of a compressed text: the
// flattened encoding tree (shape plus leaf symbols) and the encoded message
// bits.  It carries everything needed to decompress; no side channel exists.
type EncodedData struct {
	TreeShape   Bits
	TreeLeaves  []byte
	MessageBits Bits
}

// Compress Huffman codes the given text.  It fails with ErrInvalidInput when
// the text has fewer than two distinct byte values.
func Compress(text string) (EncodedData, error) {
	root, err := BuildTree(text)
	if err != nil {
		return EncodedData{}, err
	}
	shape, leaves := FlattenTree(root)
	msg, err := EncodeText(root, text)
	if err != nil {
		return EncodedData{}, err
	}
	return EncodedData{
		TreeShape:   shape,
		TreeLeaves:  leaves,
		MessageBits: msg,
	}, nil
}

// Decompress recovers the original text from its interchange form.  Payloads
// that violate the wire contract fail with ErrMalformedInput.
func Decompress(data EncodedData) (string, error) {
	root, err := UnflattenTree(data.TreeShape, data.TreeLeaves)
	if err != nil {
		return "", err
	}
	return DecodeText(root, data.MessageBits)
}

// String returns a one-line summary of this payload.
func (data EncodedData) String() string {
	return fmt.Sprintf("(Huffman payload with %d leaves and %d message bits)", len(data.TreeLeaves), len(data.MessageBits))
}

var _ fmt.Stringer = EncodedData{}

type encodedDataJSON struct {
	TreeShape   string `json:"treeShape"`
	TreeLeaves  []int  `json:"treeLeaves"`
	MessageBits string `json:"messageBits"`
}

// MarshalJSON renders the payload with the bit sequences as binary strings
// and the leaves as byte values.  Leaves are numbers rather than a string
// because they may be arbitrary bytes, and JSON strings only hold valid
// UTF-8.
func (data EncodedData) MarshalJSON() ([]byte, error) {
	leaves := make([]int, len(data.TreeLeaves))
	for i, sym := range data.TreeLeaves {
		leaves[i] = int(sym)
	}
	return json.Marshal(encodedDataJSON{
		TreeShape:   bitsText(data.TreeShape),
		TreeLeaves:  leaves,
		MessageBits: bitsText(data.MessageBits),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (data *EncodedData) UnmarshalJSON(raw []byte) error {
	var wire encodedDataJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return err
	}
	shape, err := parseBits(wire.TreeShape)
	if err != nil {
		return err
	}
	msg, err := parseBits(wire.MessageBits)
	if err != nil {
		return err
	}
	leaves := make([]byte, len(wire.TreeLeaves))
	for i, v := range wire.TreeLeaves {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: leaf value %d out of byte range", ErrMalformedInput, v)
		}
		leaves[i] = byte(v)
	}
	*data = EncodedData{
		TreeShape:   shape,
		TreeLeaves:  leaves,
		MessageBits: msg,
	}
	return nil
}

var _ json.Marshaler = EncodedData{}
var _ json.Unmarshaler = (*EncodedData)(nil)
