package huffman

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	data, err := Compress("STREETTEST")
	require.NoError(t, err)

	require.Equal(t, Bits{1, 0, 1, 1, 0, 0, 0}, data.TreeShape)
	require.Equal(t, []byte("TRSE"), data.TreeLeaves)
	require.Equal(t, Bits{1, 0, 1, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 0, 1, 0}, data.MessageBits)
}

func TestDecompress(t *testing.T) {
	data := EncodedData{
		TreeShape:   Bits{1, 0, 1, 1, 0, 0, 0},
		TreeLeaves:  []byte("TRSE"),
		MessageBits: Bits{0, 1, 0, 0, 1, 1, 1, 0, 1, 1, 0, 1},
	}

	text, err := Decompress(data)
	require.NoError(t, err)
	require.Equal(t, "TRESS", text)
}

func TestCompress_InvalidInput(t *testing.T) {
	for _, text := range []string{"", "A"} {
		_, err := Compress(text)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestDecompress_Malformed(t *testing.T) {
	data := EncodedData{
		TreeShape:   Bits{1, 0, 1, 1, 0, 0, 0},
		TreeLeaves:  []byte("TRSE"),
		MessageBits: Bits{1, 1, 1},
	}

	_, err := Decompress(data)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"HAPPY HIP HOP",
		"Nana Nana Nana Nana Nana Nana Nana Nana Batman",
		"Research is formalized curiosity. It is poking and prying with a purpose. - Zora Neale Hurston",
		"\x00\x01\x02\x03\xfe\xff\x00\x00\xff",
	}
	for _, input := range inputs {
		data, err := Compress(input)
		require.NoError(t, err)

		output, err := Decompress(data)
		require.NoError(t, err)
		require.Equal(t, input, output)
	}
}

func TestEncodedData_String(t *testing.T) {
	data, err := Compress("STREETTEST")
	require.NoError(t, err)
	require.Equal(t, "(Huffman payload with 4 leaves and 19 message bits)", data.String())
}

func TestEncodedData_JSON(t *testing.T) {
	data, err := Compress("STREETTEST")
	require.NoError(t, err)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.Equal(t, `{"treeShape":"1011000","treeLeaves":[84,82,83,69],"messageBits":"1010100111100111010"}`, string(raw))

	var back EncodedData
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, data, back)
}

func TestEncodedData_UnmarshalJSON_Malformed(t *testing.T) {
	testData := []struct {
		name string
		raw  string
	}{
		{"bad bit character", `{"treeShape":"10x1000","treeLeaves":[84],"messageBits":""}`},
		{"leaf out of range", `{"treeShape":"0","treeLeaves":[256],"messageBits":""}`},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var data EncodedData
			err := json.Unmarshal([]byte(row.raw), &data)
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}
