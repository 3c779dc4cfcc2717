// Package huffman implements Huffman coding over single-byte alphabets,
// together with a canonical flattened form of the coding tree so that
// compressed payloads are fully self-describing.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package huffman
