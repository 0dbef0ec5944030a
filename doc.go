// Package huffman implements byte-oriented Huffman codes.  A Codec is built
// from a sample buffer: the sample's byte frequencies determine a Huffman
// tree, and the tree determines a prefix-free Codebook.  The Codec then packs
// buffers drawn from the same alphabet into a bit stream and unpacks them
// again.
//
// The packed bytes alone do not say where the data ends, because the final
// byte is padded with zero bits.  Encode therefore reports the exact number of
// meaningful bits, and Decode requires it back.  Payload bundles the two and
// knows how to serialize itself.
//
// Ties between equal frequencies are broken in insertion order, so the same
// sample always produces the same tree and the same Codebook.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
