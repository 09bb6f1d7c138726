package wide

import "encoding/binary"

// VectorBytes is the width of one 128-bit register in bytes.
const VectorBytes = 16

// Chunk returns the i-th 16-byte chunk of p, capped so that writes through
// the returned slice cannot reach the next chunk.
// p must hold at least (i+1)*VectorBytes bytes.
func Chunk(p []byte, i int) []byte {
	off := i * VectorBytes
	return p[off : off+VectorBytes : off+VectorBytes]
}

// Word returns the i-th little-endian 32-bit word of p.
// p must hold at least 4*(i+1) bytes.
func Word(p []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(p[4*i:])
}

// Half returns the i-th little-endian 16-bit halfword of p.
// p must hold at least 2*(i+1) bytes.
func Half(p []byte, i int) uint16 {
	return binary.LittleEndian.Uint16(p[2*i:])
}
