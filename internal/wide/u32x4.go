package wide

import "encoding/binary"

// U32x4 represents 4 uint32 lanes of a 128-bit register.
// Lane 0 holds the lowest-addressed word when loaded from memory.
type U32x4 [4]uint32

// SplatU32 creates U32x4 with all lanes set to n.
func SplatU32(n uint32) U32x4 {
	return U32x4{n, n, n, n}
}

// LoadU32x4 reads 16 bytes from p as four little-endian words.
// p must have at least 16 bytes.
func LoadU32x4(p []byte) U32x4 {
	_ = p[15] // bounds check hint
	return U32x4{
		binary.LittleEndian.Uint32(p[0:]),
		binary.LittleEndian.Uint32(p[4:]),
		binary.LittleEndian.Uint32(p[8:]),
		binary.LittleEndian.Uint32(p[12:]),
	}
}

// Store writes the four lanes to p as little-endian words.
// p must have at least 16 bytes.
func (v U32x4) Store(p []byte) {
	_ = p[15] // bounds check hint
	binary.LittleEndian.PutUint32(p[0:], v[0])
	binary.LittleEndian.PutUint32(p[4:], v[1])
	binary.LittleEndian.PutUint32(p[8:], v[2])
	binary.LittleEndian.PutUint32(p[12:], v[3])
}

// Add performs lane-wise wrapping addition.
func (v U32x4) Add(other U32x4) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Xor performs lane-wise exclusive or.
func (v U32x4) Xor(other U32x4) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] ^ other[i]
	}
	return result
}

// And performs lane-wise bitwise and.
func (v U32x4) And(other U32x4) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// IsZero reports whether every lane is zero.
func (v U32x4) IsZero() bool {
	return v[0]|v[1]|v[2]|v[3] == 0
}

// HorizontalAdd returns the wrapping sum of all four lanes.
func (v U32x4) HorizontalAdd() uint32 {
	return v[0] + v[1] + v[2] + v[3]
}

// U16 reinterprets the register as eight 16-bit lanes.
// Lane 2i is the low half of word i.
func (v U32x4) U16() U16x8 {
	var result U16x8
	for i := range v {
		// Intentional truncation - splitting a word into halves
		result[2*i] = uint16(v[i])         // #nosec G115
		result[2*i+1] = uint16(v[i] >> 16) // #nosec G115
	}
	return result
}
