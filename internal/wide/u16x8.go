package wide

import "encoding/binary"

// U16x8 represents 8 uint16 lanes of a 128-bit register.
// Lane 0 holds the lowest-addressed halfword when loaded from memory.
type U16x8 [8]uint16

// SplatU16x8 creates U16x8 with all lanes set to n.
func SplatU16x8(n uint16) U16x8 {
	return U16x8{n, n, n, n, n, n, n, n}
}

// LoadU16x8 reads 16 bytes from p as eight little-endian halfwords.
// p must have at least 16 bytes.
func LoadU16x8(p []byte) U16x8 {
	_ = p[15] // bounds check hint
	var result U16x8
	for i := range result {
		result[i] = binary.LittleEndian.Uint16(p[2*i:])
	}
	return result
}

// Add performs lane-wise wrapping addition.
func (v U16x8) Add(other U16x8) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs lane-wise multiplication keeping the low 16 bits of each
// product (pmullw / vmul.i16 semantics).
func (v U16x8) Mul(other U16x8) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd returns v + a*b per lane, truncated to 16 bits (vmla.i16 semantics).
func (v U16x8) MulAdd(a, b U16x8) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] + a[i]*b[i]
	}
	return result
}

// Xor performs lane-wise exclusive or.
func (v U16x8) Xor(other U16x8) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] ^ other[i]
	}
	return result
}

// And performs lane-wise bitwise and.
func (v U16x8) And(other U16x8) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// IsZero reports whether every lane is zero.
func (v U16x8) IsZero() bool {
	var acc uint16
	for i := range v {
		acc |= v[i]
	}
	return acc == 0
}

// U32 reinterprets the register as four 32-bit lanes.
func (v U16x8) U32() U32x4 {
	var result U32x4
	for i := range result {
		result[i] = uint32(v[2*i]) | uint32(v[2*i+1])<<16
	}
	return result
}
