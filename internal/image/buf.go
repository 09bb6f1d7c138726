// Package image provides decoded texel buffer management for texdec.
//
// A texel is a uint32 packed as A<<24 | B<<16 | G<<8 | R, which is the byte
// order R, G, B, A when the buffer is viewed as little-endian memory.
package image

import (
	"encoding/binary"
	"errors"
	stdimage "image"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidPitch is returned when pitch is less than width.
	ErrInvalidPitch = errors.New("image: pitch too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// TexelBuf is a row-major texel buffer with a pitch of at least width texels.
//
// Thread safety: TexelBuf is safe for concurrent read access. Writes through
// Pix or Row, and Clear, require external synchronization.
type TexelBuf struct {
	pix    []uint32
	width  int
	height int
	pitch  int
}

// NewTexelBufWithPitch creates a zeroed buffer with pitch texels per row.
func NewTexelBufWithPitch(width, height, pitch int) (*TexelBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if pitch < width {
		return nil, ErrInvalidPitch
	}
	return &TexelBuf{
		pix:    make([]uint32, pitch*height),
		width:  width,
		height: height,
		pitch:  pitch,
	}, nil
}

// FromRaw wraps existing texels without copying.
func FromRaw(pix []uint32, width, height, pitch int) (*TexelBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if pitch < width {
		return nil, ErrInvalidPitch
	}
	if len(pix) < pitch*(height-1)+width {
		return nil, ErrDataTooSmall
	}
	return &TexelBuf{pix: pix, width: width, height: height, pitch: pitch}, nil
}

// FromBytes wraps little-endian RGBA texel memory, pitch texels per row.
// The texels are copied; p is not retained.
func FromBytes(p []byte, width, height, pitch int) (*TexelBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if pitch < width {
		return nil, ErrInvalidPitch
	}
	n := pitch*(height-1) + width
	if len(p) < 4*n {
		return nil, ErrDataTooSmall
	}
	pix := make([]uint32, pitch*height)
	for i := range n {
		pix[i] = binary.LittleEndian.Uint32(p[4*i:])
	}
	return FromRaw(pix, width, height, pitch)
}

// Width returns the width in texels.
func (b *TexelBuf) Width() int { return b.width }

// Height returns the height in texels.
func (b *TexelBuf) Height() int { return b.height }

// Pitch returns the distance between rows in texels.
func (b *TexelBuf) Pitch() int { return b.pitch }

// Pix returns the backing texels, including pitch padding.
func (b *TexelBuf) Pix() []uint32 { return b.pix }

// Row returns the width texels of row y, or nil if y is out of range.
func (b *TexelBuf) Row(y int) []uint32 {
	if y < 0 || y >= b.height {
		return nil
	}
	off := y * b.pitch
	return b.pix[off : off+b.width : off+b.width]
}

// At returns the texel at (x, y), or 0 outside the buffer.
func (b *TexelBuf) At(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.pitch+x]
}

// Clear zeroes every texel.
func (b *TexelBuf) Clear() {
	clear(b.pix)
}

// Bytes returns the visible texels as tightly packed RGBA bytes,
// width*4 bytes per row.
func (b *TexelBuf) Bytes() []byte {
	out := make([]byte, b.width*b.height*4)
	o := 0
	for y := 0; y < b.height; y++ {
		for _, c := range b.Row(y) {
			binary.LittleEndian.PutUint32(out[o:], c)
			o += 4
		}
	}
	return out
}

// PitchedBytes returns all rows as little-endian bytes including the pitch
// padding, pitch*4 bytes per row. The last row is truncated to width.
func (b *TexelBuf) PitchedBytes() []byte {
	n := b.pitch*(b.height-1) + b.width
	out := make([]byte, n*4)
	for i, c := range b.pix[:n] {
		binary.LittleEndian.PutUint32(out[4*i:], c)
	}
	return out
}

// NRGBA converts the buffer to a standard library image. Texels are
// straight alpha, so the conversion is a byte copy.
func (b *TexelBuf) NRGBA() *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		dst := img.Pix[y*img.Stride:]
		for x, c := range b.Row(y) {
			binary.LittleEndian.PutUint32(dst[4*x:], c)
		}
	}
	return img
}
