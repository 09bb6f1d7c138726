package texdec

import "encoding/binary"

// Block layout as stored in console texture memory. This is not the desktop
// DXT layout: the 2-bit color index lines come first.
//
//	DXT1  bytes 0-3   color index lines, one byte per row, texel x in bits 2x
//	      bytes 4-5   color1 (RGB565, little-endian)
//	      bytes 6-7   color2
//	DXT3  bytes 0-7   DXT1 block
//	      bytes 8-15  four 16-bit alpha lines, texel x in bits 4x
//	DXT5  bytes 0-7   DXT1 block
//	      bytes 8-11  alpha indices, low word
//	      bytes 12-13 alpha indices, high halfword
//	      byte  14    alpha1
//	      byte  15    alpha2
//
// Decoded texels are packed A<<24 | B<<16 | G<<8 | R.

// dxt1Block is the color part shared by all three variants.
type dxt1Block struct {
	lines  [4]uint8
	color1 uint16
	color2 uint16
}

func readDXT1Block(src []byte) dxt1Block {
	_ = src[7]
	return dxt1Block{
		lines:  [4]uint8{src[0], src[1], src[2], src[3]},
		color1: binary.LittleEndian.Uint16(src[4:]),
		color2: binary.LittleEndian.Uint16(src[6:]),
	}
}

// dxt5Alpha holds the endpoints and the 48-bit index stream of a DXT5 block.
// Texel (x, y) uses bits y*12 + x*3 of indices.
type dxt5Alpha struct {
	alpha1  uint8
	alpha2  uint8
	indices uint64
}

func readDXT5Alpha(src []byte) dxt5Alpha {
	_ = src[15]
	lo := binary.LittleEndian.Uint32(src[8:])
	hi := binary.LittleEndian.Uint16(src[12:])
	return dxt5Alpha{
		alpha1:  src[14],
		alpha2:  src[15],
		indices: uint64(hi)<<32 | uint64(lo),
	}
}

func makeColor(r, g, b, a int) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r) //#nosec G115 -- channels are 0-255
}

// expand565 extracts the channels of a 5:6:5 color by shifting. The low bits
// are left zero, so 0xFFFF expands to (248, 252, 248).
func expand565(c uint16) (r, g, b int) {
	return int(c>>8) & 0xF8, int(c>>3) & 0xFC, int(c<<3) & 0xF8
}

// mix23 returns the color two thirds of the way from c2 to c1.
func mix23(c1, c2 int) int {
	return (c1 + c1 + c2) / 3
}

// dxtPalette is the four-entry color table of one block.
type dxtPalette [4]uint32

// decodePalette derives the color table. When color1 > color2 the block is in
// four-color mode; otherwise entry 2 is the midpoint and entry 3 is
// transparent black. ignoreBinaryAlpha zeroes the alpha of every entry so the
// caller can OR in alpha from elsewhere.
func decodePalette(b dxt1Block, ignoreBinaryAlpha bool) dxtPalette {
	alpha := 255
	if ignoreBinaryAlpha {
		alpha = 0
	}

	r1, g1, b1 := expand565(b.color1)
	r2, g2, b2 := expand565(b.color2)

	var p dxtPalette
	p[0] = makeColor(r1, g1, b1, alpha)
	p[1] = makeColor(r2, g2, b2, alpha)
	if b.color1 > b.color2 {
		p[2] = makeColor(mix23(r1, r2), mix23(g1, g2), mix23(b1, b2), alpha)
		p[3] = makeColor(mix23(r2, r1), mix23(g2, g1), mix23(b2, b1), alpha)
	} else {
		p[2] = makeColor((r1+r2)/2, (g1+g2)/2, (b1+b2)/2, alpha)
		p[3] = makeColor(0, 0, 0, 0)
	}
	return p
}

// lerp8 interpolates the eight-value alpha ramp; n runs 1..6.
func lerp8(a1, a2 uint8, n int) uint8 {
	d := int(a1)*((7-n)<<8)/7 + int(a2)*(n<<8)/7
	return uint8((d + 31) >> 8) //#nosec G115 -- result is within 0-255
}

// lerp6 interpolates the six-value alpha ramp; n runs 1..4.
func lerp6(a1, a2 uint8, n int) uint8 {
	d := int(a1)*((5-n)<<8)/5 + int(a2)*(n<<8)/5
	return uint8((d + 31) >> 8) //#nosec G115 -- result is within 0-255
}

// alphaRamp is the eight-entry alpha table of one DXT5 block.
type alphaRamp [8]uint8

func decodeAlphaRamp(a1, a2 uint8) alphaRamp {
	r := alphaRamp{a1, a2}
	if a1 > a2 {
		for n := 1; n <= 6; n++ {
			r[n+1] = lerp8(a1, a2, n)
		}
	} else {
		for n := 1; n <= 4; n++ {
			r[n+1] = lerp6(a1, a2, n)
		}
		r[6] = 0
		r[7] = 255
	}
	return r
}

func assertBlockGeometry(src []byte, dst []uint32, size, pitch, height int) {
	debugAssert(len(src) >= size, "texdec: short block")
	debugAssert(height >= 0 && height <= 4, "texdec: block height out of range")
	if height > 0 {
		debugAssert(pitch >= 4, "texdec: pitch smaller than block")
		debugAssert(len(dst) >= (height-1)*pitch+4, "texdec: destination too small")
	}
}

// DecodeBlock decodes the top height rows (at most 4) of one block into dst,
// a row-major texel buffer with pitch texels per row. Each row receives 4
// texels. ignoreBinaryAlpha only affects DXT1, where it leaves the alpha byte
// of every texel zero; DXT3 and DXT5 always take alpha from their alpha data.
// Unknown variants leave dst untouched.
func DecodeBlock(v BlockVariant, src []byte, dst []uint32, pitch, height int, ignoreBinaryAlpha bool) {
	switch v {
	case BlockDXT1:
		DecodeDXT1Block(src, dst, pitch, height, ignoreBinaryAlpha)
	case BlockDXT3:
		DecodeDXT3Block(src, dst, pitch, height)
	case BlockDXT5:
		DecodeDXT5Block(src, dst, pitch, height)
	default:
		debugAssert(false, "texdec: unknown block variant")
	}
}

// DecodeDXT1Block decodes one 8-byte DXT1 block.
func DecodeDXT1Block(src []byte, dst []uint32, pitch, height int, ignoreBinaryAlpha bool) {
	assertBlockGeometry(src, dst, 8, pitch, height)
	b := readDXT1Block(src)
	pal := decodePalette(b, ignoreBinaryAlpha)

	for y := 0; y < height; y++ {
		row := dst[y*pitch : y*pitch+4]
		line := b.lines[y]
		for x := range row {
			row[x] = pal[line&3]
			line >>= 2
		}
	}
}

// DecodeDXT3Block decodes one 16-byte DXT3 block. Each 4-bit alpha value
// lands in the top nibble of the alpha byte.
func DecodeDXT3Block(src []byte, dst []uint32, pitch, height int) {
	assertBlockGeometry(src, dst, 16, pitch, height)
	b := readDXT1Block(src)
	pal := decodePalette(b, true)

	for y := 0; y < height; y++ {
		row := dst[y*pitch : y*pitch+4]
		line := b.lines[y]
		alpha := uint32(binary.LittleEndian.Uint16(src[8+2*y:]))
		for x := range row {
			row[x] = pal[line&3] | alpha<<28
			line >>= 2
			alpha >>= 4
		}
	}
}

// DecodeDXT5Block decodes one 16-byte DXT5 block.
func DecodeDXT5Block(src []byte, dst []uint32, pitch, height int) {
	assertBlockGeometry(src, dst, 16, pitch, height)
	b := readDXT1Block(src)
	a := readDXT5Alpha(src)
	pal := decodePalette(b, true)
	ramp := decodeAlphaRamp(a.alpha1, a.alpha2)

	bits := a.indices
	for y := 0; y < height; y++ {
		row := dst[y*pitch : y*pitch+4]
		line := b.lines[y]
		for x := range row {
			row[x] = pal[line&3] | uint32(ramp[bits&7])<<24
			line >>= 2
			bits >>= 3
		}
	}
}

func assertTexel(src []byte, size, x, y int) {
	debugAssert(len(src) >= size, "texdec: short block")
	debugAssert(x >= 0 && x < 4 && y >= 0 && y < 4, "texdec: texel outside block")
}

// dxtTexelColor decodes the color of texel (x, y) without building the full
// palette. Entry 3 of a three-color block is zero regardless of alpha.
func dxtTexelColor(b dxt1Block, x, y, alpha int) uint32 {
	r1, g1, b1 := expand565(b.color1)
	r2, g2, b2 := expand565(b.color2)

	switch (b.lines[y] >> (2 * x)) & 3 {
	case 0:
		return makeColor(r1, g1, b1, alpha)
	case 1:
		return makeColor(r2, g2, b2, alpha)
	case 2:
		if b.color1 > b.color2 {
			return makeColor(mix23(r1, r2), mix23(g1, g2), mix23(b1, b2), alpha)
		}
		return makeColor((r1+r2)/2, (g1+g2)/2, (b1+b2)/2, alpha)
	default:
		if b.color1 > b.color2 {
			return makeColor(mix23(r2, r1), mix23(g2, g1), mix23(b2, b1), alpha)
		}
		return 0
	}
}

// DecodeTexel decodes the single texel (x, y) of one block. The result equals
// the matching texel of DecodeBlock with ignoreBinaryAlpha false. Unknown
// variants decode to 0.
func DecodeTexel(v BlockVariant, src []byte, x, y int) uint32 {
	switch v {
	case BlockDXT1:
		return DXT1Texel(src, x, y)
	case BlockDXT3:
		return DXT3Texel(src, x, y)
	case BlockDXT5:
		return DXT5Texel(src, x, y)
	default:
		debugAssert(false, "texdec: unknown block variant")
		return 0
	}
}

// DXT1Texel decodes texel (x, y) of a DXT1 block with opaque palette alpha.
func DXT1Texel(src []byte, x, y int) uint32 {
	assertTexel(src, 8, x, y)
	return dxtTexelColor(readDXT1Block(src), x, y, 255)
}

// DXT3Texel decodes texel (x, y) of a DXT3 block.
func DXT3Texel(src []byte, x, y int) uint32 {
	assertTexel(src, 16, x, y)
	alpha := uint32(binary.LittleEndian.Uint16(src[8+2*y:])>>(4*x)) & 0xF
	return dxtTexelColor(readDXT1Block(src), x, y, 0) | alpha<<28
}

// DXT5Texel decodes texel (x, y) of a DXT5 block.
func DXT5Texel(src []byte, x, y int) uint32 {
	assertTexel(src, 16, x, y)
	a := readDXT5Alpha(src)
	idx := (a.indices >> (y*12 + x*3)) & 7

	var alpha uint8
	switch {
	case idx == 0:
		alpha = a.alpha1
	case idx == 1:
		alpha = a.alpha2
	case a.alpha1 > a.alpha2:
		alpha = lerp8(a.alpha1, a.alpha2, int(idx)-1)
	case idx < 6:
		alpha = lerp6(a.alpha1, a.alpha2, int(idx)-1)
	case idx == 6:
		alpha = 0
	default:
		alpha = 255
	}
	return dxtTexelColor(readDXT1Block(src), x, y, 0) | uint32(alpha)<<24
}
