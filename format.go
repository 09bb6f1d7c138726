package texdec

import "github.com/gogpu/gputypes"

// BlockVariant identifies one of the three 4x4 block-compressed encodings.
type BlockVariant uint8

const (
	// BlockDXT1 is 8 bytes per block: two 5:6:5 endpoints and 2-bit color
	// indices, with an optional 1-bit transparent entry.
	BlockDXT1 BlockVariant = iota

	// BlockDXT3 is 16 bytes per block: a DXT1 color block followed by
	// explicit 4-bit alpha per texel.
	BlockDXT3

	// BlockDXT5 is 16 bytes per block: a DXT1 color block followed by two
	// alpha endpoints and 3-bit alpha indices.
	BlockDXT5

	blockVariantCount
)

// DecodedTextureFormat is the GPU format of every decoded texel buffer.
const DecodedTextureFormat = gputypes.TextureFormatRGBA8Unorm

// BlockSize returns the encoded size of one block in bytes, or 0 for an
// unknown variant.
func (v BlockVariant) BlockSize() int {
	switch v {
	case BlockDXT1:
		return 8
	case BlockDXT3, BlockDXT5:
		return 16
	default:
		return 0
	}
}

// IsValid reports whether v is a known variant.
func (v BlockVariant) IsValid() bool {
	return v < blockVariantCount
}

// TextureFormat returns the WebGPU format carrying the same block encoding.
func (v BlockVariant) TextureFormat() gputypes.TextureFormat {
	switch v {
	case BlockDXT1:
		return gputypes.TextureFormatBC1RGBAUnorm
	case BlockDXT3:
		return gputypes.TextureFormatBC2RGBAUnorm
	case BlockDXT5:
		return gputypes.TextureFormatBC3RGBAUnorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// String returns the variant name.
func (v BlockVariant) String() string {
	switch v {
	case BlockDXT1:
		return "DXT1"
	case BlockDXT3:
		return "DXT3"
	case BlockDXT5:
		return "DXT5"
	default:
		return "Unknown"
	}
}

// VariantForTextureFormat maps a BC1/BC2/BC3 texture format (linear or sRGB)
// to its block variant.
func VariantForTextureFormat(f gputypes.TextureFormat) (BlockVariant, bool) {
	switch f {
	case gputypes.TextureFormatBC1RGBAUnorm, gputypes.TextureFormatBC1RGBAUnormSrgb:
		return BlockDXT1, true
	case gputypes.TextureFormatBC2RGBAUnorm, gputypes.TextureFormatBC2RGBAUnormSrgb:
		return BlockDXT3, true
	case gputypes.TextureFormatBC3RGBAUnorm, gputypes.TextureFormatBC3RGBAUnormSrgb:
		return BlockDXT5, true
	default:
		return 0, false
	}
}

// PixelFormat is a packed linear pixel layout understood by ClassifyAlpha.
// Channel names run from the least significant bits upwards.
type PixelFormat uint8

const (
	// PixelRGBA8888 is 32 bits per pixel with alpha in bits 24-31.
	PixelRGBA8888 PixelFormat = iota

	// PixelABGR4444 is 16 bits per pixel with alpha in bits 0-3.
	PixelABGR4444

	// PixelABGR1555 is 16 bits per pixel with alpha in bit 0.
	PixelABGR1555

	// PixelRGBA4444 is 16 bits per pixel with alpha in bits 12-15.
	PixelRGBA4444

	// PixelRGBA5551 is 16 bits per pixel with alpha in bit 15.
	PixelRGBA5551

	pixelFormatCount
)

// pixelFormatInfo describes where a format keeps its alpha bits.
type pixelFormatInfo struct {
	name          string
	bytesPerPixel int
	alphaMask     uint32 // per pixel, in the low bytesPerPixel*8 bits
	vectorPixels  int    // pixels per 128-bit register
}

var pixelFormatTable = [pixelFormatCount]pixelFormatInfo{
	PixelRGBA8888: {name: "RGBA8888", bytesPerPixel: 4, alphaMask: 0xFF000000, vectorPixels: 4},
	PixelABGR4444: {name: "ABGR4444", bytesPerPixel: 2, alphaMask: 0x000F, vectorPixels: 8},
	PixelABGR1555: {name: "ABGR1555", bytesPerPixel: 2, alphaMask: 0x0001, vectorPixels: 8},
	PixelRGBA4444: {name: "RGBA4444", bytesPerPixel: 2, alphaMask: 0xF000, vectorPixels: 8},
	PixelRGBA5551: {name: "RGBA5551", bytesPerPixel: 2, alphaMask: 0x8000, vectorPixels: 8},
}

// IsValid reports whether f is a known format.
func (f PixelFormat) IsValid() bool {
	return f < pixelFormatCount
}

// BytesPerPixel returns the packed pixel size, or 0 for an unknown format.
func (f PixelFormat) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return pixelFormatTable[f].bytesPerPixel
}

// AlphaMask returns the bits of one pixel that hold alpha.
func (f PixelFormat) AlphaMask() uint32 {
	if !f.IsValid() {
		return 0
	}
	return pixelFormatTable[f].alphaMask
}

// VectorPixels returns how many pixels fit in one 128-bit register. The
// vector classification path is taken only when width and stride are
// multiples of this value.
func (f PixelFormat) VectorPixels() int {
	if !f.IsValid() {
		return 0
	}
	return pixelFormatTable[f].vectorPixels
}

// TextureFormat returns the matching WebGPU format, or TextureFormatUndefined
// for the packed 16-bit layouts WebGPU does not expose.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	if f == PixelRGBA8888 {
		return gputypes.TextureFormatRGBA8Unorm
	}
	return gputypes.TextureFormatUndefined
}

// String returns the format name.
func (f PixelFormat) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return pixelFormatTable[f].name
}

// CheckAlphaResult is the outcome of an alpha coverage scan.
type CheckAlphaResult uint8

const (
	// CheckAlphaFull means every scanned pixel has maximal alpha.
	CheckAlphaFull CheckAlphaResult = iota

	// CheckAlphaAny means at least one scanned pixel is translucent.
	CheckAlphaAny
)

// String returns "FULL" or "ANY".
func (r CheckAlphaResult) String() string {
	if r == CheckAlphaFull {
		return "FULL"
	}
	return "ANY"
}
