package texdec

import "strings"

// GEFormat is the texture format tag programmed into the console GPU.
// The numeric values are fixed by the hardware and must not be reordered.
type GEFormat uint8

// Texture formats in hardware encoding order.
const (
	GEFormat5650   GEFormat = 0
	GEFormat5551   GEFormat = 1
	GEFormat4444   GEFormat = 2
	GEFormat8888   GEFormat = 3
	GEFormatCLUT4  GEFormat = 4
	GEFormatCLUT8  GEFormat = 5
	GEFormatCLUT16 GEFormat = 6
	GEFormatCLUT32 GEFormat = 7
	GEFormatDXT1   GEFormat = 8
	GEFormatDXT3   GEFormat = 9
	GEFormatDXT5   GEFormat = 10
)

var geBitsPerPixel = [...]uint32{
	GEFormat5650:   16,
	GEFormat5551:   16,
	GEFormat4444:   16,
	GEFormat8888:   32,
	GEFormatCLUT4:  4,
	GEFormatCLUT8:  8,
	GEFormatCLUT16: 16,
	GEFormatCLUT32: 32,
	GEFormatDXT1:   4,
	GEFormatDXT3:   8,
	GEFormatDXT5:   8,
}

var geFormatNames = [...]string{
	GEFormat5650:   "5650",
	GEFormat5551:   "5551",
	GEFormat4444:   "4444",
	GEFormat8888:   "8888",
	GEFormatCLUT4:  "CLUT4",
	GEFormatCLUT8:  "CLUT8",
	GEFormatCLUT16: "CLUT16",
	GEFormatCLUT32: "CLUT32",
	GEFormatDXT1:   "DXT1",
	GEFormatDXT3:   "DXT3",
	GEFormatDXT5:   "DXT5",
}

// IsValid reports whether f is a format the hardware defines.
func (f GEFormat) IsValid() bool {
	return f <= GEFormatDXT5
}

// BitsPerPixel returns the storage cost of one texel, or 0 for invalid tags.
// Block formats report their amortized cost (DXT1: 64 bits / 16 texels).
func (f GEFormat) BitsPerPixel() uint32 {
	if !f.IsValid() {
		return 0
	}
	return geBitsPerPixel[f]
}

// BlockVariant returns the decoder variant for the DXT formats.
func (f GEFormat) BlockVariant() (BlockVariant, bool) {
	switch f {
	case GEFormatDXT1:
		return BlockDXT1, true
	case GEFormatDXT3:
		return BlockDXT3, true
	case GEFormatDXT5:
		return BlockDXT5, true
	default:
		return 0, false
	}
}

// AlphaFormat returns the packed layout to classify for the direct-color
// formats that carry alpha in texture memory.
func (f GEFormat) AlphaFormat() (PixelFormat, bool) {
	switch f {
	case GEFormat8888:
		return PixelRGBA8888, true
	case GEFormat4444:
		return PixelRGBA4444, true
	case GEFormat5551:
		return PixelRGBA5551, true
	default:
		return 0, false
	}
}

// String returns the hardware name of the format.
func (f GEFormat) String() string {
	if !f.IsValid() {
		return "Invalid"
	}
	return geFormatNames[f]
}

// textureAlignMask downaligns the buffer width to 16 bytes and wraps it at
// 2048. Block formats are only wrapped.
func textureAlignMask(f GEFormat) uint32 {
	if !f.IsValid() {
		return 0
	}
	if _, ok := f.BlockVariant(); ok {
		return 0x7FF
	}
	return 0x7FF &^ ((8*16)/geBitsPerPixel[f] - 1)
}

// TextureBufferWidth returns the effective buffer width in texels for the
// programmed width bufw. A width that aligns down to zero is raised to the
// 16-byte minimum of the format.
func TextureBufferWidth(f GEFormat, bufw uint32) uint32 {
	w := bufw & textureAlignMask(f)
	if w == 0 && f.IsValid() {
		w = (8 * 16) / geBitsPerPixel[f]
	}
	return w
}

// TexturePitch returns the byte pitch of one row of a texture with the given
// buffer width.
func TexturePitch(f GEFormat, bufw uint32) uint32 {
	return bufw * f.BitsPerPixel() / 8
}

// ParseGEFormat looks up a format by its hardware name, ignoring case.
func ParseGEFormat(name string) (GEFormat, bool) {
	for f := GEFormat5650; f <= GEFormatDXT5; f++ {
		if strings.EqualFold(geFormatNames[f], name) {
			return f, true
		}
	}
	return 0, false
}
