package texdec

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBlockVariant(t *testing.T) {
	tests := []struct {
		v      BlockVariant
		size   int
		name   string
		format gputypes.TextureFormat
	}{
		{BlockDXT1, 8, "DXT1", gputypes.TextureFormatBC1RGBAUnorm},
		{BlockDXT3, 16, "DXT3", gputypes.TextureFormatBC2RGBAUnorm},
		{BlockDXT5, 16, "DXT5", gputypes.TextureFormatBC3RGBAUnorm},
		{BlockVariant(7), 0, "Unknown", gputypes.TextureFormatUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.BlockSize(); got != tt.size {
				t.Errorf("BlockSize() = %d, want %d", got, tt.size)
			}
			if got := tt.v.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.v.TextureFormat(); got != tt.format {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.format)
			}
			if got := tt.v.IsValid(); got != (tt.size != 0) {
				t.Errorf("IsValid() = %v", got)
			}
		})
	}
}

func TestVariantForTextureFormat(t *testing.T) {
	tests := []struct {
		format gputypes.TextureFormat
		want   BlockVariant
		ok     bool
	}{
		{gputypes.TextureFormatBC1RGBAUnorm, BlockDXT1, true},
		{gputypes.TextureFormatBC1RGBAUnormSrgb, BlockDXT1, true},
		{gputypes.TextureFormatBC2RGBAUnorm, BlockDXT3, true},
		{gputypes.TextureFormatBC3RGBAUnormSrgb, BlockDXT5, true},
		{gputypes.TextureFormatRGBA8Unorm, 0, false},
	}

	for _, tt := range tests {
		got, ok := VariantForTextureFormat(tt.format)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("VariantForTextureFormat(%v) = %v, %v; want %v, %v", tt.format, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPixelFormat(t *testing.T) {
	tests := []struct {
		f      PixelFormat
		name   string
		bpp    int
		mask   uint32
		vector int
	}{
		{PixelRGBA8888, "RGBA8888", 4, 0xFF000000, 4},
		{PixelABGR4444, "ABGR4444", 2, 0x000F, 8},
		{PixelABGR1555, "ABGR1555", 2, 0x0001, 8},
		{PixelRGBA4444, "RGBA4444", 2, 0xF000, 8},
		{PixelRGBA5551, "RGBA5551", 2, 0x8000, 8},
		{PixelFormat(42), "Unknown", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.f.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.f.AlphaMask(); got != tt.mask {
				t.Errorf("AlphaMask() = %#x, want %#x", got, tt.mask)
			}
			if got := tt.f.VectorPixels(); got != tt.vector {
				t.Errorf("VectorPixels() = %d, want %d", got, tt.vector)
			}
		})
	}
}

func TestDecodedTextureFormat(t *testing.T) {
	if DecodedTextureFormat != PixelRGBA8888.TextureFormat() {
		t.Errorf("decoded format %v does not match RGBA8888 %v", DecodedTextureFormat, PixelRGBA8888.TextureFormat())
	}
	if PixelRGBA4444.TextureFormat() != gputypes.TextureFormatUndefined {
		t.Error("16-bit formats have no WebGPU equivalent")
	}
}

func TestGEFormat(t *testing.T) {
	tests := []struct {
		f       GEFormat
		name    string
		bpp     uint32
		variant BlockVariant
		isBlock bool
	}{
		{GEFormat5650, "5650", 16, 0, false},
		{GEFormat5551, "5551", 16, 0, false},
		{GEFormat4444, "4444", 16, 0, false},
		{GEFormat8888, "8888", 32, 0, false},
		{GEFormatCLUT4, "CLUT4", 4, 0, false},
		{GEFormatCLUT8, "CLUT8", 8, 0, false},
		{GEFormatCLUT16, "CLUT16", 16, 0, false},
		{GEFormatCLUT32, "CLUT32", 32, 0, false},
		{GEFormatDXT1, "DXT1", 4, BlockDXT1, true},
		{GEFormatDXT3, "DXT3", 8, BlockDXT3, true},
		{GEFormatDXT5, "DXT5", 8, BlockDXT5, true},
		{GEFormat(11), "Invalid", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.f.BitsPerPixel(); got != tt.bpp {
				t.Errorf("BitsPerPixel() = %d, want %d", got, tt.bpp)
			}
			v, ok := tt.f.BlockVariant()
			if ok != tt.isBlock || v != tt.variant {
				t.Errorf("BlockVariant() = %v, %v; want %v, %v", v, ok, tt.variant, tt.isBlock)
			}
		})
	}
}

func TestGEFormat_AlphaFormat(t *testing.T) {
	tests := []struct {
		f    GEFormat
		want PixelFormat
		ok   bool
	}{
		{GEFormat8888, PixelRGBA8888, true},
		{GEFormat4444, PixelRGBA4444, true},
		{GEFormat5551, PixelRGBA5551, true},
		{GEFormat5650, 0, false},
		{GEFormatDXT5, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.f.AlphaFormat()
		if ok != tt.ok || got != tt.want {
			t.Errorf("%v.AlphaFormat() = %v, %v; want %v, %v", tt.f, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTextureBufferWidth(t *testing.T) {
	tests := []struct {
		name string
		f    GEFormat
		bufw uint32
		want uint32
	}{
		{"8888 aligned", GEFormat8888, 256, 256},
		{"8888 downaligned", GEFormat8888, 257, 256},
		{"8888 minimum", GEFormat8888, 3, 4},
		{"5650 downaligned", GEFormat5650, 100, 96},
		{"CLUT4 downaligned", GEFormatCLUT4, 40, 32},
		{"CLUT4 minimum", GEFormatCLUT4, 0, 32},
		{"CLUT8 downaligned", GEFormatCLUT8, 20, 16},
		{"wraps at 2048", GEFormat8888, 2048 + 64, 64},
		{"DXT unaligned kept", GEFormatDXT1, 100, 100},
		{"DXT wraps", GEFormatDXT5, 2048 + 8, 8},
		{"DXT zero raised", GEFormatDXT3, 0, 16},
		{"invalid", GEFormat(12), 256, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextureBufferWidth(tt.f, tt.bufw); got != tt.want {
				t.Errorf("TextureBufferWidth(%v, %d) = %d, want %d", tt.f, tt.bufw, got, tt.want)
			}
		})
	}
}

func TestTexturePitch(t *testing.T) {
	tests := []struct {
		f    GEFormat
		bufw uint32
		want uint32
	}{
		{GEFormat8888, 512, 2048},
		{GEFormat5650, 512, 1024},
		{GEFormatCLUT4, 64, 32},
		{GEFormatDXT1, 128, 64},
	}
	for _, tt := range tests {
		if got := TexturePitch(tt.f, tt.bufw); got != tt.want {
			t.Errorf("TexturePitch(%v, %d) = %d, want %d", tt.f, tt.bufw, got, tt.want)
		}
	}
}

func TestParseGEFormat(t *testing.T) {
	tests := []struct {
		name string
		want GEFormat
		ok   bool
	}{
		{"dxt1", GEFormatDXT1, true},
		{"DXT5", GEFormatDXT5, true},
		{"8888", GEFormat8888, true},
		{"clut8", GEFormatCLUT8, true},
		{"5650", GEFormat5650, true},
		{"bc1", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseGEFormat(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseGEFormat(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
