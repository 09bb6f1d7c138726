package texdec

import "github.com/gogpu/texdec/internal/wide"

// ClassifyAlpha reports whether every pixel of a packed image has maximal
// alpha, using the active kernel. stride and width are in pixels; rows
// beyond width are never read. An empty image is CheckAlphaFull. Unknown
// formats are reported as CheckAlphaAny.
func ClassifyAlpha(pixels []byte, stride, width, height int, f PixelFormat) CheckAlphaResult {
	return ActiveKernel().ClassifyAlpha(pixels, stride, width, height, f)
}

func assertAlphaGeometry(pixels []byte, stride, width, height, bpp int) {
	if width <= 0 || height <= 0 {
		return
	}
	debugAssert(stride >= width, "texdec: stride smaller than width")
	debugAssert(len(pixels) >= ((height-1)*stride+width)*bpp, "texdec: pixel buffer too small")
}

// classifyScalar32 checks exactly width pixels per row.
func classifyScalar32(pixels []byte, stride, width, height int, mask uint32) CheckAlphaResult {
	assertAlphaGeometry(pixels, stride, width, height, 4)
	for y := 0; y < height; y++ {
		row := pixels[y*stride*4:]
		bits := mask
		for x := 0; x < width; x++ {
			bits &= wide.Word(row, x)
		}
		if bits != mask {
			return CheckAlphaAny
		}
	}
	return CheckAlphaFull
}

// classifyScalar16 checks exactly width pixels per row. Odd widths are exact.
func classifyScalar16(pixels []byte, stride, width, height int, mask uint16) CheckAlphaResult {
	assertAlphaGeometry(pixels, stride, width, height, 2)
	for y := 0; y < height; y++ {
		row := pixels[y*stride*2:]
		bits := mask
		for x := 0; x < width; x++ {
			bits &= wide.Half(row, x)
		}
		if bits != mask {
			return CheckAlphaAny
		}
	}
	return CheckAlphaFull
}

// classifyVector32 ANDs whole registers per row and compares once per row.
// width must be a multiple of 4.
func classifyVector32(pixels []byte, stride, width, height int, mask uint32) CheckAlphaResult {
	assertAlphaGeometry(pixels, stride, width, height, 4)
	m := wide.SplatU32(mask)
	bits := m
	for y := 0; y < height; y++ {
		row := pixels[y*stride*4:]
		for i := 0; i < width/4; i++ {
			bits = bits.And(wide.LoadU32x4(wide.Chunk(row, i)))
		}
		if !bits.Xor(m).IsZero() {
			return CheckAlphaAny
		}
	}
	return CheckAlphaFull
}

// classifyVector16 is the 8-pixel register form of classifyScalar16.
// width must be a multiple of 8.
func classifyVector16(pixels []byte, stride, width, height int, mask uint16) CheckAlphaResult {
	assertAlphaGeometry(pixels, stride, width, height, 2)
	m := wide.SplatU16x8(mask)
	bits := m
	for y := 0; y < height; y++ {
		row := pixels[y*stride*2:]
		for i := 0; i < width/8; i++ {
			bits = bits.And(wide.LoadU16x8(wide.Chunk(row, i)))
		}
		if !bits.Xor(m).IsZero() {
			return CheckAlphaAny
		}
	}
	return CheckAlphaFull
}

func classifyGeneric(pixels []byte, stride, width, height int, f PixelFormat) CheckAlphaResult {
	mask := f.AlphaMask()
	if f.BytesPerPixel() == 4 {
		return classifyScalar32(pixels, stride, width, height, mask)
	}
	return classifyScalar16(pixels, stride, width, height, uint16(mask)) //#nosec G115 -- 16-bit formats have 16-bit masks
}

// classifyWide takes the register path when both width and stride are whole
// registers, and the scalar path otherwise. Both give the same result.
func classifyWide(pixels []byte, stride, width, height int, f PixelFormat) CheckAlphaResult {
	vp := f.VectorPixels()
	if width%vp != 0 || stride%vp != 0 {
		return classifyGeneric(pixels, stride, width, height, f)
	}
	mask := f.AlphaMask()
	if f.BytesPerPixel() == 4 {
		return classifyVector32(pixels, stride, width, height, mask)
	}
	return classifyVector16(pixels, stride, width, height, uint16(mask)) //#nosec G115 -- 16-bit formats have 16-bit masks
}
