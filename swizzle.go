package texdec

import "github.com/gogpu/texdec/internal/wide"

// Tiled texture memory stores 16-byte by 8-row tiles contiguously. Within a
// tile, the 16-byte rows follow each other; tiles follow each other left to
// right, then top to bottom. Widths and pitches here are in bytes.
const (
	tileBytes = 16
	tileRows  = 8
	tileSize  = tileBytes * tileRows
)

// Tile converts a linear image into tiled layout using the active kernel.
// blocksWide and blocksHigh count tiles; pitch is the linear row pitch in
// bytes and must be at least blocksWide*16. tiled must hold
// blocksWide*blocksHigh*128 bytes.
func Tile(linear, tiled []byte, blocksWide, blocksHigh, pitch int) {
	ActiveKernel().Tile(linear, tiled, blocksWide, blocksHigh, pitch)
}

// Detile converts tiled memory into a linear image using the active kernel.
// It is the exact inverse of Tile for the same geometry.
func Detile(tiled, linear []byte, blocksWide, blocksHigh, pitch int) {
	ActiveKernel().Detile(tiled, linear, blocksWide, blocksHigh, pitch)
}

func assertTileGeometry(linear, tiled []byte, blocksWide, blocksHigh, pitch int) {
	if blocksWide <= 0 || blocksHigh <= 0 {
		return
	}
	debugAssert(pitch >= blocksWide*tileBytes, "texdec: pitch smaller than tile row")
	debugAssert(len(tiled) >= blocksWide*blocksHigh*tileSize, "texdec: tiled buffer too small")
	debugAssert(len(linear) >= (blocksHigh*tileRows-1)*pitch+blocksWide*tileBytes,
		"texdec: linear buffer too small")
}

func tileScalar(linear, tiled []byte, blocksWide, blocksHigh, pitch int) {
	assertTileGeometry(linear, tiled, blocksWide, blocksHigh, pitch)
	d := 0
	for by := 0; by < blocksHigh; by++ {
		rowBase := by * tileRows * pitch
		for bx := 0; bx < blocksWide; bx++ {
			s := rowBase + bx*tileBytes
			for n := 0; n < tileRows; n++ {
				copy(tiled[d:d+tileBytes], linear[s:s+tileBytes])
				d += tileBytes
				s += pitch
			}
		}
	}
}

func detileScalar(tiled, linear []byte, blocksWide, blocksHigh, pitch int) {
	assertTileGeometry(linear, tiled, blocksWide, blocksHigh, pitch)
	s := 0
	for by := 0; by < blocksHigh; by++ {
		rowBase := by * tileRows * pitch
		for bx := 0; bx < blocksWide; bx++ {
			d := rowBase + bx*tileBytes
			for n := 0; n < tileRows; n++ {
				copy(linear[d:d+tileBytes], tiled[s:s+tileBytes])
				s += tileBytes
				d += pitch
			}
		}
	}
}

// tileWide moves each tile as eight register loads and stores. Pitches that
// are not a multiple of 16 use the scalar path.
func tileWide(linear, tiled []byte, blocksWide, blocksHigh, pitch int) {
	if pitch%wide.VectorBytes != 0 {
		tileScalar(linear, tiled, blocksWide, blocksHigh, pitch)
		return
	}
	if blocksWide <= 0 || blocksHigh <= 0 {
		return
	}
	assertTileGeometry(linear, tiled, blocksWide, blocksHigh, pitch)
	for by := 0; by < blocksHigh; by++ {
		src := linear[by*tileRows*pitch:]
		dst := tiled[by*blocksWide*tileSize:]
		for bx := 0; bx < blocksWide; bx++ {
			var rows [tileRows]wide.U32x4
			for n := range rows {
				rows[n] = wide.LoadU32x4(src[n*pitch+bx*tileBytes:])
			}
			t := dst[bx*tileSize : (bx+1)*tileSize]
			for n := range rows {
				rows[n].Store(wide.Chunk(t, n))
			}
		}
	}
}

// detileWide is the register inverse of tileWide.
func detileWide(tiled, linear []byte, blocksWide, blocksHigh, pitch int) {
	if pitch%wide.VectorBytes != 0 {
		detileScalar(tiled, linear, blocksWide, blocksHigh, pitch)
		return
	}
	if blocksWide <= 0 || blocksHigh <= 0 {
		return
	}
	assertTileGeometry(linear, tiled, blocksWide, blocksHigh, pitch)
	for by := 0; by < blocksHigh; by++ {
		src := tiled[by*blocksWide*tileSize:]
		dst := linear[by*tileRows*pitch:]
		for bx := 0; bx < blocksWide; bx++ {
			t := src[bx*tileSize : (bx+1)*tileSize]
			var rows [tileRows]wide.U32x4
			for n := range rows {
				rows[n] = wide.LoadU32x4(wide.Chunk(t, n))
			}
			for n := range rows {
				rows[n].Store(dst[n*pitch+bx*tileBytes:])
			}
		}
	}
}
