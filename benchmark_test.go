package texdec

import "testing"

// BenchmarkFingerprint compares the kernels on chunk-aligned texture sizes.
func BenchmarkFingerprint(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"4KB", 4 << 10},
		{"64KB", 64 << 10},
		{"512KB", 512 << 10},
	}

	for _, size := range sizes {
		data := randomBytes(1, size.n)
		for _, k := range testKernels {
			b.Run(size.name+"/"+k.Name(), func(b *testing.B) {
				b.SetBytes(int64(size.n))
				b.ReportAllocs()
				for b.Loop() {
					_ = k.Fingerprint(data)
				}
			})
		}
	}
}

func BenchmarkFingerprintBasic(b *testing.B) {
	data := randomBytes(1, 64<<10)
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		_ = FingerprintBasic(data)
	}
}

func BenchmarkDetile(b *testing.B) {
	// 512x272 RGBA8 framebuffer-sized texture: 128 tiles per row.
	const bw, bh, pitch = 128, 34, 2048
	tiled := randomBytes(2, bw*bh*tileSize)
	linear := make([]byte, pitch*bh*tileRows)

	for _, k := range testKernels {
		b.Run(k.Name(), func(b *testing.B) {
			b.SetBytes(int64(len(tiled)))
			for b.Loop() {
				k.Detile(tiled, linear, bw, bh, pitch)
			}
		})
	}
}

func BenchmarkDecodeBlock(b *testing.B) {
	for _, v := range []BlockVariant{BlockDXT1, BlockDXT3, BlockDXT5} {
		src := randomBytes(3, v.BlockSize())
		var dst [16]uint32
		b.Run(v.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				DecodeBlock(v, src, dst[:], 4, 4, false)
			}
		})
	}
}

func BenchmarkDecodeTexture(b *testing.B) {
	const w, h = 256, 256
	src := randomBytes(4, (w/4)*(h/4)*16)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		s, err := DecodeTexture(BlockDXT5, src, w, h)
		if err != nil {
			b.Fatal(err)
		}
		s.Release()
	}
}

func BenchmarkClassifyAlpha(b *testing.B) {
	const w, h = 512, 512
	for _, f := range allPixelFormats {
		buf := opaqueImage(f, w, h)
		for _, k := range testKernels {
			b.Run(f.String()+"/"+k.Name(), func(b *testing.B) {
				b.SetBytes(int64(len(buf)))
				for b.Loop() {
					_ = k.ClassifyAlpha(buf, w, w, h, f)
				}
			})
		}
	}
}
