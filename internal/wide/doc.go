// Package wide provides 128-bit register views for bulk texture data.
//
// The types are fixed-size lane arrays (U32x4, U16x8) with simple loops, so
// the Go compiler can lower them to SSE2 or NEON instructions without unsafe
// or assembly. Loads and stores are little-endian and unaligned, matching
// texture memory on the target console.
//
// # Wide Types
//
// U32x4: four 32-bit lanes (packed RGBA8 pixels, checksum words).
// U16x8: eight 16-bit lanes (packed 16-bit pixels, multiplier lanes).
//
// U32x4.U16 and U16x8.U32 reinterpret a register without moving bytes, the
// way a C program casts between __m128i views.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Provide benchmarks to verify SIMD performance gains
//
// # Usage Example
//
//	// AND together the alpha of four RGBA8 pixels
//	bits := wide.SplatU32(0xFF000000)
//	bits = bits.And(wide.LoadU32x4(wide.Chunk(row, 0)))
//	opaque := bits.Xor(wide.SplatU32(0xFF000000)).IsZero()
package wide
