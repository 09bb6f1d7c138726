package texdec

import "github.com/gogpu/texdec/internal/wide"

// Fingerprint is a fast change-detection checksum, not a hash: equal inputs
// give equal results within one kernel, but different kernels are separate
// checksum families and may disagree. Values must not be persisted across
// processes or machines.

const (
	// fingerprintChunk is the input granularity of the lane algorithm.
	fingerprintChunk = 64

	// fingerprintUpdate advances every multiplier lane once per chunk.
	fingerprintUpdate = 0x2455
)

// fingerprintSeed holds the initial multiplier lanes, lane 0 first.
var fingerprintSeed = wide.U16x8{0xc00b, 0x9bd9, 0x4b73, 0xb651, 0x4d9b, 0x4309, 0x0083, 0x0001}

// Fingerprint returns the checksum of data using the active kernel.
//
// Inputs whose length is a multiple of 64 bytes use the 128-bit lane
// algorithm; anything else silently falls back to the kernel's scalar
// algorithm, which only consumes whole 32-bit words.
func Fingerprint(data []byte) uint32 {
	return ActiveKernel().Fingerprint(data)
}

// FingerprintBasic is the plain scalar checksum: every whole little-endian
// word is alternately added to and xored into a 32-bit accumulator. It never
// takes the lane path, so an all-zero input always yields 0.
func FingerprintBasic(data []byte) uint32 {
	return fingerprintWords(data)
}

// fingerprintPairs consumes 8 bytes per step (add, then xor) and ignores a
// trailing partial pair.
func fingerprintPairs(data []byte) uint32 {
	var check uint32
	n := len(data) / 8
	for i := 0; i < n; i++ {
		check += wide.Word(data, 2*i)
		check ^= wide.Word(data, 2*i+1)
	}
	return check
}

// fingerprintWords alternates add and xor over every whole word.
func fingerprintWords(data []byte) uint32 {
	var check uint32
	n := len(data) / 4
	for i := 0; i < n; i++ {
		if i&1 == 0 {
			check += wide.Word(data, i)
		} else {
			check ^= wide.Word(data, i)
		}
	}
	return check
}

// fingerprintLanesScalar is the portable reference of the lane algorithm.
// The accumulator is kept as four words; 16-bit steps split each word into
// its two halves explicitly.
func fingerprintLanesScalar(data []byte) uint32 {
	var cursor [4]uint32
	cursor2 := [8]uint16(fingerprintSeed)

	for off := 0; off+fingerprintChunk <= len(data); off += fingerprintChunk {
		p := data[off : off+fingerprintChunk]

		for j := 0; j < 8; j++ {
			h := halfOf(cursor, j) + wide.Half(p, j)*cursor2[j]
			cursor = withHalf(cursor, j, h)
		}
		for j := 0; j < 4; j++ {
			cursor[j] ^= wide.Word(p[16:], j)
			cursor[j] += wide.Word(p[32:], j)
		}
		for j := 0; j < 8; j++ {
			h := halfOf(cursor, j) ^ wide.Half(p[48:], j)*cursor2[j]
			cursor = withHalf(cursor, j, h)
		}
		for j := 0; j < 8; j++ {
			cursor2[j] += fingerprintUpdate
		}
	}

	var check uint32
	for j := 0; j < 4; j++ {
		check += cursor[j] + (uint32(cursor2[2*j]) | uint32(cursor2[2*j+1])<<16)
	}
	return check
}

func halfOf(c [4]uint32, j int) uint16 {
	return uint16(c[j/2] >> (16 * (j & 1))) //#nosec G115 -- selects one half of the word
}

func withHalf(c [4]uint32, j int, h uint16) [4]uint32 {
	shift := 16 * (j & 1)
	c[j/2] = c[j/2]&^(0xFFFF<<shift) | uint32(h)<<shift
	return c
}

// fingerprintLanesWide is the lane algorithm written against 128-bit
// register views (pmullw/paddw/pxor/paddd sequence).
func fingerprintLanesWide(data []byte) uint32 {
	var cursor wide.U32x4
	cursor2 := fingerprintSeed
	update := wide.SplatU16x8(fingerprintUpdate)

	for off := 0; off+fingerprintChunk <= len(data); off += fingerprintChunk {
		p := data[off : off+fingerprintChunk]

		chunk := wide.LoadU16x8(wide.Chunk(p, 0)).Mul(cursor2)
		cursor = cursor.U16().Add(chunk).U32()
		cursor = cursor.Xor(wide.LoadU32x4(wide.Chunk(p, 1)))
		cursor = cursor.Add(wide.LoadU32x4(wide.Chunk(p, 2)))
		chunk = wide.LoadU16x8(wide.Chunk(p, 3)).Mul(cursor2)
		cursor = cursor.Xor(chunk.U32())
		cursor2 = cursor2.Add(update)
	}

	return cursor.Add(cursor2.U32()).HorizontalAdd()
}

// fingerprintLanesMLA is the lane algorithm in multiply-accumulate form
// (vmla.i16 followed by veor/vadd).
func fingerprintLanesMLA(data []byte) uint32 {
	var cursor wide.U32x4
	cursor2 := fingerprintSeed
	update := wide.SplatU16x8(fingerprintUpdate)

	for off := 0; off+fingerprintChunk <= len(data); off += fingerprintChunk {
		p := data[off : off+fingerprintChunk]

		cursor = cursor.U16().MulAdd(wide.LoadU16x8(wide.Chunk(p, 0)), cursor2).U32()
		cursor = cursor.Xor(wide.LoadU32x4(wide.Chunk(p, 1)))
		cursor = cursor.Add(wide.LoadU32x4(wide.Chunk(p, 2)))
		cursor = cursor.Xor(wide.LoadU16x8(wide.Chunk(p, 3)).Mul(cursor2).U32())
		cursor2 = cursor2.Add(update)
	}

	return cursor.Add(cursor2.U32()).HorizontalAdd()
}

func fingerprintGeneric(data []byte) uint32 {
	if len(data)%fingerprintChunk == 0 {
		return fingerprintLanesScalar(data)
	}
	return fingerprintPairs(data)
}

func fingerprintSSE2(data []byte) uint32 {
	if len(data)%fingerprintChunk == 0 {
		return fingerprintLanesWide(data)
	}
	return fingerprintPairs(data)
}

func fingerprintNEON(data []byte) uint32 {
	if len(data)%fingerprintChunk == 0 {
		return fingerprintLanesMLA(data)
	}
	return fingerprintWords(data)
}
