// Package texdec decodes and inspects texture memory of a handheld console
// GPU for re-upload to a modern graphics API.
//
// # Overview
//
// texdec covers the CPU-side texture paths a renderer needs before it can
// hand a texture to the GPU:
//   - Fingerprint: a fast checksum of raw texture memory for change detection
//   - Tile / Detile: conversion between 16-byte x 8-row tiled memory and
//     linear images
//   - DecodeBlock / DecodeTexel / DecodeTexture: DXT1, DXT3 and DXT5 block
//     decoding in the console's block layout
//   - ClassifyAlpha: whether an image is fully opaque, so blending can be
//     skipped
//
// # Quick Start
//
//	import "github.com/gogpu/texdec"
//
//	// Skip work when texture memory has not changed
//	sum := texdec.Fingerprint(texMem)
//
//	// Decode a DXT5 texture to RGBA8
//	s, err := texdec.DecodeTexture(texdec.BlockDXT5, texMem, 128, 128)
//	if err != nil {
//	    return err
//	}
//	defer s.Release()
//	opaque := s.ClassifyAlpha() == texdec.CheckAlphaFull
//
// # Kernels
//
// The bulk paths are implemented by kernels: a portable generic set and
// register-width sets named after the instruction sets they model (sse2,
// neon). The best kernel for the CPU is chosen once at startup using
// golang.org/x/sys/cpu; UseKernel overrides the choice. Tiling and alpha
// classification give identical results on every kernel. Fingerprints are
// only comparable within one kernel and must not be persisted.
//
// # Texel Format
//
// Decoded texels are uint32 values packed A<<24 | B<<16 | G<<8 | R, which is
// RGBA byte order in little-endian memory (DecodedTextureFormat).
//
// # Debug Checks
//
// Buffer geometry is a caller contract and is not checked on the hot paths.
// Build with -tags texdebug to panic on contract violations instead.
//
// # Logging
//
// texdec is silent by default. See SetLogger.
package texdec
