package texdec

// DecodeOption configures DecodeTexture.
//
// Example:
//
//	// Texture memory is 256 texels wide, but only 200 are visible
//	s, err := texdec.DecodeTexture(texdec.BlockDXT5, data, 200, 128,
//	    texdec.WithBufferWidth(256))
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional configuration for DecodeTexture.
type decodeOptions struct {
	ignoreBinaryAlpha bool
	bufferWidth       int // texels per source row, 0 = width rounded up to a block
	pitch             int // texels per destination row, 0 = width rounded up to a block
}

// defaultDecodeOptions returns the default decode options.
func defaultDecodeOptions() decodeOptions {
	return decodeOptions{}
}

// WithBinaryAlphaIgnored decodes DXT1 blocks with a zero alpha byte in every
// texel, for callers that combine the color with alpha from another source.
// It has no effect on DXT3 and DXT5.
func WithBinaryAlphaIgnored() DecodeOption {
	return func(o *decodeOptions) {
		o.ignoreBinaryAlpha = true
	}
}

// WithBufferWidth sets the source row width in texels. Texture memory rows
// are often wider than the visible image; bufw must be a positive multiple
// of 4.
func WithBufferWidth(bufw int) DecodeOption {
	return func(o *decodeOptions) {
		o.bufferWidth = bufw
	}
}

// WithPitch sets the destination row pitch in texels. Pitches smaller than
// the width rounded up to a whole block are raised to that minimum.
func WithPitch(pitch int) DecodeOption {
	return func(o *decodeOptions) {
		o.pitch = pitch
	}
}
