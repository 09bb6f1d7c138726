package texdec

import (
	"errors"
	"fmt"
	stdimage "image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/texdec/internal/image"
)

// Common errors for texture decoding.
var (
	// ErrUnknownVariant is returned for a block variant outside DXT1/3/5.
	ErrUnknownVariant = errors.New("texdec: unknown block variant")

	// ErrInvalidDimensions is returned when width, height or buffer width
	// cannot describe a texture.
	ErrInvalidDimensions = errors.New("texdec: invalid texture dimensions")

	// ErrDataTooSmall is returned when the source holds fewer blocks than
	// the texture needs.
	ErrDataTooSmall = errors.New("texdec: source data too small")

	// ErrReleased is returned by Surface.UploadTo and Surface.NewTexture
	// after Release. The other Surface methods must not be called after
	// Release.
	ErrReleased = errors.New("texdec: surface released")
)

// Surface is a decoded RGBA8 texture. Texels are packed
// A<<24 | B<<16 | G<<8 | R, matching DecodedTextureFormat byte order.
//
// Call Release when the surface is no longer needed so its buffer can be
// reused by later decodes.
type Surface struct {
	buf *image.TexelBuf
}

func alignBlock(n int) int {
	return (n + 3) &^ 3
}

// DecodeTexture decodes a whole block-compressed texture. Rows of src are
// bufw texels wide (see WithBufferWidth); only the first min(bufw, width)
// columns are decoded, the rest of the surface stays transparent black.
func DecodeTexture(v BlockVariant, src []byte, width, height int, opts ...DecodeOption) (*Surface, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bufw := o.bufferWidth
	if bufw == 0 {
		bufw = alignBlock(width)
	}
	if bufw < 4 || bufw%4 != 0 {
		return nil, fmt.Errorf("%w: buffer width %d is not a whole number of blocks", ErrInvalidDimensions, bufw)
	}
	blocksPerRow := bufw / 4
	pitch := max(o.pitch, alignBlock(width))
	minw := min(bufw, width)

	bs := v.BlockSize()
	blockRows := (height + 3) / 4
	need := ((blockRows-1)*blocksPerRow + (minw+3)/4) * bs
	if len(src) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(src), need)
	}

	buf := image.GetFromDefault(width, height, pitch)
	pix := buf.Pix()
	for y := 0; y < height; y += 4 {
		rows := min(height-y, 4)
		blockRow := src[(y/4)*blocksPerRow*bs:]
		for x := 0; x < minw; x += 4 {
			block := blockRow[(x/4)*bs:]
			DecodeBlock(v, block, pix[y*pitch+x:], pitch, rows, o.ignoreBinaryAlpha)
		}
	}

	Logger().Debug("texture decoded",
		"variant", v, "width", width, "height", height, "bufw", bufw, "pitch", pitch)
	return &Surface{buf: buf}, nil
}

// Width returns the texture width in texels.
func (s *Surface) Width() int { return s.buf.Width() }

// Height returns the texture height in texels.
func (s *Surface) Height() int { return s.buf.Height() }

// Pitch returns the distance between rows in texels.
func (s *Surface) Pitch() int { return s.buf.Pitch() }

// Pix returns the backing texels including pitch padding. The slice is
// invalid after Release.
func (s *Surface) Pix() []uint32 { return s.buf.Pix() }

// At returns the texel at (x, y), or 0 outside the texture.
func (s *Surface) At(x, y int) uint32 { return s.buf.At(x, y) }

// Bytes returns the texture as tightly packed RGBA bytes.
func (s *Surface) Bytes() []byte { return s.buf.Bytes() }

// NRGBA converts the texture to a standard library image.
func (s *Surface) NRGBA() *stdimage.NRGBA { return s.buf.NRGBA() }

// ClassifyAlpha reports whether every visible texel is opaque, so the caller
// can skip blending.
func (s *Surface) ClassifyAlpha() CheckAlphaResult {
	return ClassifyAlpha(s.buf.PitchedBytes(), s.buf.Pitch(), s.buf.Width(), s.buf.Height(), PixelRGBA8888)
}

// Fingerprint hashes the tightly packed texels with the active kernel. Two
// surfaces with equal visible texels have equal fingerprints whatever their
// pitch.
func (s *Surface) Fingerprint() uint32 { return Fingerprint(s.buf.Bytes()) }

// UploadTo replaces the contents of an existing GPU texture of the same size.
func (s *Surface) UploadTo(t gpucontext.TextureUpdater) error {
	if s.buf == nil {
		return ErrReleased
	}
	if err := t.UpdateData(s.buf.Bytes()); err != nil {
		return fmt.Errorf("texdec: upload texture: %w", err)
	}
	return nil
}

// NewTexture creates a GPU texture holding the decoded texels.
func (s *Surface) NewTexture(c gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if s.buf == nil {
		return nil, ErrReleased
	}
	tex, err := c.NewTextureFromRGBA(s.buf.Width(), s.buf.Height(), s.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("texdec: create texture: %w", err)
	}
	return tex, nil
}

// Release returns the texel buffer for reuse. The surface must not be used
// afterwards, except for UploadTo and NewTexture which report ErrReleased.
func (s *Surface) Release() {
	if s.buf == nil {
		return
	}
	image.PutToDefault(s.buf)
	s.buf = nil
}
