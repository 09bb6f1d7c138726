package main

import (
	"errors"
	"fmt"
	stdimage "image"
	"io"
	"os"
	"strings"

	"github.com/gogpu/texdec"
	"github.com/gogpu/texdec/internal/image"
	"github.com/gogpu/texdec/internal/texfile"
)

var errUnsupported = errors.New("texdump: unsupported")

// report is what texdump prints for one texture.
type report struct {
	Kernel      string
	Format      texdec.GEFormat
	Width       int
	Height      int
	BufferWidth int
	Fingerprint uint32
	Alpha       string // "FULL", "ANY", or "" when the format has no alpha check
}

func (r report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "kernel:      %s\n", r.Kernel)
	fmt.Fprintf(&b, "format:      %s %dx%d bufw %d\n", r.Format, r.Width, r.Height, r.BufferWidth)
	fmt.Fprintf(&b, "fingerprint: %08x\n", r.Fingerprint)
	if r.Alpha != "" {
		fmt.Fprintf(&b, "alpha:       %s\n", r.Alpha)
	}
	return b.String()
}

// loadDump reads a texfile dump, or raw texture memory when rawFormat is set.
func loadDump(path, rawFormat string, width, height, bufw int, swizzled bool) (*texfile.Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if rawFormat == "" {
		return texfile.Decode(f)
	}

	format, ok := texdec.ParseGEFormat(rawFormat)
	if !ok {
		return nil, fmt.Errorf("%w: raw format %q", errUnsupported, rawFormat)
	}
	if width <= 0 || height <= 0 || bufw < 0 {
		return nil, fmt.Errorf("raw texture needs -width and -height, got %dx%d", width, height)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if bufw == 0 {
		bufw = width
	}
	return &texfile.Dump{
		Format:      format,
		Swizzled:    swizzled,
		Width:       width,
		Height:      height,
		BufferWidth: bufw,
		Data:        data,
	}, nil
}

// layout returns the effective buffer width, byte pitch and row count of
// texture memory. Block formats count rows of 4x4 blocks and round the
// buffer width up to a whole block. A zero buffer width means the rows are
// exactly width texels.
func layout(d *texfile.Dump) (bufw, pitch, rows int) {
	raw := d.BufferWidth
	if raw == 0 {
		raw = d.Width
	}
	bw := texdec.TextureBufferWidth(d.Format, uint32(raw)) //#nosec G115 -- dump geometry is validated positive
	bufw = int(bw)
	if v, ok := d.Format.BlockVariant(); ok {
		bufw = (bufw + 3) &^ 3
		return bufw, bufw / 4 * v.BlockSize(), (d.Height + 3) / 4
	}
	return bufw, int(texdec.TexturePitch(d.Format, bw)), d.Height
}

// linearData returns texture memory in linear layout, detiling if needed.
func linearData(d *texfile.Dump) ([]byte, error) {
	if !d.Swizzled {
		return d.Data, nil
	}
	_, pitch, rows := layout(d)
	if pitch < 16 || pitch%16 != 0 {
		return nil, fmt.Errorf("%w: tiled pitch %d", errUnsupported, pitch)
	}
	blocksWide := pitch / 16
	blocksHigh := (rows + 7) / 8
	if need := blocksWide * blocksHigh * 128; len(d.Data) < need {
		return nil, fmt.Errorf("tiled data is %d bytes, need %d", len(d.Data), need)
	}
	linear := make([]byte, blocksHigh*8*pitch)
	texdec.Detile(d.Data, linear, blocksWide, blocksHigh, pitch)
	return linear, nil
}

// inspect fingerprints and classifies d, and renders it when the format
// has a direct RGBA8 form. img is nil for formats that are only inspected.
func inspect(d *texfile.Dump) (report, stdimage.Image, error) {
	r := report{
		Kernel:      texdec.ActiveKernel().Name(),
		Format:      d.Format,
		Width:       d.Width,
		Height:      d.Height,
		BufferWidth: d.BufferWidth,
		Fingerprint: texdec.Fingerprint(d.Data),
	}

	data, err := linearData(d)
	if err != nil {
		return r, nil, err
	}
	bufw, pitch, rows := layout(d)

	if v, ok := d.Format.BlockVariant(); ok {
		s, err := texdec.DecodeTexture(v, data, d.Width, d.Height, texdec.WithBufferWidth(bufw))
		if err != nil {
			return r, nil, err
		}
		defer s.Release()
		r.Alpha = s.ClassifyAlpha().String()
		return r, s.NRGBA(), nil
	}

	if len(data) < (rows-1)*pitch+d.Width*int(d.Format.BitsPerPixel())/8 {
		return r, nil, fmt.Errorf("texture data is %d bytes, too small for %dx%d", len(data), d.Width, d.Height)
	}
	if pf, ok := d.Format.AlphaFormat(); ok {
		r.Alpha = texdec.ClassifyAlpha(data, bufw, d.Width, d.Height, pf).String()
	}
	if d.Format != texdec.GEFormat8888 {
		return r, nil, nil
	}

	buf, err := image.FromBytes(data, d.Width, d.Height, pitch/4)
	if err != nil {
		return r, nil, err
	}
	img := buf.NRGBA()
	return r, img, nil
}

// writeImage scales img by an integer factor and encodes it by file
// extension.
func writeImage(path string, img stdimage.Image, scale int) error {
	img, err := image.Scale(img, scale)
	if err != nil {
		return err
	}
	return image.Save(path, img)
}

// packDump writes d as a texfile dump.
func packDump(path string, d *texfile.Dump, c texfile.Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = texfile.Encode(f, d, c)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
