// Package texfile reads and writes captured texture memory.
//
// A dump is a fixed little-endian header followed by the raw texture bytes,
// optionally compressed with LZ4 or Zstandard:
//
//	offset size field
//	0      4    magic "TXDP"
//	4      2    version (1)
//	6      1    GE texture format
//	7      1    flags (bit 0: tiled)
//	8      1    compression
//	9      3    reserved
//	12     4    width
//	16     4    height
//	20     4    buffer width
//	24     4    uncompressed payload length
package texfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/texdec"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Magic identifies a dump file.
const Magic = "TXDP"

// Version is the only header version this package writes and reads.
const Version uint16 = 1

// MaxPayload bounds the payload length a header may declare.
const MaxPayload = 64 << 20

// Compression selects the payload encoding.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionLZ4
	CompressionZstd
)

// String returns the lowercase name used on the command line.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression is the inverse of Compression.String.
func ParseCompression(s string) (Compression, error) {
	for c := CompressionNone; c <= CompressionZstd; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

const flagSwizzled = 1 << 0

// Errors returned by Decode and Encode.
var (
	ErrBadMagic           = errors.New("texfile: not a texture dump")
	ErrUnsupportedVersion = errors.New("texfile: unsupported version")
	ErrUnknownCompression = errors.New("texfile: unknown compression")
	ErrTooLarge           = errors.New("texfile: payload too large")
	ErrInvalidDump        = errors.New("texfile: invalid dump")
)

// header is the on-disk layout.
type header struct {
	Magic       [4]byte
	Version     uint16
	Format      uint8
	Flags       uint8
	Compression Compression
	Reserved    [3]uint8
	Width       uint32
	Height      uint32
	BufferWidth uint32
	PayloadLen  uint32
}

// Dump is one captured texture.
type Dump struct {
	Format      texdec.GEFormat
	Swizzled    bool
	Width       int
	Height      int
	BufferWidth int
	Data        []byte
}

func (d *Dump) validate() error {
	if !d.Format.IsValid() {
		return fmt.Errorf("%w: format %d", ErrInvalidDump, d.Format)
	}
	if d.Width <= 0 || d.Height <= 0 || d.BufferWidth < 0 {
		return fmt.Errorf("%w: %dx%d bufw %d", ErrInvalidDump, d.Width, d.Height, d.BufferWidth)
	}
	if len(d.Data) > MaxPayload {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(d.Data))
	}
	return nil
}

// Encode writes d to w using compression c.
func Encode(w io.Writer, d *Dump, c Compression) error {
	if err := d.validate(); err != nil {
		return err
	}
	if c > CompressionZstd {
		return fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}

	h := header{
		Version:     Version,
		Format:      uint8(d.Format),
		Compression: c,
		Width:       uint32(d.Width),       //#nosec G115 -- validated positive
		Height:      uint32(d.Height),      //#nosec G115 -- validated positive
		BufferWidth: uint32(d.BufferWidth), //#nosec G115 -- validated non-negative
		PayloadLen:  uint32(len(d.Data)),   //#nosec G115 -- bounded by MaxPayload
	}
	copy(h.Magic[:], Magic)
	if d.Swizzled {
		h.Flags |= flagSwizzled
	}

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("could not write dump header: %w", err)
	}

	var err error
	switch c {
	case CompressionNone:
		_, err = w.Write(d.Data)
	case CompressionLZ4:
		err = compressLZ4(w, d.Data)
	case CompressionZstd:
		err = compressZstd(w, d.Data)
	}
	if err != nil {
		return fmt.Errorf("could not write %s payload: %w", c, err)
	}

	texdec.Logger().Debug("texture dump encoded",
		"format", d.Format, "width", d.Width, "height", d.Height, "compression", c, "bytes", len(d.Data))
	return nil
}

// Decode reads one dump from r.
func Decode(r io.Reader) (*Dump, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("could not read dump header: %w", err)
	}
	if string(h.Magic[:]) != Magic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadMagic, h.Magic[:])
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.PayloadLen > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, h.PayloadLen)
	}

	d := &Dump{
		Format:      texdec.GEFormat(h.Format),
		Swizzled:    h.Flags&flagSwizzled != 0,
		Width:       int(h.Width),
		Height:      int(h.Height),
		BufferWidth: int(h.BufferWidth),
		Data:        make([]byte, h.PayloadLen),
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	var err error
	switch h.Compression {
	case CompressionNone:
		_, err = io.ReadFull(r, d.Data)
	case CompressionLZ4:
		_, err = io.ReadFull(lz4.NewReader(r), d.Data)
	case CompressionZstd:
		err = decompressZstd(r, d.Data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, h.Compression)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s payload: %w", h.Compression, err)
	}

	texdec.Logger().Debug("texture dump decoded",
		"format", d.Format, "width", d.Width, "height", d.Height, "compression", h.Compression)
	return d, nil
}

func compressLZ4(w io.Writer, data []byte) error {
	lzw := lz4.NewWriter(w)
	if err := lzw.Apply(lz4.CompressionLevelOption(lz4.Fast)); err != nil {
		return err
	}
	if _, err := lzw.Write(data); err != nil {
		return err
	}
	return lzw.Close()
}

var (
	zstdEncoderLevel = zstd.SpeedBetterCompression

	sharedZstdEncoder persistentZstdEncoder
	sharedZstdDecoder persistentZstdDecoder
)

// persistentZstdEncoder shares one encoder between calls.
type persistentZstdEncoder struct {
	once sync.Once
	mu   sync.Mutex
	enc  *zstd.Encoder
	err  error
}

func (p *persistentZstdEncoder) use(fn func(*zstd.Encoder) error) error {
	p.once.Do(func() {
		p.enc, p.err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdEncoderLevel))
	})
	if p.err != nil {
		return p.err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return fn(p.enc)
}

type persistentZstdDecoder struct {
	once sync.Once
	mu   sync.Mutex
	dec  *zstd.Decoder
	err  error
}

func (p *persistentZstdDecoder) use(fn func(*zstd.Decoder) error) error {
	p.once.Do(func() {
		p.dec, p.err = zstd.NewReader(nil)
	})
	if p.err != nil {
		return p.err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return fn(p.dec)
}

func compressZstd(w io.Writer, data []byte) error {
	var buf bytes.Buffer
	if err := sharedZstdEncoder.use(func(enc *zstd.Encoder) error {
		enc.Reset(&buf)
		if _, err := enc.Write(data); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	}); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func decompressZstd(r io.Reader, dst []byte) error {
	return sharedZstdDecoder.use(func(dec *zstd.Decoder) error {
		if err := dec.Reset(r); err != nil {
			return err
		}
		_, err := io.ReadFull(dec, dst)
		return err
	})
}
