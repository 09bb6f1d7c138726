package texdec

import "testing"

func TestDefaultDecodeOptions(t *testing.T) {
	o := defaultDecodeOptions()
	if o.ignoreBinaryAlpha || o.bufferWidth != 0 || o.pitch != 0 {
		t.Errorf("defaults = %+v, want zero", o)
	}
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []DecodeOption
		want decodeOptions
	}{
		{"none", nil, decodeOptions{}},
		{"binary alpha", []DecodeOption{WithBinaryAlphaIgnored()}, decodeOptions{ignoreBinaryAlpha: true}},
		{"buffer width", []DecodeOption{WithBufferWidth(256)}, decodeOptions{bufferWidth: 256}},
		{"pitch", []DecodeOption{WithPitch(64)}, decodeOptions{pitch: 64}},
		{"last wins", []DecodeOption{WithPitch(64), WithPitch(128)}, decodeOptions{pitch: 128}},
		{"combined", []DecodeOption{WithBufferWidth(512), WithBinaryAlphaIgnored(), WithPitch(32)},
			decodeOptions{ignoreBinaryAlpha: true, bufferWidth: 512, pitch: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultDecodeOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o != tt.want {
				t.Errorf("options = %+v, want %+v", o, tt.want)
			}
		})
	}
}

func TestWithBinaryAlphaIgnored(t *testing.T) {
	// color1 <= color2 selects the three-color palette with a transparent index 3.
	block := makeDXT1([4]uint8{0xFF, 0xFF, 0xFF, 0xFF}, 0x0000, 0xFFFF)

	s, err := DecodeTexture(BlockDXT1, block, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	if got := s.At(0, 0); got != 0 {
		t.Errorf("default At(0,0) = %#08x, want transparent black", got)
	}

	block = makeDXT1([4]uint8{}, 0xFFFF, 0x0000)
	ignored, err := DecodeTexture(BlockDXT1, block, 4, 4, WithBinaryAlphaIgnored())
	if err != nil {
		t.Fatal(err)
	}
	defer ignored.Release()
	if got := ignored.At(0, 0) >> 24; got != 0 {
		t.Errorf("ignored alpha = %#x, want 0", got)
	}
}
