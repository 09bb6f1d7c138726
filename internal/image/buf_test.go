package image

import (
	"errors"
	"testing"
)

func TestNewTexelBufWithPitch(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		pitch   int
		wantErr error
	}{
		{"1x1 minimum", 1, 1, 1, nil},
		{"block aligned", 16, 8, 16, nil},
		{"padded pitch", 10, 4, 12, nil},
		{"zero width", 0, 4, 4, ErrInvalidDimensions},
		{"zero height", 4, 0, 4, ErrInvalidDimensions},
		{"negative width", -1, 4, 4, ErrInvalidDimensions},
		{"pitch too small", 10, 4, 8, ErrInvalidPitch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewTexelBufWithPitch(tt.width, tt.height, tt.pitch)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewTexelBufWithPitch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height || buf.Pitch() != tt.pitch {
				t.Errorf("geometry = %dx%d pitch %d, want %dx%d pitch %d",
					buf.Width(), buf.Height(), buf.Pitch(), tt.width, tt.height, tt.pitch)
			}
			if len(buf.Pix()) != tt.pitch*tt.height {
				t.Errorf("len(Pix()) = %d, want %d", len(buf.Pix()), tt.pitch*tt.height)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	// 2x2 texels with a pitch of 3; the last row stops at width.
	p := []byte{
		0x10, 0x20, 0x30, 0x40, 0x11, 0x21, 0x31, 0x41, 0xEE, 0xEE, 0xEE, 0xEE,
		0x12, 0x22, 0x32, 0x42, 0x13, 0x23, 0x33, 0x43,
	}
	buf, err := FromBytes(p, 2, 2, 3)
	if err != nil {
		t.Fatalf("FromBytes() = %v", err)
	}
	if got := buf.At(1, 0); got != 0x41312111 {
		t.Errorf("At(1, 0) = %#08x, want 0x41312111", got)
	}
	if got := buf.At(1, 1); got != 0x43332313 {
		t.Errorf("At(1, 1) = %#08x, want 0x43332313", got)
	}
	if len(buf.Pix()) != 6 {
		t.Errorf("len(Pix()) = %d, want 6", len(buf.Pix()))
	}

	p[0] = 0xFF
	if buf.At(0, 0) != 0x40302010 {
		t.Error("FromBytes retained the source slice")
	}

	tests := []struct {
		name                 string
		n                    int
		width, height, pitch int
		wantErr              error
	}{
		{"zero width", 16, 0, 1, 1, ErrInvalidDimensions},
		{"pitch too small", 16, 2, 1, 1, ErrInvalidPitch},
		{"short data", 19, 2, 2, 3, ErrDataTooSmall},
		{"exact data", 20, 2, 2, 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(make([]byte, tt.n), tt.width, tt.height, tt.pitch)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromBytes() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		width   int
		height  int
		pitch   int
		wantErr error
	}{
		{"exact", 16, 4, 4, 4, nil},
		{"last row unpadded", 14, 4, 2, 10, nil},
		{"too small", 13, 4, 2, 10, ErrDataTooSmall},
		{"bad pitch", 16, 4, 4, 3, ErrInvalidPitch},
		{"bad dims", 16, 0, 4, 4, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRaw(make([]uint32, tt.n), tt.width, tt.height, tt.pitch)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTexelBuf_RowAndAt(t *testing.T) {
	pix := []uint32{
		1, 2, 3, 99,
		4, 5, 6, 99,
	}
	buf, err := FromRaw(pix, 3, 2, 4)
	if err != nil {
		t.Fatal(err)
	}

	row := buf.Row(1)
	if len(row) != 3 || row[0] != 4 || row[2] != 6 {
		t.Errorf("Row(1) = %v, want [4 5 6]", row)
	}
	if cap(row) != 3 {
		t.Errorf("cap(Row(1)) = %d, want 3", cap(row))
	}
	if buf.Row(2) != nil || buf.Row(-1) != nil {
		t.Error("Row out of range should be nil")
	}

	if got := buf.At(2, 0); got != 3 {
		t.Errorf("At(2, 0) = %d, want 3", got)
	}
	if got := buf.At(3, 0); got != 0 {
		t.Errorf("At(3, 0) = %d, want 0 (padding is outside the image)", got)
	}
}

func TestTexelBuf_Bytes(t *testing.T) {
	pix := []uint32{0x44332211, 0xAAAAAAAA, 0x88776655, 0xAAAAAAAA}
	buf, err := FromRaw(pix, 1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	got := buf.Bytes()
	want := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	if string(got) != string(want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}

	pitched := buf.PitchedBytes()
	if len(pitched) != 12 {
		t.Fatalf("len(PitchedBytes()) = %d, want 12", len(pitched))
	}
	if pitched[4] != 0xAA || pitched[8] != 0x55 {
		t.Errorf("PitchedBytes() = %x, padding texel not preserved", pitched)
	}
}

func TestTexelBuf_NRGBA(t *testing.T) {
	buf, err := NewTexelBufWithPitch(2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	buf.Pix()[3] = 0x80FF0010 // A=0x80 B=0xFF G=0x00 R=0x10

	img := buf.NRGBA()
	c := img.NRGBAAt(1, 1)
	if c.R != 0x10 || c.G != 0 || c.B != 0xFF || c.A != 0x80 {
		t.Errorf("NRGBAAt(1, 1) = %+v, want {R:16 G:0 B:255 A:128}", c)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("Bounds() = %v, want 2x2", b)
	}
}

func TestTexelBuf_Clear(t *testing.T) {
	buf, _ := NewTexelBufWithPitch(4, 4, 4)
	for i := range buf.Pix() {
		buf.Pix()[i] = 0xFFFFFFFF
	}
	buf.Clear()
	for i, c := range buf.Pix() {
		if c != 0 {
			t.Fatalf("Pix()[%d] = %#x after Clear, want 0", i, c)
		}
	}
}
