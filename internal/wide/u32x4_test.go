package wide

import "testing"

func TestLoadStoreU32x4(t *testing.T) {
	src := []byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c,
		0x0d, 0x0e, 0x0f, 0x10,
	}
	v := LoadU32x4(src)
	want := U32x4{0x04030201, 0x08070605, 0x0c0b0a09, 0x100f0e0d}
	if v != want {
		t.Fatalf("LoadU32x4() = %#x, want %#x", v, want)
	}

	dst := make([]byte, 16)
	v.Store(dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("byte %d = %#x, want %#x", i, dst[i], src[i])
		}
	}
}

func TestU32x4_Ops(t *testing.T) {
	a := U32x4{1, 0xffffffff, 0x80000000, 7}
	b := U32x4{2, 1, 0x80000000, 0xf0}

	tests := []struct {
		name string
		got  U32x4
		want U32x4
	}{
		{"add wraps", a.Add(b), U32x4{3, 0, 0, 0xf7}},
		{"xor", a.Xor(b), U32x4{3, 0xfffffffe, 0, 0xf7}},
		{"and", a.And(b), U32x4{0, 1, 0x80000000, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestU32x4_IsZero(t *testing.T) {
	if !SplatU32(0).IsZero() {
		t.Error("SplatU32(0).IsZero() = false")
	}
	for i := 0; i < 4; i++ {
		var v U32x4
		v[i] = 1 << 31
		if v.IsZero() {
			t.Errorf("lane %d set, IsZero() = true", i)
		}
	}
}

func TestU32x4_HorizontalAdd(t *testing.T) {
	v := U32x4{0xffffffff, 2, 3, 4}
	if got := v.HorizontalAdd(); got != 8 {
		t.Errorf("HorizontalAdd() = %d, want 8", got)
	}
}

func TestU32x4_U16RoundTrip(t *testing.T) {
	v := U32x4{0x11112222, 0x33334444, 0x55556666, 0x77778888}
	h := v.U16()
	want := U16x8{0x2222, 0x1111, 0x4444, 0x3333, 0x6666, 0x5555, 0x8888, 0x7777}
	if h != want {
		t.Fatalf("U16() = %#x, want %#x", h, want)
	}
	if back := h.U32(); back != v {
		t.Errorf("U16().U32() = %#x, want %#x", back, v)
	}
}

func TestU32x4_MatchesU16View(t *testing.T) {
	// Loading the same bytes through either view must agree after reinterpretation.
	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i*37 + 5)
	}
	if LoadU32x4(src).U16() != LoadU16x8(src) {
		t.Error("LoadU32x4().U16() != LoadU16x8()")
	}
}
