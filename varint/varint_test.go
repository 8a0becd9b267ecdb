package varint

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode_KnownVectors(t *testing.T) {
	cases := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{297, []byte{0xa9, 0x02}}, // dag-json's code 0x0129
		{300, []byte{0xac, 0x02}},
		{0xb220, []byte{0xa0, 0xe4, 0x02}}, // blake2b-256's code
		{1 << 63, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
	}
	for _, c := range cases {
		if got := Encode(c.n); !bytes.Equal(got, c.want) {
			t.Fatalf("Encode(%d) = %x, want %x", c.n, got, c.want)
		}
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 0x55, 0x70, 0x71, 0x129, 0xb220, 1<<32 - 1, 1 << 63, ^uint64(0)} {
		enc := Encode(n)
		got, read, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%x) failed: %v", enc, err)
		}
		if got != n || read != len(enc) {
			t.Fatalf("Decode(%x) = (%d, %d), want (%d, %d)", enc, got, read, n, len(enc))
		}
	}
}

func TestDecode_StopsAtFirstClearContinuationBit(t *testing.T) {
	buf := []byte{0xa9, 0x02, 0xff, 0xff}
	v, read, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v != 297 || read != 2 {
		t.Fatalf("Decode = (%d, %d), want (297, 2)", v, read)
	}
}

func TestDecode_Truncated(t *testing.T) {
	for _, buf := range [][]byte{nil, {0x80}, {0xff, 0xff}, {0xa9}} {
		if _, _, err := Decode(buf); !errors.Is(err, ErrTruncated) {
			t.Fatalf("Decode(%x): expected ErrTruncated, got %v", buf, err)
		}
	}
}

func TestDecode_Overflow(t *testing.T) {
	// Eleven continuation bytes: bounded consumption, distinct failure.
	long := bytes.Repeat([]byte{0x80}, 11)
	if _, _, err := Decode(long); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	// Tenth byte carrying more than the 64th bit.
	over := append(bytes.Repeat([]byte{0xff}, 9), 0x02)
	if _, _, err := Decode(over); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	// Maximum uint64 still decodes.
	max := append(bytes.Repeat([]byte{0xff}, 9), 0x01)
	v, _, err := Decode(max)
	if err != nil {
		t.Fatalf("Decode(max): %v", err)
	}
	if v != ^uint64(0) {
		t.Fatalf("Decode(max) = %d, want %d", v, ^uint64(0))
	}
}
