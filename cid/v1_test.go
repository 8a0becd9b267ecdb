package cid

import (
	"bytes"
	"errors"
	"testing"

	"xdao.co/multiformats/multicodec"
	"xdao.co/multiformats/multihash"
	"xdao.co/multiformats/varint"
)

func TestDecodeV1_DeclaredLengthMismatch(t *testing.T) {
	// Header claims sha2-256 (0x12) with a declared length of 16 (0x10);
	// the mismatch is caught before any digest byte is read.
	_, err := Cast([]byte{0x01, 0x55, 0x12, 0x10})
	var lm *multihash.LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("expected LengthMismatchError, got %v", err)
	}
	if lm.Expected != 32 || lm.Actual != 16 {
		t.Fatalf("LengthMismatchError = %+v, want expected 32 actual 16", lm)
	}
}

func TestDecodeV1_InsufficientDigest(t *testing.T) {
	// Header promises a 32-byte digest; only 4 bytes follow.
	_, err := Cast([]byte{0x01, 0x55, 0x12, 0x20, 0x01, 0x02, 0x03, 0x04})
	var ib *InsufficientBytesError
	if !errors.As(err, &ib) {
		t.Fatalf("expected InsufficientBytesError, got %v", err)
	}
	if ib.Needed != 32 || ib.Available != 4 {
		t.Fatalf("InsufficientBytesError = %+v, want needed 32 available 4", ib)
	}
}

func TestDecodeV1_TruncatedVarint(t *testing.T) {
	cases := [][]byte{
		{0x01},             // no codec at all
		{0x01, 0xa9},       // codec varint ends mid-value
		{0x01, 0x55, 0xa0}, // hash algorithm varint ends mid-value
		{0x01, 0x55, 0x12}, // no digest length
	}
	for _, data := range cases {
		if _, err := Cast(data); !errors.Is(err, varint.ErrTruncated) {
			t.Fatalf("Cast(%x): expected ErrTruncated, got %v", data, err)
		}
	}
}

func TestDecodeV1_UnknownCodec(t *testing.T) {
	_, err := Cast([]byte{0x01, 0x56, 0x12, 0x20})
	var uc *multicodec.UnknownCodecError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnknownCodecError, got %v", err)
	}
	if uc.Code != 0x56 {
		t.Fatalf("Code = 0x%x, want 0x56", uc.Code)
	}
}

func TestDecodeV1_UnknownHashAlgorithm(t *testing.T) {
	_, err := Cast([]byte{0x01, 0x55, 0x11, 0x20})
	var ua *multihash.UnknownAlgorithmError
	if !errors.As(err, &ua) {
		t.Fatalf("expected UnknownAlgorithmError, got %v", err)
	}
	if ua.Code != 0x11 {
		t.Fatalf("Code = 0x%x, want 0x11", ua.Code)
	}
}

func TestDecodeV1_TrailingBytes(t *testing.T) {
	data := append([]byte{0x01, 0x55, 0x12, 0x20}, make([]byte, 33)...)
	if _, err := Cast(data); err == nil {
		t.Fatalf("expected trailing-bytes failure")
	}
}

func TestDecodeV1_NonMinimalVarintAccepted(t *testing.T) {
	// 0x70 padded to two bytes (f0 00). Accepted on decode; re-encoding
	// always emits the minimal form, so the bytes differ.
	data := append([]byte{0x01, 0xf0, 0x00, 0x12, 0x20}, emptyDigest(t)...)
	c, err := Cast(data)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if c.Codec() != multicodec.DagPB {
		t.Fatalf("Codec = %v, want dag-pb", c.Codec())
	}
	b, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if bytes.Equal(b, data) {
		t.Fatalf("re-encode must be minimal")
	}
	if !bytes.Equal(b, append([]byte{0x01, 0x70, 0x12, 0x20}, emptyDigest(t)...)) {
		t.Fatalf("re-encode = %x", b)
	}
}

func TestDecodeV1_Blake2bAndSha512Headers(t *testing.T) {
	// blake2b-256's code 0xb220 varint-encodes as a0 e4 02.
	data := append([]byte{0x01, 0x55, 0xa0, 0xe4, 0x02, 0x20}, make([]byte, 32)...)
	c, err := Cast(data)
	if err != nil {
		t.Fatalf("Cast(blake2b) failed: %v", err)
	}
	if c.Hash() != multihash.Blake2b256 {
		t.Fatalf("Hash = %v, want blake2b-256", c.Hash())
	}

	data = append([]byte{0x01, 0x71, 0x13, 0x40}, make([]byte, 64)...)
	c, err = Cast(data)
	if err != nil {
		t.Fatalf("Cast(sha2-512) failed: %v", err)
	}
	if c.Hash() != multihash.SHA2_512 || c.Codec() != multicodec.DagCBOR {
		t.Fatalf("decoded %v/%v", c.Codec(), c.Hash())
	}
}
