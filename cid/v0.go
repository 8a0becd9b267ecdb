package cid

import (
	"fmt"

	"github.com/mr-tron/base58"

	"xdao.co/multiformats/multibase"
	"xdao.co/multiformats/multicodec"
	"xdao.co/multiformats/multihash"
)

// A v0 CID is exactly a sha2-256 multihash: the algorithm code, the digest
// length and 32 digest bytes. Both header values fit a single byte, so the
// header is written literally rather than through the varint codec.
const (
	v0HeaderAlg  = 0x12 // sha2-256
	v0HeaderSize = 0x20 // 32-byte digest
	v0Length     = 34
)

// encodeV0 emits the fixed 34-byte form. A digest of any other length is a
// violated constructor precondition, not a value error.
func encodeV0(digest string) []byte {
	if len(digest) != v0HeaderSize {
		panic(fmt.Sprintf("cid: v0 digest must be 32 bytes, have %d", len(digest)))
	}
	buf := make([]byte, 0, v0Length)
	buf = append(buf, v0HeaderAlg, v0HeaderSize)
	return append(buf, digest...)
}

func decodeV0(data []byte) (Cid, error) {
	if len(data) < 2 {
		return Undef, &InsufficientBytesError{Needed: 2, Available: len(data)}
	}
	if data[0] != v0HeaderAlg || data[1] != v0HeaderSize {
		return Undef, fmt.Errorf("cid: v0 multihash header must be 0x12 0x20, got 0x%02x 0x%02x",
			data[0], data[1])
	}
	digest := data[2:]
	if len(digest) < v0HeaderSize {
		return Undef, &InsufficientBytesError{Needed: v0HeaderSize, Available: len(digest)}
	}
	if len(digest) > v0HeaderSize {
		return Undef, fmt.Errorf("cid: %d trailing bytes after v0 multihash", len(digest)-v0HeaderSize)
	}
	return Cid{
		version: 0,
		codec:   multicodec.DagPB,
		hash:    multihash.SHA2_256,
		digest:  string(digest),
		base:    multibase.Base58BTC,
	}, nil
}

func encodeV0Text(digest string) string {
	return base58.Encode(encodeV0(digest))
}

func decodeV0Text(s string) (Cid, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Undef, fmt.Errorf("cid: v0 base58 decode: %w", err)
	}
	if len(data) != v0Length {
		return Undef, fmt.Errorf("cid: v0 text must decode to %d bytes, got %d", v0Length, len(data))
	}
	return decodeV0(data)
}
