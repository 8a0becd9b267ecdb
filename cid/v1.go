package cid

import (
	"fmt"

	"xdao.co/multiformats/multibase"
	"xdao.co/multiformats/multicodec"
	"xdao.co/multiformats/multihash"
	"xdao.co/multiformats/varint"
)

// v1Version is the leading byte of every v1 CID.
const v1Version = 0x01

// encodeV1 emits version byte, varint codec code, then the multihash:
// varint algorithm code, varint digest length, digest bytes.
func encodeV1(c Cid) ([]byte, error) {
	if err := multihash.Validate(c.hash, []byte(c.digest)); err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 4+len(c.digest))
	buf = append(buf, v1Version)
	buf = varint.Append(buf, c.codec.Code())
	buf = varint.Append(buf, c.hash.Code())
	buf = varint.Append(buf, uint64(len(c.digest)))
	return append(buf, c.digest...), nil
}

func decodeV1(data []byte) (Cid, error) {
	if len(data) == 0 {
		return Undef, ErrEmptyInput
	}
	if data[0] != v1Version {
		return Undef, &UnsupportedVersionError{Version: data[0]}
	}
	off := 1

	codecCode, n, err := varint.Decode(data[off:])
	if err != nil {
		return Undef, fmt.Errorf("cid: read codec: %w", err)
	}
	off += n
	codec, err := multicodec.FromCode(codecCode)
	if err != nil {
		return Undef, err
	}

	algCode, n, err := varint.Decode(data[off:])
	if err != nil {
		return Undef, fmt.Errorf("cid: read hash algorithm: %w", err)
	}
	off += n
	alg, err := multihash.FromCode(algCode)
	if err != nil {
		return Undef, err
	}

	size, n, err := varint.Decode(data[off:])
	if err != nil {
		return Undef, fmt.Errorf("cid: read digest length: %w", err)
	}
	off += n
	if size != uint64(alg.Size()) {
		return Undef, &multihash.LengthMismatchError{
			Algorithm: alg,
			Expected:  alg.Size(),
			Actual:    int(size),
		}
	}

	digest := data[off:]
	if len(digest) < alg.Size() {
		return Undef, &InsufficientBytesError{Needed: alg.Size(), Available: len(digest)}
	}
	if len(digest) > alg.Size() {
		return Undef, fmt.Errorf("cid: %d trailing bytes after digest", len(digest)-alg.Size())
	}
	return Cid{
		version: 1,
		codec:   codec,
		hash:    alg,
		digest:  string(digest),
		base:    multibase.Base32,
	}, nil
}

// decodeV1Text strips the multibase discriminator, parses the payload as a
// binary v1 CID and records the detected base on the result.
func decodeV1Text(s string) (Cid, error) {
	base, data, err := multibase.Decode(s)
	if err != nil {
		return Undef, err
	}
	c, err := decodeV1(data)
	if err != nil {
		return Undef, err
	}
	c.base = base
	return c, nil
}
