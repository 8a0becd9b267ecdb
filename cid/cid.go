package cid

import (
	"xdao.co/multiformats/multibase"
	"xdao.co/multiformats/multicodec"
	"xdao.co/multiformats/multihash"
)

// Cid is an immutable content identifier: a version tag, the codec of the
// addressed data, and a digest of known algorithm and length. A v1 value
// also remembers which multibase produced (or should produce) its text
// form; a v0 value is always bare base58btc.
//
// The digest is held as a string so that Cid is comparable and usable as a
// map key. Note that == also compares the remembered multibase; use Equals
// for identity regardless of text encoding.
type Cid struct {
	version uint8
	codec   multicodec.Codec
	hash    multihash.Algorithm
	digest  string
	base    multibase.Base
}

// Undef is the zero, undefined Cid.
var Undef = Cid{}

// NewV0 builds a v0 CID from a 32-byte sha2-256 digest. The digest is
// copied. Codec and algorithm are fixed by the format: dag-pb, sha2-256.
func NewV0(digest []byte) (Cid, error) {
	if err := multihash.Validate(multihash.SHA2_256, digest); err != nil {
		return Undef, err
	}
	return Cid{
		version: 0,
		codec:   multicodec.DagPB,
		hash:    multihash.SHA2_256,
		digest:  string(digest),
		base:    multibase.Base58BTC,
	}, nil
}

// NewV1 builds a v1 CID. The digest is copied and must match the fixed
// size of alg; codec and alg must come from the supported tables. Text
// rendering defaults to base32.
func NewV1(codec multicodec.Codec, alg multihash.Algorithm, digest []byte) (Cid, error) {
	if _, err := multicodec.FromCode(codec.Code()); err != nil {
		return Undef, err
	}
	if _, err := multihash.FromCode(alg.Code()); err != nil {
		return Undef, err
	}
	if err := multihash.Validate(alg, digest); err != nil {
		return Undef, err
	}
	return Cid{
		version: 1,
		codec:   codec,
		hash:    alg,
		digest:  string(digest),
		base:    multibase.Base32,
	}, nil
}

// Cast parses the binary form of a CID. The leading byte picks the
// version: 0x12 is the sha2-256 multihash header that opens every v0 CID,
// 0x01 opens a v1 CID, anything else is unsupported. Trailing bytes after
// a well-formed CID are rejected.
func Cast(data []byte) (Cid, error) {
	if len(data) == 0 {
		return Undef, ErrEmptyInput
	}
	switch data[0] {
	case v0HeaderAlg:
		return decodeV0(data)
	case v1Version:
		return decodeV1(data)
	default:
		return Undef, &UnsupportedVersionError{Version: data[0]}
	}
}

// Decode parses the text form of a CID. A leading 'Q' routes the whole
// string to the v0 base58 decoder — the conventional first character of a
// base58-encoded 34-byte sha2-256 multihash. This is a heuristic, not a
// structural guarantee: any other leading character is treated as a
// multibase discriminator and the string is parsed as v1.
func Decode(s string) (Cid, error) {
	if len(s) == 0 {
		return Undef, ErrEmptyInput
	}
	if s[0] == 'Q' {
		return decodeV0Text(s)
	}
	return decodeV1Text(s)
}

// Defined reports whether c holds a CID, as opposed to the zero Undef.
func (c Cid) Defined() bool { return c.digest != "" }

// Version returns 0 or 1.
func (c Cid) Version() uint64 { return uint64(c.version) }

// Codec returns the codec of the addressed data. For v0 this is always
// dag-pb, implied by the format rather than stored on the wire.
func (c Cid) Codec() multicodec.Codec { return c.codec }

// Hash returns the digest's algorithm. For v0 this is always sha2-256.
func (c Cid) Hash() multihash.Algorithm { return c.hash }

// Digest returns a copy of the digest bytes.
func (c Cid) Digest() []byte { return []byte(c.digest) }

// Base returns the multibase used for the text form. For a decoded v1
// value this is the base the input text arrived in.
func (c Cid) Base() multibase.Base { return c.base }

// Equals reports whether c and o identify the same content: same version,
// codec, algorithm and digest. The remembered text base is ignored.
func (c Cid) Equals(o Cid) bool {
	return c.version == o.version &&
		c.codec == o.codec &&
		c.hash == o.hash &&
		c.digest == o.digest
}

// Bytes returns the binary form. For a v1 value whose digest length
// disagrees with its declared algorithm this fails with a
// *multihash.LengthMismatchError; such values cannot be built through the
// exported constructors.
func (c Cid) Bytes() ([]byte, error) {
	if !c.Defined() {
		return nil, ErrEmptyInput
	}
	if c.version == 0 {
		return encodeV0(c.digest), nil
	}
	return encodeV1(c)
}

// Text returns the text form: bare base58btc for v0, the remembered
// multibase (base32 unless chosen otherwise) for v1.
func (c Cid) Text() (string, error) {
	base := c.base
	if base == 0 {
		base = multibase.Base32
	}
	return c.TextOfBase(base)
}

// TextOfBase renders the text form under an explicit multibase. A v0
// value accepts only Base58BTC, since its text form carries no
// discriminator character.
func (c Cid) TextOfBase(base multibase.Base) (string, error) {
	if !c.Defined() {
		return "", ErrEmptyInput
	}
	if c.version == 0 {
		if base != multibase.Base58BTC {
			return "", ErrInvalidEncoding
		}
		return encodeV0Text(c.digest), nil
	}
	data, err := encodeV1(c)
	if err != nil {
		return "", err
	}
	return multibase.Encode(base, data)
}

// WithBase returns a copy of c that renders its text form under base.
func (c Cid) WithBase(base multibase.Base) (Cid, error) {
	if c.version == 0 {
		if base != multibase.Base58BTC {
			return Undef, ErrInvalidEncoding
		}
		return c, nil
	}
	if !base.Valid() {
		return Undef, &multibase.UnsupportedPrefixError{Prefix: byte(base)}
	}
	c.base = base
	return c, nil
}

// ToV1 returns the standardized lossless upgrade of a v0 value:
// {dag-pb, sha2-256, same digest} as a v1 CID. v1 values come back
// unchanged. No downgrade exists; most v1 values have no v0 shape.
func (c Cid) ToV1() Cid {
	if c.version == 1 {
		return c
	}
	return Cid{
		version: 1,
		codec:   multicodec.DagPB,
		hash:    multihash.SHA2_256,
		digest:  c.digest,
		base:    multibase.Base32,
	}
}

// String implements fmt.Stringer over Text. Encoding failure from an
// inconsistent hand-built value renders as a placeholder.
func (c Cid) String() string {
	s, err := c.Text()
	if err != nil {
		return "<invalid cid>"
	}
	return s
}
