// Package cidutil builds CIDs from content. The codec packages never hash
// anything; this is where digest computation lives for callers that hold
// the content rather than a pre-computed digest.
package cidutil

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"xdao.co/multiformats/cid"
	"xdao.co/multiformats/multicodec"
	"xdao.co/multiformats/multihash"
)

// Sum hashes data with alg and returns the CIDv1 addressing it under codec.
func Sum(codec multicodec.Codec, alg multihash.Algorithm, data []byte) (cid.Cid, error) {
	digest, err := digestOf(alg, data)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewV1(codec, alg, digest)
}

// SumV0 hashes data with sha2-256 and returns the legacy CIDv0 for it.
func SumV0(data []byte) (cid.Cid, error) {
	sum := sha256.Sum256(data)
	return cid.NewV0(sum[:])
}

// CIDv1RawSHA256 returns the text CIDv1 (raw + sha2-256) for data. This is
// the usual identity for canonical bytes handed to a CAS.
func CIDv1RawSHA256(data []byte) string {
	c, err := Sum(multicodec.Raw, multihash.SHA2_256, data)
	if err != nil {
		// Sum cannot fail for a table algorithm and its own digest length.
		return ""
	}
	return c.String()
}

func digestOf(alg multihash.Algorithm, data []byte) ([]byte, error) {
	switch alg {
	case multihash.SHA2_256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	case multihash.SHA2_512:
		sum := sha512.Sum512(data)
		return sum[:], nil
	case multihash.Blake2b256:
		sum := blake2b.Sum256(data)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("cidutil: no hasher for %s", alg)
	}
}
