// Package multihash maps the supported hash algorithms onto their
// multihash registry codes and fixed digest sizes, and enforces the
// digest-length invariant every CID carrying a digest must satisfy.
//
// Digest computation itself lives with callers (see cidutil for the
// usual constructors); this package only knows codes and lengths.
package multihash

import "fmt"

// Algorithm identifies a hash function by its multihash registry code.
type Algorithm uint64

const (
	SHA2_256   Algorithm = 0x12
	SHA2_512   Algorithm = 0x13
	Blake2b256 Algorithm = 0xb220
)

// UnknownAlgorithmError reports a numeric code outside the supported table.
type UnknownAlgorithmError struct {
	Code uint64
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("multihash: unknown hash algorithm 0x%x", e.Code)
}

// LengthMismatchError reports a digest whose length disagrees with the
// fixed size of its declared algorithm.
type LengthMismatchError struct {
	Algorithm Algorithm
	Expected  int
	Actual    int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("multihash: %s digest must be %d bytes, got %d",
		e.Algorithm, e.Expected, e.Actual)
}

// FromCode maps a registry code to its Algorithm. The table is closed:
// only sha2-256, sha2-512 and blake2b-256 are supported.
func FromCode(code uint64) (Algorithm, error) {
	switch a := Algorithm(code); a {
	case SHA2_256, SHA2_512, Blake2b256:
		return a, nil
	default:
		return 0, &UnknownAlgorithmError{Code: code}
	}
}

// Code returns the numeric registry code. Total over all Algorithm constants.
func (a Algorithm) Code() uint64 { return uint64(a) }

// Size returns the fixed digest length in bytes, or 0 for an algorithm
// outside the table.
func (a Algorithm) Size() int {
	switch a {
	case SHA2_256, Blake2b256:
		return 32
	case SHA2_512:
		return 64
	default:
		return 0
	}
}

func (a Algorithm) String() string {
	switch a {
	case SHA2_256:
		return "sha2-256"
	case SHA2_512:
		return "sha2-512"
	case Blake2b256:
		return "blake2b-256"
	default:
		return fmt.Sprintf("multihash(0x%x)", uint64(a))
	}
}

// Validate checks digest against the fixed size of a, failing with a
// *LengthMismatchError on disagreement.
func Validate(a Algorithm, digest []byte) error {
	if len(digest) != a.Size() {
		return &LengthMismatchError{Algorithm: a, Expected: a.Size(), Actual: len(digest)}
	}
	return nil
}
