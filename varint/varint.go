// Package varint implements the unsigned LEB128 variable-length integer
// encoding used inside CID and multihash headers: 7 payload bits per byte,
// least-significant group first, high bit set on every byte except the last.
package varint

import "errors"

// MaxLen is the longest varint this package will decode. Ten bytes carry
// 70 payload bits, enough for any 64-bit value.
const MaxLen = 10

var (
	ErrTruncated = errors.New("varint: input ends with continuation bit set")
	ErrOverflow  = errors.New("varint: value exceeds 64 bits")
)

// Encode returns the minimal varint encoding of n.
func Encode(n uint64) []byte {
	return Append(nil, n)
}

// Append appends the minimal varint encoding of n to dst.
func Append(dst []byte, n uint64) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n)|0x80)
		n >>= 7
	}
	return append(dst, byte(n))
}

// Decode reads one varint from the front of buf. It returns the value and
// the number of bytes consumed. It fails with ErrTruncated if buf ends
// before a byte with a clear continuation bit, and with ErrOverflow if the
// encoding runs past MaxLen bytes or carries bits above the 64th.
func Decode(buf []byte) (uint64, int, error) {
	var v uint64
	for i, b := range buf {
		if i == MaxLen-1 && b > 1 {
			// The tenth byte may only contribute the 64th bit; anything
			// larger (or a set continuation bit) no longer fits uint64.
			return 0, 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrTruncated
}
