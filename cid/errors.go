package cid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput reports a decode attempt on zero bytes or empty text.
	ErrEmptyInput = errors.New("cid: empty input")

	// ErrInvalidEncoding reports a multibase that a CID's version cannot
	// carry; v0 text is bare base58btc and nothing else.
	ErrInvalidEncoding = errors.New("cid: invalid base encoding for version")
)

// UnsupportedVersionError reports a leading byte that names no known
// CID version.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("cid: unsupported version %d", e.Version)
}

// InsufficientBytesError reports an input that ends before the bytes its
// own header promised.
type InsufficientBytesError struct {
	Needed    int
	Available int
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("cid: need %d bytes, have %d", e.Needed, e.Available)
}
