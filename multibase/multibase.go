// Package multibase renders byte strings as self-describing text: a single
// discriminator character naming the base, then the payload in that base.
//
// The actual byte-to-text transcoding is delegated: base58btc to
// mr-tron/base58, the base32 pair to multiformats/go-base32 (which decodes
// case-insensitively and carries no padding), and the base64/base16
// variants to the standard library.
package multibase

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	b32 "github.com/multiformats/go-base32"
)

// Base names a supported encoding. Its value is the discriminator
// character itself.
type Base byte

const (
	Base58BTC    Base = 'z'
	Base32       Base = 'b'
	Base32Upper  Base = 'B'
	Base64       Base = 'm'
	Base64URL    Base = 'u'
	Base64URLPad Base = 'U'
	Base16       Base = 'f'
	Base16Upper  Base = 'F'
)

var ErrEmptyInput = errors.New("multibase: empty input")

// go-base32 exports only an uppercase-alphabet encoding; the lowercase
// no-padding variant is assembled here with the library's own
// constructor, the same way go-multibase does.
var rawLowerStdEncoding = b32.NewEncodingCI("abcdefghijklmnopqrstuvwxyz234567").WithPadding(b32.NoPadding)

// UnsupportedPrefixError reports a leading character that names no
// supported base.
type UnsupportedPrefixError struct {
	Prefix byte
}

func (e *UnsupportedPrefixError) Error() string {
	return fmt.Sprintf("multibase: unsupported prefix %q", e.Prefix)
}

func (b Base) String() string {
	switch b {
	case Base58BTC:
		return "base58btc"
	case Base32:
		return "base32"
	case Base32Upper:
		return "base32upper"
	case Base64:
		return "base64"
	case Base64URL:
		return "base64url"
	case Base64URLPad:
		return "base64urlpad"
	case Base16:
		return "base16"
	case Base16Upper:
		return "base16upper"
	default:
		return fmt.Sprintf("multibase(%q)", byte(b))
	}
}

// Valid reports whether b is one of the supported bases.
func (b Base) Valid() bool {
	switch b {
	case Base58BTC, Base32, Base32Upper, Base64, Base64URL, Base64URLPad, Base16, Base16Upper:
		return true
	default:
		return false
	}
}

// Encode renders data under base b, discriminator character included.
func Encode(b Base, data []byte) (string, error) {
	switch b {
	case Base58BTC:
		return string(b) + base58.Encode(data), nil
	case Base32:
		return string(b) + rawLowerStdEncoding.EncodeToString(data), nil
	case Base32Upper:
		return string(b) + b32.RawStdEncoding.EncodeToString(data), nil
	case Base64:
		return string(b) + base64.RawStdEncoding.EncodeToString(data), nil
	case Base64URL:
		return string(b) + base64.RawURLEncoding.EncodeToString(data), nil
	case Base64URLPad:
		return string(b) + base64.URLEncoding.EncodeToString(data), nil
	case Base16:
		return string(b) + hex.EncodeToString(data), nil
	case Base16Upper:
		return string(b) + strings.ToUpper(hex.EncodeToString(data)), nil
	default:
		return "", &UnsupportedPrefixError{Prefix: byte(b)}
	}
}

// Decode reads the discriminator character of s and transcodes the
// remainder, returning the detected base alongside the payload. Delegate
// failures come back wrapped, with the base named.
func Decode(s string) (Base, []byte, error) {
	if len(s) == 0 {
		return 0, nil, ErrEmptyInput
	}
	b, rest := Base(s[0]), s[1:]

	var (
		data []byte
		err  error
	)
	switch b {
	case Base58BTC:
		data, err = base58.Decode(rest)
	case Base32:
		data, err = rawLowerStdEncoding.DecodeString(rest)
	case Base32Upper:
		data, err = b32.RawStdEncoding.DecodeString(rest)
	case Base64:
		data, err = base64.RawStdEncoding.DecodeString(rest)
	case Base64URL:
		data, err = base64.RawURLEncoding.DecodeString(rest)
	case Base64URLPad:
		data, err = base64.URLEncoding.DecodeString(rest)
	case Base16, Base16Upper:
		data, err = hex.DecodeString(rest)
	default:
		return 0, nil, &UnsupportedPrefixError{Prefix: s[0]}
	}
	if err != nil {
		return 0, nil, fmt.Errorf("multibase: %s decode: %w", b, err)
	}
	return b, data, nil
}
