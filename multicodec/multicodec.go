// Package multicodec maps the symbolic content codecs a CID can address
// onto their standardized numeric codes from the multicodec registry.
package multicodec

import "fmt"

// Codec identifies the data format addressed by a CID. It is the numeric
// registry code, so Codec values marshal directly into CID headers.
type Codec uint64

const (
	Raw     Codec = 0x55
	DagPB   Codec = 0x70
	DagCBOR Codec = 0x71
	DagJSON Codec = 0x129
)

// UnknownCodecError reports a numeric code outside the supported table.
type UnknownCodecError struct {
	Code uint64
}

func (e *UnknownCodecError) Error() string {
	return fmt.Sprintf("multicodec: unknown codec 0x%x", e.Code)
}

// FromCode maps a registry code to its Codec. The table is closed: only
// raw, dag-pb, dag-cbor and dag-json are supported.
func FromCode(code uint64) (Codec, error) {
	switch c := Codec(code); c {
	case Raw, DagPB, DagCBOR, DagJSON:
		return c, nil
	default:
		return 0, &UnknownCodecError{Code: code}
	}
}

// Code returns the numeric registry code. Total over all Codec constants.
func (c Codec) Code() uint64 { return uint64(c) }

func (c Codec) String() string {
	switch c {
	case Raw:
		return "raw"
	case DagPB:
		return "dag-pb"
	case DagCBOR:
		return "dag-cbor"
	case DagJSON:
		return "dag-json"
	default:
		return fmt.Sprintf("multicodec(0x%x)", uint64(c))
	}
}
