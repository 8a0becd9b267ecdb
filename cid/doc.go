// Package cid encodes and decodes Content Identifiers, the
// self-describing names content-addressed systems give a piece of data:
// a digest of the content plus the codec it should be read as, the hash
// algorithm behind the digest, and (in text) the base it is rendered in.
//
// Two wire formats exist. The legacy v0 form is a bare sha2-256
// multihash, 34 bytes, rendered as base58btc text beginning "Qm". The
// extensible v1 form is a version byte followed by varint codec and
// multihash fields, rendered under any supported multibase. Cast and
// Decode detect the version from the first byte or character; ToV1 is
// the canonical upgrade from the legacy form.
//
// Decoding never panics on malformed input; every failure is a typed
// error carrying the offending code, length or byte count.
package cid
