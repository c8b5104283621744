package lz77

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a BLAKE3-256 content hash.
type Digest [32]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Checksum returns the BLAKE3-256 digest of data.
func Checksum(data []byte) Digest {
	return blake3.Sum256(data)
}

// Verify decompresses encoded and checks that it hashes the same as original.
// The decoded bytes are returned even on a checksum mismatch so callers can inspect them.
func Verify(original, encoded []byte, opts *Options) ([]byte, error) {
	dec, err := Decompress(encoded, opts)
	if err != nil {
		return nil, err
	}

	want, got := Checksum(original), Checksum(dec)
	if want != got {
		return dec, fmt.Errorf("%w: got=%s expected=%s", ErrChecksumMismatch, got, want)
	}

	return dec, nil
}
