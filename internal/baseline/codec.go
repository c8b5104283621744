// Package baseline wraps well-known block codecs so lz77 output sizes can be
// compared against them on the same input.
package baseline

import (
	"bytes"
	"fmt"
)

// Codec compresses and decompresses whole in-memory blocks.
type Codec interface {
	Name() string
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, decompressedSize int) ([]byte, error)
}

// Result is the encoded size one codec produced for an input.
type Result struct {
	Codec string
	Size  int
}

// Codecs returns the reference codecs in a fixed order: fast lz4, lz4 HC at
// hcLevel (omitted when 0) and snappy.
func Codecs(hcLevel int) []Codec {
	codecs := []Codec{NewLZ4(0)}
	if hcLevel > 0 {
		codecs = append(codecs, NewLZ4(hcLevel))
	}
	return append(codecs, &SnappyCodec{})
}

// Measure compresses src with every codec, checks each round trip and reports the sizes.
func Measure(src []byte, codecs []Codec) ([]Result, error) {
	results := make([]Result, 0, len(codecs))
	for _, c := range codecs {
		enc, err := c.Compress(src)
		if err != nil {
			return nil, err
		}
		dec, err := c.Decompress(enc, len(src))
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(dec, src) {
			return nil, fmt.Errorf("%s: round trip mismatch", c.Name())
		}
		results = append(results, Result{Codec: c.Name(), Size: len(enc)})
	}

	return results, nil
}
