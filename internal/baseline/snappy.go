package baseline

import (
	"fmt"

	"github.com/golang/snappy"
)

// SnappyCodec implements snappy block compression.
type SnappyCodec struct{}

func (c *SnappyCodec) Name() string { return "snappy" }

func (c *SnappyCodec) Compress(src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func (c *SnappyCodec) Decompress(src []byte, decompressedSize int) ([]byte, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress: %w", err)
	}
	if n != decompressedSize {
		return nil, fmt.Errorf("snappy decompress: expected %d bytes, header says %d", decompressedSize, n)
	}
	dst, err := snappy.Decode(make([]byte, n), src)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress: %w", err)
	}
	return dst, nil
}
