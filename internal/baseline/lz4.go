package baseline

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// hcLevels maps a 1..9 search depth to lz4's compression levels.
var hcLevels = [...]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// LZ4Codec implements LZ4 block compression. Level 0 uses the fast block
// compressor, 1..9 the high-compression one at that search depth.
type LZ4Codec struct {
	Level int
}

// NewLZ4 returns an LZ4 codec, clamping level to 0..9.
func NewLZ4(level int) *LZ4Codec {
	return &LZ4Codec{Level: min(max(level, 0), len(hcLevels))}
}

func (c *LZ4Codec) Name() string {
	if c.Level == 0 {
		return "lz4"
	}
	return fmt.Sprintf("lz4hc-%d", c.Level)
}

// Compress stores incompressible input as-is; Decompress tells the two apart by size,
// since a real lz4 block is always shorter than its input.
func (c *LZ4Codec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	var n int
	var err error
	if c.Level == 0 {
		n, err = lz4.CompressBlock(src, dst, nil)
	} else {
		n, err = lz4.CompressBlockHC(src, dst, hcLevels[c.Level-1], nil, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("%s compress: %w", c.Name(), err)
	}

	if n == 0 || n >= len(src) {
		return append([]byte(nil), src...), nil
	}
	return dst[:n], nil
}

func (c *LZ4Codec) Decompress(src []byte, decompressedSize int) ([]byte, error) {
	if decompressedSize == 0 {
		return []byte{}, nil
	}
	if len(src) == decompressedSize {
		return append([]byte(nil), src...), nil
	}

	dst := make([]byte, decompressedSize)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", c.Name(), err)
	}
	if n != decompressedSize {
		return nil, fmt.Errorf("%s decompress: expected %d bytes, got %d", c.Name(), decompressedSize, n)
	}
	return dst, nil
}
