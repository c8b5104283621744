package lz77

import (
	"fmt"
	"io"
)

// Decompress decodes a full chunk stream produced by Compress.
// Options nil means DefaultOptions (no size limits).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	c := &cursor{data: src}
	out := make([]byte, 0, 2*len(src))

	grow := func(n int) error {
		if opts.MaxOutputSize > 0 && len(out)+n > opts.MaxOutputSize {
			return fmt.Errorf("%w: %d > %d", ErrOutputTooLarge, len(out)+n, opts.MaxOutputSize)
		}

		return nil
	}

	for c.remaining() > 0 {
		start := c.pos
		h, err := readHeader(c)
		if err != nil {
			return nil, err
		}

		if !h.backRef {
			lit, err := readLiteral(c, h)
			if err != nil {
				return nil, err
			}
			if err := grow(len(lit)); err != nil {
				return nil, err
			}
			out = append(out, lit...)

			continue
		}

		if h.distance > len(out) {
			return nil, fmt.Errorf("%w: distance %d with %d bytes produced, chunk at offset %d",
				ErrLookBehind, h.distance, len(out), start)
		}
		if err := grow(h.length); err != nil {
			return nil, err
		}

		// Copy forward one byte at a time: when distance < length the source
		// range overlaps bytes written by this same copy.
		base := len(out) - h.distance
		for k := 0; k < h.length; k++ {
			out = append(out, out[base+k])
		}
	}

	return out, nil
}

// DecompressFromReader reads the full stream from r then calls Decompress.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	src, err := readAllLimited(r, opts.MaxInputSize)
	if err != nil {
		return nil, err
	}

	return Decompress(src, opts)
}
