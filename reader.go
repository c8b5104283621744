package lz77

import (
	"io"
	"math"
)

// cursor reads from an immutable byte slice.
type cursor struct {
	data []byte // The encoded stream.
	pos  int    // Offset of the next unread byte.
}

// remaining reports how many bytes are left unread.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// ReadByte reads a byte from the slice.
func (c *cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}

	b := c.data[c.pos]
	c.pos++

	return b, nil
}

// next returns the following n bytes without copying and advances past them.
func (c *cursor) next(n int) ([]byte, bool) {
	if n < 0 || n > c.remaining() {
		return nil, false
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, true
}

// readAllLimited reads r to EOF, failing once more than limit bytes arrive (limit 0 = no cap).
func readAllLimited(r io.Reader, limit int) ([]byte, error) {
	if limit <= 0 || limit == math.MaxInt {
		return io.ReadAll(r)
	}

	// One byte past the cap is enough to tell an oversized stream apart.
	src, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(src) > limit {
		return nil, ErrInputTooLarge
	}

	return src, nil
}
