package lz77

import (
	"encoding/binary"
	"fmt"
)

// Chunk is one element of an encoded stream: either a Literal or a BackRef.
type Chunk interface {
	isChunk()
}

// Literal is a run of bytes copied verbatim to the output.
type Literal []byte

// BackRef copies Length bytes starting Distance bytes before the current output position.
type BackRef struct {
	Distance int
	Length   int
}

func (Literal) isChunk() {}
func (BackRef) isChunk() {}

// header is a decoded chunk header. For literals the payload follows it in the stream.
type header struct {
	backRef  bool
	length   int
	distance int
}

// Encode returns the minimal-form encoding of c. It does not retain or modify c.
func Encode(c Chunk) ([]byte, error) {
	return AppendChunk(nil, c)
}

// AppendChunk appends the encoding of c to dst.
// On error dst is returned unchanged alongside an error wrapping ErrEncodingRange.
func AppendChunk(dst []byte, c Chunk) ([]byte, error) {
	switch c := c.(type) {
	case Literal:
		if len(c) > MaxLiteral {
			return dst, fmt.Errorf("%w: literal length %d > %d", ErrEncodingRange, len(c), MaxLiteral)
		}
		dst = appendLength(dst, 0, len(c))

		return append(dst, c...), nil

	case BackRef:
		if c.Length < 0 || c.Length > maxField {
			return dst, fmt.Errorf("%w: back-reference length %d", ErrEncodingRange, c.Length)
		}
		if c.Distance < 1 || c.Distance > MaxDistance {
			return dst, fmt.Errorf("%w: back-reference distance %d", ErrEncodingRange, c.Distance)
		}
		dst = appendLength(dst, tagBackRef, c.Length)
		if c.Distance <= NearMax {
			return append(dst, byte(c.Distance)), nil
		}

		return append(dst, distFar|byte(c.Distance>>8), byte(c.Distance)), nil

	default:
		return dst, fmt.Errorf("%w: unsupported chunk type %T", ErrEncodingRange, c)
	}
}

// appendLength writes the tag byte (kind in bit 7) and length in short or long form.
func appendLength(dst []byte, kind byte, n int) []byte {
	if n <= ShortMax {
		return append(dst, kind|byte(n))
	}

	return binary.BigEndian.AppendUint16(append(dst, kind|tagLong), uint16(n)) // #nosec G115 -- n <= maxField checked by caller
}

// readHeader decodes the chunk header at the cursor and advances past it.
// Literal payload bytes are left for the caller.
func readHeader(c *cursor) (header, error) {
	var h header
	start := c.pos

	truncated := func() (header, error) {
		return header{}, fmt.Errorf("%w: chunk at offset %d", ErrTruncatedHeader, start)
	}

	tag, err := c.ReadByte()
	if err != nil {
		return truncated()
	}

	h.backRef = tag&tagBackRef != 0
	if tag&tagLong != 0 {
		// Long form: the tag is a fixed sentinel, length is in the next two bytes.
		if tag&shortMask != 0 {
			return header{}, fmt.Errorf("%w: tag 0x%02x at offset %d", ErrBadSentinel, tag, start)
		}
		b, ok := c.next(2)
		if !ok {
			return truncated()
		}
		h.length = int(binary.BigEndian.Uint16(b))
	} else {
		h.length = int(tag & shortMask)
	}

	if !h.backRef {
		return h, nil
	}

	d, err := c.ReadByte()
	if err != nil {
		return truncated()
	}
	if d&distFar != 0 {
		lo, err := c.ReadByte()
		if err != nil {
			return truncated()
		}
		h.distance = int(d&distHighBit)<<8 | int(lo)
	} else {
		h.distance = int(d)
	}

	if h.distance == 0 {
		return header{}, fmt.Errorf("%w: chunk at offset %d", ErrZeroDistance, start)
	}

	return h, nil
}

// readLiteral returns the payload of a literal header, aliasing the cursor's data.
func readLiteral(c *cursor, h header) ([]byte, error) {
	start := c.pos
	b, ok := c.next(h.length)
	if !ok {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncatedLiteral, h.length, start, c.remaining())
	}

	return b, nil
}

// readChunk decodes one full chunk at the cursor.
func readChunk(c *cursor) (Chunk, error) {
	h, err := readHeader(c)
	if err != nil {
		return nil, err
	}
	if h.backRef {
		return BackRef{Distance: h.distance, Length: h.length}, nil
	}

	lit, err := readLiteral(c, h)
	if err != nil {
		return nil, err
	}

	return Literal(lit), nil
}

// DecodeChunk decodes the chunk at the start of src and returns it with the number of bytes consumed.
// A returned Literal aliases src.
func DecodeChunk(src []byte) (Chunk, int, error) {
	c := &cursor{data: src}
	ch, err := readChunk(c)
	if err != nil {
		return nil, c.pos, err
	}

	return ch, c.pos, nil
}

// ParseChunks decodes every chunk in src. An empty src holds no chunks.
// Only the encoding is checked; distances are not validated against output size.
func ParseChunks(src []byte) ([]Chunk, error) {
	var chunks []Chunk
	c := &cursor{data: src}
	for c.remaining() > 0 {
		ch, err := readChunk(c)
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, ch)
	}

	return chunks, nil
}
