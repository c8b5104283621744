/*
Package lz77 implements a lossless LZ77 sliding-window codec with a compact chunk format.

Format: a stream is a plain concatenation of chunks with no length prefix, magic or checksum.
Every chunk starts with a tag byte; bit 7 selects literal (0) or back-reference (1).
Bit 6 clear = short form, bits 5..0 hold the length (0..63).
Bit 6 set = long form, the tag is exactly 0x40 (literal) or 0xC0 (back-reference)
followed by a big-endian 16-bit length.
Literal payload bytes follow the header. A back-reference header is followed by its distance:
one byte 0..127, or two bytes with bit 7 set on the first (15-bit big-endian, up to 32767).
Back-references may overlap the bytes they produce (distance < length).

Compress searches the whole 32767-byte window by brute force and emits back-references
only for matches of at least 7 bytes. Output is deterministic for a given input and options.

# Examples

Round-trip compress and decompress:

	enc, err := lz77.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lz77.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Reject malformed streams:

	_, err := lz77.Decompress(src, nil)
	if errors.Is(err, lz77.ErrMalformed) {
		// truncated header or payload, bad sentinel, or distance before start of output
	}

Encode and inspect single chunks:

	b, _ := lz77.Encode(lz77.BackRef{Distance: 1, Length: 9}) // 0x89 0x01
	ch, n, err := lz77.DecodeChunk(b)

Verify a round-trip by BLAKE3 digest:

	dec, err := lz77.Verify(data, enc, nil)
	if err != nil {
		return err
	}
*/
package lz77
