package lz77

// Chunk format constants.
const (
	MaxDistance = 32767 // Maximum back-reference distance (15 bits).
	MaxMatch    = 32767 // Maximum back-reference length produced by Compress.
	MaxLiteral  = 65535 // Maximum literal run in a single chunk (16-bit length field).
	MinMatch    = 7     // Shortest match worth a back-reference.
	ShortMax    = 63    // Largest length that fits the 1-byte header form.
	NearMax     = 127   // Largest distance that fits the 1-byte distance form.
)

// Tag byte layout.
const (
	tagBackRef  = 0b1000_0000 // bit 7: back-reference (1) or literal (0).
	tagLong     = 0b0100_0000 // bit 6: 16-bit big-endian length follows.
	shortMask   = 0b0011_1111 // bits 5..0: short-form length.
	distFar     = 0b1000_0000 // distance byte bit 7: second distance byte follows.
	distHighBit = 0b0111_1111 // distance byte bits 6..0.
	maxField    = 0xFFFF      // 16-bit length field.
)
