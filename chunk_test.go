package lz77

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeWidthSwitch(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
		want  []byte
	}{
		{"empty literal", Literal{}, []byte{0x00}},
		{"backref len 9 dist 1", BackRef{Distance: 1, Length: 9}, []byte{0x89, 0x01}},
		{"backref len 63", BackRef{Distance: 1, Length: 63}, []byte{0xBF, 0x01}},
		{"backref len 64", BackRef{Distance: 1, Length: 64}, []byte{0xC0, 0x00, 0x40, 0x01}},
		{"backref dist 127", BackRef{Distance: 127, Length: 7}, []byte{0x87, 0x7F}},
		{"backref dist 128", BackRef{Distance: 128, Length: 7}, []byte{0x87, 0x80, 0x80}},
		{"backref dist max", BackRef{Distance: MaxDistance, Length: 7}, []byte{0x87, 0xFF, 0xFF}},
		{"backref len max field", BackRef{Distance: 300, Length: 0xFFFF}, []byte{0xC0, 0xFF, 0xFF, 0x81, 0x2C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.chunk)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestEncodeLiteralHeader(t *testing.T) {
	for _, n := range []int{1, 63, 64, 300, MaxLiteral} {
		lit := bytes.Repeat([]byte{'z'}, n)
		got, err := Encode(Literal(lit))
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}

		var hdr []byte
		if n <= ShortMax {
			hdr = []byte{byte(n)}
		} else {
			hdr = []byte{0x40, byte(n >> 8), byte(n)}
		}
		if !bytes.Equal(got[:len(hdr)], hdr) {
			t.Fatalf("len %d: header % x, want % x", n, got[:len(hdr)], hdr)
		}
		if !bytes.Equal(got[len(hdr):], lit) {
			t.Fatalf("len %d: payload mismatch", n)
		}
	}
}

func TestEncodeDoesNotModifyInput(t *testing.T) {
	lit := Literal("hello")
	dst := make([]byte, 0, 64)
	if _, err := AppendChunk(dst, lit); err != nil {
		t.Fatal(err)
	}
	if string(lit) != "hello" {
		t.Fatalf("literal modified: %q", lit)
	}
}

func TestEncodeRange(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
	}{
		{"literal too long", Literal(make([]byte, MaxLiteral+1))},
		{"zero distance", BackRef{Distance: 0, Length: 7}},
		{"distance too far", BackRef{Distance: MaxDistance + 1, Length: 7}},
		{"negative length", BackRef{Distance: 1, Length: -1}},
		{"length too long", BackRef{Distance: 1, Length: 0x10000}},
		{"nil chunk", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := []byte{0xAA}
			got, err := AppendChunk(dst, tt.chunk)
			if !errors.Is(err, ErrEncodingRange) {
				t.Fatalf("want ErrEncodingRange, got %v", err)
			}
			if !bytes.Equal(got, dst) {
				t.Fatalf("dst changed on error: % x", got)
			}
		})
	}
}

func TestDecodeChunk(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want Chunk
		n    int
	}{
		{"short literal", []byte{0x03, 'a', 'b', 'c', 0xFF}, Literal("abc"), 4},
		{"long literal", append([]byte{0x40, 0x00, 0x02}, 'x', 'y'), Literal("xy"), 5},
		{"near backref", []byte{0x89, 0x01}, BackRef{Distance: 1, Length: 9}, 2},
		{"far backref", []byte{0x87, 0x80, 0x80}, BackRef{Distance: 128, Length: 7}, 3},
		{"long backref", []byte{0xC0, 0x00, 0x40, 0x7F}, BackRef{Distance: 127, Length: 64}, 4},
		{"non-minimal distance", []byte{0x87, 0x80, 0x05}, BackRef{Distance: 5, Length: 7}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, n, err := DecodeChunk(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if n != tt.n {
				t.Fatalf("consumed %d, want %d", n, tt.n)
			}
			switch want := tt.want.(type) {
			case Literal:
				got, ok := ch.(Literal)
				if !ok || !bytes.Equal(got, want) {
					t.Fatalf("got %#v, want %#v", ch, want)
				}
			case BackRef:
				if ch != want {
					t.Fatalf("got %#v, want %#v", ch, want)
				}
			}
		})
	}
}

func TestDecodeChunkMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, ErrTruncatedHeader},
		{"long literal missing length", []byte{0x40, 0x00}, ErrTruncatedHeader},
		{"backref missing distance", []byte{0x87}, ErrTruncatedHeader},
		{"backref missing far distance byte", []byte{0x87, 0x80}, ErrTruncatedHeader},
		{"long backref missing distance", []byte{0xC0, 0x00, 0x40}, ErrTruncatedHeader},
		{"literal payload short", []byte{0x0A, 1, 2, 3}, ErrTruncatedLiteral},
		{"literal sentinel bits", []byte{0x41, 0x00, 0x01, 'a'}, ErrBadSentinel},
		{"backref sentinel bits", []byte{0xC1, 0x00, 0x40, 0x01}, ErrBadSentinel},
		{"zero distance", []byte{0x87, 0x00}, ErrZeroDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeChunk(tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error %v does not match ErrMalformed", err)
			}
		})
	}
}

func TestParseChunksRoundTrip(t *testing.T) {
	chunks := []Chunk{
		Literal("abcdefgX"),
		BackRef{Distance: 8, Length: 7},
		Literal(bytes.Repeat([]byte{'q'}, 100)),
		BackRef{Distance: 200, Length: 1000},
	}

	var stream []byte
	for _, ch := range chunks {
		var err error
		stream, err = AppendChunk(stream, ch)
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := ParseChunks(stream)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(chunks) {
		t.Fatalf("got %d chunks, want %d", len(got), len(chunks))
	}
	for i := range chunks {
		if !chunkEqual(got[i], chunks[i]) {
			t.Fatalf("chunk %d: got %#v, want %#v", i, got[i], chunks[i])
		}
	}
}

func TestParseChunksEmpty(t *testing.T) {
	got, err := ParseChunks(nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func chunkEqual(a, b Chunk) bool {
	la, okA := a.(Literal)
	lb, okB := b.(Literal)
	if okA || okB {
		return okA && okB && bytes.Equal(la, lb)
	}

	return a == b
}
