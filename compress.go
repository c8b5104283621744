package lz77

// Compress compresses src into a stream of literal and back-reference chunks.
// Options nil means DefaultCompressOptions().
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	limit := min(max(opts.SearchLimit, 0), MaxDistance)

	// Pre-allocate: a well-compressing input needs far less, worst case grows once.
	out := make([]byte, 0, len(src)/2+16)

	var err error
	flush := func(lit []byte) {
		if len(lit) == 0 || err != nil {
			return
		}
		out, err = AppendChunk(out, Literal(lit))
	}

	// The pending literal run is always the contiguous range src[litStart:i].
	// Byte 0 seeds it since nothing precedes it to match against.
	litStart := 0
	i := 1
	for i < len(src) && err == nil {
		bestLen, bestDist := findMatch(src, i, limit)

		if bestLen >= MinMatch {
			flush(src[litStart:i])
			if err == nil {
				out, err = AppendChunk(out, BackRef{Distance: bestDist, Length: bestLen})
			}
			i += bestLen
			litStart = i
		} else {
			i++
		}

		if i-litStart >= MaxLiteral {
			flush(src[litStart:i])
			litStart = i
		}
	}

	flush(src[litStart:])
	if err != nil {
		return nil, err
	}

	return out, nil
}

// findMatch returns the longest match for src[i:] starting within limit bytes before i,
// as (length, distance). Candidates are scanned from the farthest offset toward i and
// only a strictly longer match replaces the best, so the earliest offset wins ties.
func findMatch(src []byte, i, limit int) (int, int) {
	bestLen, bestDist := 0, 0
	longest := min(MaxMatch, len(src)-i)

	for j := max(0, i-limit); j < i; j++ {
		length := 0
		for length < longest && src[j+length] == src[i+length] {
			length++
		}

		if length > bestLen {
			bestLen = length
			bestDist = i - j
			if bestLen == longest {
				break
			}
		}
	}

	return bestLen, bestDist
}
