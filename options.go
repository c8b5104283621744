package lz77

// CompressOptions configures compression.
type CompressOptions struct {
	// SearchLimit is the farthest backward distance searched for matches.
	// 0 = literals only; values above MaxDistance are clamped.
	SearchLimit int
}

// DefaultCompressOptions returns options that search the full MaxDistance window.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		SearchLimit: MaxDistance,
	}
}

// Options configures Decompress and DecompressFromReader.
type Options struct {
	// MaxOutputSize caps the decoded size (0 = no limit).
	MaxOutputSize int
	// MaxInputSize caps how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultOptions returns options with no size limits.
func DefaultOptions() *Options {
	return &Options{}
}
