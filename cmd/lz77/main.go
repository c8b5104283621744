// Command lz77 compresses a file, decompresses the result again and reports
// sizes and BLAKE3 digests of both sides of the round trip.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/woozymasta/lz77"
	"github.com/woozymasta/lz77/internal/baseline"
)

// Output file names written into the output directory.
const (
	compressedName   = "compressed"
	decompressedName = "decompressed"
)

type config struct {
	input       string
	outDir      string
	searchLimit int
	dump        bool
	baseline    bool
	lz4Level    int
}

func main() {
	var cfg config
	var verbose bool
	flag.StringVar(&cfg.outDir, "o", ".", "output directory")
	flag.IntVar(&cfg.searchLimit, "search", lz77.MaxDistance, "farthest match distance to search (0 = literals only)")
	flag.BoolVar(&cfg.dump, "dump", false, "log every chunk of the encoded stream")
	flag.BoolVar(&cfg.baseline, "baseline", false, "also report lz4 and snappy sizes")
	flag.IntVar(&cfg.lz4Level, "lz4hc", 9, "lz4 high-compression level for -baseline (0 = fast lz4 only)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.input = flag.Arg(0)

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, logger); err != nil {
		logger.Error("lz77 failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return err
	}
	logger.Info("input", "path", cfg.input, "size", len(data), "blake3", lz77.Checksum(data).String())

	enc, err := lz77.Compress(data, &lz77.CompressOptions{SearchLimit: cfg.searchLimit})
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	compressedPath := filepath.Join(cfg.outDir, compressedName)
	if err := os.WriteFile(compressedPath, enc, 0o644); err != nil {
		return err
	}
	logger.Info("compressed", "path", compressedPath, "size", len(enc),
		"ratio", fmt.Sprintf("%.3f", float64(len(enc))/float64(len(data))))

	if cfg.dump {
		if err := dumpChunks(enc, logger); err != nil {
			return err
		}
	}

	if cfg.baseline {
		results, err := baseline.Measure(data, baseline.Codecs(cfg.lz4Level))
		if err != nil {
			return fmt.Errorf("baseline: %w", err)
		}
		for _, r := range results {
			logger.Info("baseline", "codec", r.Codec, "size", r.Size)
		}
	}

	// A checksum mismatch still yields the decoded bytes; write them out before failing.
	dec, verifyErr := lz77.Verify(data, enc, nil)
	if dec == nil {
		return fmt.Errorf("decompress: %w", verifyErr)
	}
	decompressedPath := filepath.Join(cfg.outDir, decompressedName)
	if err := os.WriteFile(decompressedPath, dec, 0o644); err != nil {
		return err
	}
	logger.Info("decompressed", "path", decompressedPath, "size", len(dec), "blake3", lz77.Checksum(dec).String())

	return verifyErr
}

func dumpChunks(enc []byte, logger *slog.Logger) error {
	chunks, err := lz77.ParseChunks(enc)
	if err != nil {
		return err
	}

	var literals, refs int
	for i, ch := range chunks {
		switch ch := ch.(type) {
		case lz77.Literal:
			literals++
			logger.Info("chunk", "index", i, "kind", "literal", "length", len(ch))
		case lz77.BackRef:
			refs++
			logger.Info("chunk", "index", i, "kind", "backref", "length", ch.Length, "distance", ch.Distance)
		default:
			return errors.New("unknown chunk kind")
		}
	}
	logger.Debug("chunk summary", "literals", literals, "backrefs", refs)

	return nil
}
