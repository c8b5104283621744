// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz77

package lz77

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrEncodingRange    = errors.New("chunk field out of encodable range")
	ErrNilReader        = errors.New("reader is nil")
	ErrInputTooLarge    = errors.New("input exceeds MaxInputSize")
	ErrOutputTooLarge   = errors.New("output exceeds MaxOutputSize")
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrMalformed is wrapped by every error that rejects an encoded stream.
	ErrMalformed = errors.New("malformed stream")

	ErrTruncatedHeader  = malformed("unexpected end of input inside chunk header")
	ErrTruncatedLiteral = malformed("literal runs past end of input")
	ErrBadSentinel      = malformed("long-form tag has non-zero low bits")
	ErrZeroDistance     = malformed("back-reference distance is zero")
	ErrLookBehind       = malformed("back-reference reaches before start of output")
)

// malformedError is a static stream error that matches ErrMalformed.
type malformedError struct{ msg string }

func malformed(msg string) error { return &malformedError{msg: msg} }

func (e *malformedError) Error() string { return e.msg }

func (e *malformedError) Is(target error) bool { return target == ErrMalformed }
