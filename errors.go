// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by the decoding functions and scalar sub-codecs.
// Decode errors may be wrapped in a [SyntaxError]; use [errors.Is] to test
// for them.
var (
	// ErrTruncated indicates that the input ended before a complete data
	// value could be read.
	ErrTruncated = errors.New("truncated input")

	// ErrUnrecognizedTag indicates an identifier octet carrying a universal
	// tag number that this package does not recognize.
	ErrUnrecognizedTag = errors.New("unrecognized tag")

	// ErrInvalidLength indicates length octets that cannot be trusted at
	// all: an indicator byte claiming more than 4 length bytes, the
	// indefinite-length marker, or an assembled length exceeding the
	// supported ceiling. Unlike truncation this is never absorbed by an
	// enclosing constructed value.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnsupportedSize indicates an integer value whose encoding is wider
	// than the 4 bytes supported by [DecodeInteger].
	ErrUnsupportedSize = errors.New("unsupported integer size")
)

// SyntaxError wraps a decode failure together with the byte offset of the
// data value that could not be decoded. The offset is relative to the start
// of the buffer passed to [Decode].
type SyntaxError struct {
	ByteOffset int
	Err        error
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Error() string {
	return "der: syntax error at offset " + strconv.Itoa(e.ByteOffset) + ": " + e.Err.Error()
}
