// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// maxContentLen is the largest supported content length. DER permits longer
// values but this package caps lengths at what an int32 can represent.
const maxContentLen = 1<<31 - 1

// headerLen returns the number of identifier and length octets for a data
// value with the given content length: a short-form length below 128, one
// indicator byte plus 1–4 big-endian length bytes otherwise.
//
// The header length is always computed from the content length. A decoded
// header is never trusted during encoding; DER forbids the degenerate long
// forms anyway.
func headerLen(contentLen int) int {
	switch {
	case contentLen < 0x80:
		return 2
	case contentLen < 0x100:
		return 3
	case contentLen < 0x10000:
		return 4
	case contentLen < 0x1000000:
		return 5
	default:
		return 6
	}
}

// appendHeader appends the identifier octet for tag and the definite-length
// octets for contentLen to dst. It writes exactly headerLen(contentLen)
// bytes.
func appendHeader(dst []byte, tag Tag, contentLen int) []byte {
	dst = append(dst, tag.Byte())
	if contentLen < 0x80 {
		return append(dst, byte(contentLen))
	}
	numBytes := headerLen(contentLen) - 2
	dst = append(dst, 0x80|byte(numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		dst = append(dst, byte(contentLen>>(8*i)))
	}
	return dst
}

// parseHeader reads the identifier and length octets at the start of b. It
// returns the decoded tag, the declared content length and the number of
// header bytes consumed.
//
// Fewer than two bytes of input or an unrecognized universal tag fail with
// [ErrTruncated] and [ErrUnrecognizedTag] respectively; both are recoverable
// for an enclosing constructed value. An indicator byte claiming more than 4
// length bytes, the indefinite-length marker 0x80 and a length above the
// supported ceiling fail hard with [ErrInvalidLength].
func parseHeader(b []byte) (tag Tag, contentLen, hdrLen int, err error) {
	if len(b) < 2 {
		return Tag{}, 0, 0, ErrTruncated
	}
	tag, ok := DecodeTag(b[0])
	if !ok {
		return Tag{}, 0, 0, ErrUnrecognizedTag
	}
	l := int(b[1])
	if l < 0x80 {
		return tag, l, 2, nil
	}
	numBytes := l & 0x7f
	if numBytes == 0 || numBytes > 4 {
		return Tag{}, 0, 0, ErrInvalidLength
	}
	if len(b) < 2+numBytes {
		return Tag{}, 0, 0, ErrTruncated
	}
	var cl int64 // 4 length bytes can exceed an int on 32-bit platforms
	for _, by := range b[2 : 2+numBytes] {
		cl = cl<<8 | int64(by)
	}
	if cl > maxContentLen {
		return Tag{}, 0, 0, ErrInvalidLength
	}
	return tag, int(cl), 2 + numBytes, nil
}
