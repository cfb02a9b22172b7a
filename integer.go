// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// DecodeInteger interprets the content octets in b as a big-endian
// two's-complement integer, sign-extending as needed. Encodings wider than 4
// bytes fail with [ErrUnsupportedSize]; an empty b yields zero.
func DecodeInteger(b []byte) (int32, error) {
	if len(b) > 4 {
		return 0, ErrUnsupportedSize
	}
	var v int32
	if len(b) > 0 && b[0]&0x80 != 0 {
		v = -1
	}
	for _, by := range b {
		v = v<<8 | int32(by)
	}
	return v, nil
}

// EncodeInteger returns the minimal two's-complement content octets for v, as
// DER requires for INTEGER values: the shortest big-endian encoding whose
// first byte still carries the sign.
func EncodeInteger(v int32) []byte {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for len(b) > 1 {
		if b[0] == 0x00 && b[1]&0x80 == 0 {
			b = b[1:]
		} else if b[0] == 0xFF && b[1]&0x80 != 0 {
			b = b[1:]
		} else {
			break
		}
	}
	return b
}

// EncodeUnsigned returns the content octets for the unsigned value v: always
// the full 4-byte big-endian representation, preceded by a zero octet when
// the most significant bit is set so the value cannot be misread as negative.
// Superfluous leading zero bytes of small values are deliberately not
// stripped; use [EncodeInteger] for minimal encodings.
func EncodeUnsigned(v uint32) []byte {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}
