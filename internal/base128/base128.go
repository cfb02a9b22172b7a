// Package base128 implements the big-endian base-128 group encoding with
// continuation bits used by OBJECT IDENTIFIER arcs (and by BER long-form tag
// numbers, which this module does not use). Each byte carries 7 value bits;
// the high bit is set on every byte of a group except the last.
package base128

import "math/bits"

// Len returns the number of bytes Append writes for v.
func Len(v uint) int {
	if v == 0 {
		return 1
	}
	l := 0
	for ; v > 0; v >>= 7 {
		l++
	}
	return l
}

// Append appends the minimal base-128 group for v to dst.
func Append(dst []byte, v uint) []byte {
	for i := Len(v) - 1; i >= 0; i-- {
		b := byte(v>>(7*i)) & 0x7f
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// Next decodes the group at the start of b. It returns the decoded value and
// the number of bytes consumed. n is zero when b is empty, when the group is
// not terminated within b, or when the value would overflow a uint.
func Next(b []byte) (v uint, n int) {
	numBits := 0
	for i, by := range b {
		v = v<<7 | uint(by&0x7f)
		if numBits == 0 {
			numBits = bits.Len8(by & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > bits.UintSize {
			return 0, 0
		}
		if by&0x80 == 0 {
			return v, i + 1
		}
	}
	return 0, 0
}
