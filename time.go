// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"fmt"
	"time"
)

// EncodeUTCTime returns the 13 content octets of a UTCTime value for t in the
// form YYMMDDHHMMSSZ. t is converted to UTC first; the shorter no-seconds and
// zone-offset forms permitted by ASN.1 are never produced since DER requires
// the Z form.
//
// UTCTime carries a two-digit year. Callers encoding dates outside 1950–2049
// should use [EncodeGeneralizedTime] instead.
func EncodeUTCTime(t time.Time) []byte {
	t = t.UTC()
	b := make([]byte, 0, 13)
	b = appendDigits(b, t.Year()%100, 2)
	b = appendTimestamp(b, t)
	return b
}

// DecodeUTCTime parses the content octets of a UTCTime value. Exactly the
// 13-byte YYMMDDHHMMSSZ form is accepted; seconds and the trailing Z are
// mandatory. Two-digit years from 50 map into 19xx, below 50 into 20xx.
func DecodeUTCTime(b []byte) (time.Time, error) {
	if len(b) != 13 || b[12] != 'Z' {
		return time.Time{}, fmt.Errorf("der: malformed UTCTime %q", b)
	}
	year, err := parseDigits(b[:2])
	if err != nil {
		return time.Time{}, fmt.Errorf("der: malformed UTCTime %q", b)
	}
	if year >= 50 {
		year += 1900
	} else {
		year += 2000
	}
	return parseTimestamp(b[2:12], year, b)
}

// EncodeGeneralizedTime returns the 15 content octets of a GeneralizedTime
// value for t in the form YYYYMMDDHHMMSSZ. t is converted to UTC first;
// fractional seconds are discarded.
func EncodeGeneralizedTime(t time.Time) []byte {
	t = t.UTC()
	b := make([]byte, 0, 15)
	b = appendDigits(b, t.Year()%10000, 4)
	b = appendTimestamp(b, t)
	return b
}

// DecodeGeneralizedTime parses the content octets of a GeneralizedTime value.
// Exactly the 15-byte YYYYMMDDHHMMSSZ form is accepted.
func DecodeGeneralizedTime(b []byte) (time.Time, error) {
	if len(b) != 15 || b[14] != 'Z' {
		return time.Time{}, fmt.Errorf("der: malformed GeneralizedTime %q", b)
	}
	year, err := parseDigits(b[:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("der: malformed GeneralizedTime %q", b)
	}
	return parseTimestamp(b[4:14], year, b)
}

// appendTimestamp appends the MMDDHHMMSS fields of t and the trailing Z.
func appendTimestamp(b []byte, t time.Time) []byte {
	b = appendDigits(b, int(t.Month()), 2)
	b = appendDigits(b, t.Day(), 2)
	b = appendDigits(b, t.Hour(), 2)
	b = appendDigits(b, t.Minute(), 2)
	b = appendDigits(b, t.Second(), 2)
	return append(b, 'Z')
}

// parseTimestamp parses the ten MMDDHHMMSS bytes in b. full is the complete
// value, used in error messages.
func parseTimestamp(b []byte, year int, full []byte) (time.Time, error) {
	var f [5]int
	for i := range f {
		v, err := parseDigits(b[2*i : 2*i+2])
		if err != nil {
			return time.Time{}, fmt.Errorf("der: malformed time value %q", full)
		}
		f[i] = v
	}
	return time.Date(year, time.Month(f[0]), f[1], f[2], f[3], f[4], 0, time.UTC), nil
}

// appendDigits appends the base-10 representation of v, zero-padded or
// truncated to exactly n digits.
func appendDigits(b []byte, v, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		b = append(b, '0'+byte(v/pow10(i)%10))
	}
	return b
}

func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// parseDigits parses b as an unsigned decimal number. Any non-digit byte is
// an error; there is no silent fallback for malformed time fields.
func parseDigits(b []byte) (int, error) {
	v := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("unexpected byte %#02x", c)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}
