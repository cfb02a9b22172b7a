// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wickert.dev/der/internal/base128"
)

// EncodeOID returns the content octets of an OBJECT IDENTIFIER for the dotted
// identifier oid, for example "1.2.840.113549.1.1.11". The first two
// components are folded into a single arc (a.b becomes a*40+b, per Rec. ITU-T
// X.690 Section 8.19); every further component is one arc. Each arc is
// written as a minimal base-128 group.
//
// A component that is not a non-negative decimal integer, or an identifier
// with fewer than two components, is an error. No value is guessed for
// malformed input.
func EncodeOID(oid string) ([]byte, error) {
	parts := strings.Split(oid, ".")
	if len(parts) < 2 {
		return nil, errors.New("der: object identifier needs at least two components")
	}
	arcs := make([]uint, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("der: malformed object identifier component %q", p)
		}
		arcs[i] = uint(v)
	}

	b := make([]byte, 0, len(arcs)+4)
	b = base128.Append(b, arcs[0]*40+arcs[1])
	for _, arc := range arcs[2:] {
		b = base128.Append(b, arc)
	}
	return b, nil
}

// DecodeOID returns the dotted string form of the OBJECT IDENTIFIER content
// octets in b. The first arc value v is expanded into the first two
// components: 0.v for v below 40, 1.(v-40) below 80, 2.(v-80) otherwise.
//
// Decoding is permissive: a trailing unterminated group is dropped and the
// components read so far are returned. An empty or fully malformed input
// yields an empty string.
func DecodeOID(b []byte) string {
	var sb strings.Builder
	sb.Grow(32)

	first := true
	for len(b) > 0 {
		v, n := base128.Next(b)
		if n == 0 {
			break
		}
		b = b[n:]
		if first {
			first = false
			switch {
			case v < 40:
				sb.WriteByte('0')
			case v < 80:
				sb.WriteByte('1')
				v -= 40
			default:
				sb.WriteByte('2')
				v -= 80
			}
		}
		sb.WriteByte('.')
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return sb.String()
}
