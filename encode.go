// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// Encode returns the DER encoding of n. The output buffer is sized by a
// length-computation pass over the tree before anything is written, so the
// encoder allocates exactly once and never resizes.
//
// The empty node encodes to zero bytes.
func Encode(n Node) []byte {
	return appendNode(make([]byte, 0, n.OuterLen()), n)
}

// Append appends the DER encoding of n to dst and returns the extended
// buffer. This allows assembling several top-level data values, or encoding
// into preallocated storage, without intermediate allocations.
func Append(dst []byte, n Node) []byte {
	return appendNode(dst, n)
}

// appendNode writes the identifier octet, the length octets and the contents
// of n. Children are written in construction order; DER's canonical SET
// ordering is the caller's responsibility.
func appendNode(dst []byte, n Node) []byte {
	if n.IsEmpty() {
		return dst
	}
	dst = appendHeader(dst, n.tag, n.ContentLen())
	if n.tag.Constructed {
		for _, c := range n.children {
			dst = appendNode(dst, c)
		}
		return dst
	}
	return append(dst, n.value...)
}
