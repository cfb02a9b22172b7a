// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
)

// Decode parses a single DER-encoded data value from the beginning of b and
// returns it as a [Node] tree. Trailing bytes after the data value are
// ignored; the number of bytes the value occupies is [Node.OuterLen].
//
// The returned tree owns all of its storage and does not alias b.
//
// Decoding is deliberately lenient about structure. A truncated or
// unrecognized element inside a constructed value ends that value's child
// list early instead of failing the whole decode, so a tree is produced for
// as much of the input as could be read unambiguously. Only two conditions
// fail a top-level Decode: the first data value itself cannot be read, or a
// length field anywhere in the input is untrustworthy ([ErrInvalidLength]).
//
// Decode never reads past the end of b, no matter how malformed the input is.
func Decode(b []byte) (Node, error) {
	n, _, err := decodeNode(b, 0)
	return n, err
}

// decodeNode decodes the data value at the start of b and returns it together
// with its outer length, the number of bytes it occupies in its parent.
// base is the offset of b within the original buffer, used for error
// reporting only.
func decodeNode(b []byte, base int) (Node, int, error) {
	tag, contentLen, hdrLen, err := parseHeader(b)
	if err != nil {
		return Node{}, 0, &SyntaxError{ByteOffset: base, Err: err}
	}
	end := hdrLen + contentLen

	if !tag.Constructed {
		if end > len(b) {
			return Node{}, 0, &SyntaxError{ByteOffset: base, Err: ErrTruncated}
		}
		// Materialize the payload so the node does not alias the input.
		value := bytes.Clone(b[hdrLen:end])
		if value == nil {
			value = []byte{}
		}
		return Node{tag: tag, value: value}, end, nil
	}

	// Children are decoded against the rest of the buffer, not against a
	// sub-slice capped at the declared end. The declared length bounds how far
	// the child loop runs, but a child whose encoding crosses that boundary is
	// not rejected.
	var children []Node
	offset := hdrLen
	for offset < end && offset < len(b) {
		child, outer, err := decodeNode(b[offset:], base+offset)
		if err != nil {
			if errors.Is(err, ErrInvalidLength) {
				return Node{}, 0, err
			}
			// No complete child here; the list ends.
			break
		}
		children = append(children, child)
		offset += outer
	}
	return Node{tag: tag, children: children}, end, nil
}
