// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"time"
)

// Node is a single element of a decoded or constructed DER tree. A Node
// carries a [Tag] and exactly one of three kinds of contents:
//
//   - nothing (the zero Node, see [Node.IsEmpty]),
//   - an opaque byte payload, when the tag is primitive,
//   - an ordered list of child nodes, when the tag is constructed.
//
// A Node owns its payload and its children outright. Trees returned by
// [Decode] do not alias the input buffer, so their lifetime is independent of
// it. The accessor methods return internal storage which must not be
// modified.
//
// Nodes are created by [Decode] or by the New* constructors. Pairing a
// constructed tag with a byte payload, or a primitive tag with children, is a
// programmer error; the constructors panic on it rather than producing a tree
// that cannot be encoded.
type Node struct {
	tag      Tag
	value    []byte
	children []Node
}

// NewValue returns a leaf node with the given tag and raw content octets.
// The node takes ownership of value; the caller must not modify it afterwards.
// NewValue panics if tag has the constructed flag set.
func NewValue(tag Tag, value []byte) Node {
	if tag.Constructed {
		panic("der: constructed tag with raw value")
	}
	return Node{tag: tag, value: value}
}

// NewConstructed returns a node with the given tag and the given child nodes
// as contents, in order. NewConstructed panics if tag does not have the
// constructed flag set.
func NewConstructed(tag Tag, children ...Node) Node {
	if !tag.Constructed {
		panic("der: primitive tag with children")
	}
	return Node{tag: tag, children: children}
}

// NewSequence returns a SEQUENCE node with the given children, in order.
func NewSequence(children ...Node) Node {
	return NewConstructed(Sequence, children...)
}

// NewSet returns a SET node with the given children, in order. DER requires
// canonical ordering of SET contents; this package does not sort, the caller
// must supply children in the correct order.
func NewSet(children ...Node) Node {
	return NewConstructed(Set, children...)
}

// NewNull returns a NULL node.
func NewNull() Node {
	return Node{tag: Null, value: []byte{}}
}

// NewBoolean returns a BOOLEAN node. DER encodes TRUE as 0xFF.
func NewBoolean(v bool) Node {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	return Node{tag: Boolean, value: []byte{b}}
}

// NewInteger returns an INTEGER node holding the minimal two's-complement
// encoding of v.
func NewInteger(v int32) Node {
	return Node{tag: Integer, value: EncodeInteger(v)}
}

// NewUnsignedInteger returns an INTEGER node holding the 4-byte big-endian
// encoding of v, preceded by a zero octet if the top bit of v is set. See
// [EncodeUnsigned].
func NewUnsignedInteger(v uint32) Node {
	return Node{tag: Integer, value: EncodeUnsigned(v)}
}

// NewOID returns an OBJECT IDENTIFIER node for the dotted identifier oid. An
// error is returned if oid is not a dot-separated list of at least two
// non-negative integers.
func NewOID(oid string) (Node, error) {
	b, err := EncodeOID(oid)
	if err != nil {
		return Node{}, err
	}
	return Node{tag: OID, value: b}, nil
}

// NewUTF8String returns a UTF8String node holding s.
func NewUTF8String(s string) Node {
	return Node{tag: UTF8String, value: []byte(s)}
}

// NewPrintableString returns a PrintableString node holding s. The contents
// of s are not validated against the PrintableString character set.
func NewPrintableString(s string) Node {
	return Node{tag: PrintableString, value: []byte(s)}
}

// NewIA5String returns an IA5String node holding s.
func NewIA5String(s string) Node {
	return Node{tag: IA5String, value: []byte(s)}
}

// NewUTCTime returns a UTCTime node holding t, converted to UTC.
func NewUTCTime(t time.Time) Node {
	return Node{tag: UTCTime, value: EncodeUTCTime(t)}
}

// NewGeneralizedTime returns a GeneralizedTime node holding t, converted to
// UTC.
func NewGeneralizedTime(t time.Time) Node {
	return Node{tag: GeneralizedTime, value: EncodeGeneralizedTime(t)}
}

// IsEmpty reports whether n is the empty node. The empty node has no tag and
// no contents and encodes to zero bytes.
func (n Node) IsEmpty() bool {
	return n.tag == (Tag{})
}

// Tag returns the tag of n.
func (n Node) Tag() Tag {
	return n.tag
}

// Value returns the raw content octets of a leaf node. It returns nil for
// constructed and empty nodes.
func (n Node) Value() []byte {
	return n.value
}

// Children returns the child nodes of a constructed node, in order. It
// returns nil for leaf and empty nodes.
func (n Node) Children() []Node {
	return n.children
}

// ContentLen returns the number of content octets the encoding of n will
// occupy: the payload size for a leaf, or the sum of the outer lengths of all
// children for a constructed node.
func (n Node) ContentLen() int {
	if n.IsEmpty() {
		return 0
	}
	if n.tag.Constructed {
		l := 0
		for _, c := range n.children {
			l += c.OuterLen()
		}
		return l
	}
	return len(n.value)
}

// HeaderLen returns the number of identifier and length octets the encoding
// of n will occupy. The header length is a pure function of the content
// length, between 2 and 6 bytes.
func (n Node) HeaderLen() int {
	if n.IsEmpty() {
		return 0
	}
	return headerLen(n.ContentLen())
}

// OuterLen returns the total number of bytes the encoding of n will occupy,
// header and contents. The empty node occupies zero bytes.
func (n Node) OuterLen() int {
	if n.IsEmpty() {
		return 0
	}
	cl := n.ContentLen()
	return headerLen(cl) + cl
}

// Equal reports whether n and o encode the same data value. Equality is
// structural: tags must match and contents must match recursively.
func (n Node) Equal(o Node) bool {
	if n.tag != o.tag || len(n.children) != len(o.children) {
		return false
	}
	if !bytes.Equal(n.value, o.value) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}
