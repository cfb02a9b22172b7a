// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements encoding and decoding of tree-structured ASN.1 data
// using the Distinguished Encoding Rules (DER) as specified in
// [Rec. ITU-T X.690]. See also “[A Layman's Guide to a Subset of ASN.1, BER,
// and DER]”.
//
// Unlike schema-driven ASN.1 libraries, this package does not map encoded data
// onto Go structs. A DER buffer is decoded into a generic tree of [Node]
// values, each carrying a [Tag] and either an opaque byte payload or an
// ordered list of child nodes. The same tree can be constructed
// programmatically and encoded back into bytes. For well-formed input,
// decoding and re-encoding reproduces the original bytes exactly.
//
// The package supports the definite-length format only. Indefinite lengths and
// the multi-byte (high tag number) identifier form are not supported; both are
// forbidden in DER or unused by the cryptographic artifacts this package
// targets. Content lengths are limited to what fits into an int32.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package der

import (
	"strconv"
	"strings"
)

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Tag numbers assigned to universal types in Rec. ITU-T X.680, Section 8,
// Table 1. Only the types listed here are recognized during decoding; an
// identifier octet carrying any other number in the universal class is
// rejected.
const (
	TypeBoolean         uint8 = 1
	TypeInteger         uint8 = 2
	TypeBitString       uint8 = 3
	TypeOctetString     uint8 = 4
	TypeNull            uint8 = 5
	TypeOID             uint8 = 6
	TypeUTF8String      uint8 = 12
	TypeSequence        uint8 = 16
	TypeSet             uint8 = 17
	TypePrintableString uint8 = 19
	TypeIA5String       uint8 = 22
	TypeUTCTime         uint8 = 23
	TypeGeneralizedTime uint8 = 24
)

// Tag constitutes an ASN.1 tag, consisting of its class, its
// primitive/constructed flag and its number. For details, see Section 8 of
// Rec. ITU-T X.690. Tags are comparable; two tags are the same iff class,
// flag and number all match. In particular the primitive and constructed
// variants of the same number are distinct tags.
//
// Number must fit into the 5 low-order bits of the identifier octet (0–30 in
// the low tag number form). Larger numbers cannot be represented by this
// package.
type Tag struct {
	Class       Class
	Constructed bool
	Number      uint8
}

// Predefined tags for the recognized universal types. SEQUENCE and SET carry
// the constructed flag; a primitive SEQUENCE has no meaning in DER. All
// other universal types in this set are primitive by convention.
var (
	Boolean         = Tag{ClassUniversal, false, TypeBoolean}
	Integer         = Tag{ClassUniversal, false, TypeInteger}
	BitString       = Tag{ClassUniversal, false, TypeBitString}
	OctetString     = Tag{ClassUniversal, false, TypeOctetString}
	Null            = Tag{ClassUniversal, false, TypeNull}
	OID             = Tag{ClassUniversal, false, TypeOID}
	UTF8String      = Tag{ClassUniversal, false, TypeUTF8String}
	Sequence        = Tag{ClassUniversal, true, TypeSequence}
	Set             = Tag{ClassUniversal, true, TypeSet}
	PrintableString = Tag{ClassUniversal, false, TypePrintableString}
	IA5String       = Tag{ClassUniversal, false, TypeIA5String}
	UTCTime         = Tag{ClassUniversal, false, TypeUTCTime}
	GeneralizedTime = Tag{ClassUniversal, false, TypeGeneralizedTime}
)

// Context returns a context-specific tag with the given number. The meaning
// of the number is defined by the schema of the data being processed, not by
// this package.
func Context(number uint8, constructed bool) Tag {
	return Tag{ClassContextSpecific, constructed, number}
}

// Application returns an application-class tag with the given number.
func Application(number uint8, constructed bool) Tag {
	return Tag{ClassApplication, constructed, number}
}

// Private returns a private-class tag with the given number.
func Private(number uint8, constructed bool) Tag {
	return Tag{ClassPrivate, constructed, number}
}

// DecodeTag decodes the identifier octet b into a [Tag]. The two top bits
// select the class, bit 0x20 the constructed flag and the five low-order bits
// the tag number.
//
// In the universal class the number must identify one of the recognized
// types; otherwise ok is false. Numbers of the other three classes are
// application-defined and accepted verbatim.
func DecodeTag(b byte) (tag Tag, ok bool) {
	tag = Tag{
		Class:       Class(b >> 6),
		Constructed: b&0x20 != 0,
		Number:      b & 0x1f,
	}
	if tag.Class == ClassUniversal && !knownUniversal(tag.Number) {
		return Tag{}, false
	}
	return tag, true
}

// Byte returns the identifier octet for t, the inverse of [DecodeTag].
func (t Tag) Byte() byte {
	b := byte(t.Class)<<6 | t.Number&0x1f
	if t.Constructed {
		b |= 0x20
	}
	return b
}

// String returns a string representation of t in a format similar to the one
// used in ASN.1 notation. To avoid ambiguity the UNIVERSAL word is used for
// universal tags, although this is not valid ASN.1 syntax.
func (t Tag) String() string {
	s := "["
	if t.Class != ClassContextSpecific {
		s += strings.ToUpper(t.Class.String()) + " "
	}
	s += strconv.FormatUint(uint64(t.Number), 10) + "]"
	if t.Constructed {
		return s + "/c"
	}
	return s + "/p"
}

// knownUniversal reports whether number is assigned to one of the recognized
// universal types.
func knownUniversal(number uint8) bool {
	switch number {
	case TypeBoolean, TypeInteger, TypeBitString, TypeOctetString, TypeNull,
		TypeOID, TypeUTF8String, TypeSequence, TypeSet, TypePrintableString,
		TypeIA5String, TypeUTCTime, TypeGeneralizedTime:
		return true
	}
	return false
}
