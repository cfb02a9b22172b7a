// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump renders decoded DER trees as indented, human-readable text.
// It is a pure presentation layer: it never parses or encodes DER itself, it
// only walks a [der.Node] tree.
//
// Each node produces a line of the form
//
//	<indent>DisplayName (0xTT) length:N
//
// where TT is the identifier octet in hex and N the content length. Leaf
// nodes are followed by a type-specific value line where one is meaningful
// (decimal integers, quoted strings, dotted object identifiers with their
// well-known name, dates) and by a hex dump of the raw contents, 16
// hyphen-separated uppercase bytes per line.
package dump

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wickert.dev/der"
)

// DefaultTimeLayout is the layout used for UTCTime and GeneralizedTime values
// when a [Formatter] does not specify one.
const DefaultTimeLayout = time.RFC1123

// A Formatter renders DER trees as text. The zero value renders dates in UTC
// using [DefaultTimeLayout].
type Formatter struct {
	// TimeLayout is the Go time layout used to render time values.
	TimeLayout string

	// Location is the time zone time values are rendered in. Defaults to UTC.
	Location *time.Location
}

// Format renders n using the default [Formatter].
func Format(n der.Node) string {
	var f Formatter
	return f.Format(n)
}

// Format renders the tree rooted at n as a multi-line string. The empty node
// renders as an empty string.
func (f *Formatter) Format(n der.Node) string {
	var sb strings.Builder
	f.node(&sb, n, 0)
	return sb.String()
}

func (f *Formatter) node(sb *strings.Builder, n der.Node, depth int) {
	if n.IsEmpty() {
		return
	}
	indent := strings.Repeat("  ", depth)
	tag := n.Tag()
	fmt.Fprintf(sb, "%s%s (0x%02X) length:%d\n", indent, DisplayName(tag), tag.Byte(), n.ContentLen())

	if tag.Constructed {
		for _, c := range n.Children() {
			f.node(sb, c, depth+1)
		}
		return
	}
	if line := f.valueLine(n); line != "" {
		sb.WriteString(indent)
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	hexDump(sb, n.Value(), indent+"  ")
}

// valueLine returns the human-readable rendering of a leaf value, or "" if
// the type has none beyond the hex dump.
func (f *Formatter) valueLine(n der.Node) string {
	tag := n.Tag()
	if tag.Class != der.ClassUniversal {
		return ""
	}
	v := n.Value()
	switch tag.Number {
	case der.TypeBoolean:
		if len(v) == 1 && v[0] != 0x00 {
			return "true"
		}
		return "false"
	case der.TypeInteger:
		i, err := der.DecodeInteger(v)
		if err != nil {
			// Large integers (moduli, serial numbers) read better as hex.
			return ""
		}
		return strconv.FormatInt(int64(i), 10)
	case der.TypeBitString:
		if len(v) == 0 {
			return ""
		}
		return "unused bits:" + strconv.Itoa(int(v[0]))
	case der.TypeOID:
		s := der.DecodeOID(v)
		if name := Name(s); name != "" {
			return s + " " + name
		}
		return s
	case der.TypeUTF8String, der.TypePrintableString, der.TypeIA5String:
		return strconv.Quote(string(v))
	case der.TypeUTCTime:
		t, err := der.DecodeUTCTime(v)
		if err != nil {
			return ""
		}
		return f.date(t) + " (" + string(v) + ")"
	case der.TypeGeneralizedTime:
		t, err := der.DecodeGeneralizedTime(v)
		if err != nil {
			return ""
		}
		return f.date(t) + " (" + string(v) + ")"
	}
	return ""
}

func (f *Formatter) date(t time.Time) string {
	layout := f.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(layout)
}

// hexDump writes v as hyphen-separated uppercase hex, 16 bytes per line. A
// zero-length value produces a single blank line, so empty values such as
// NULL remain visible in the output.
func hexDump(sb *strings.Builder, v []byte, prefix string) {
	if len(v) == 0 {
		sb.WriteByte('\n')
		return
	}
	for i := 0; i < len(v); i += 16 {
		end := min(i+16, len(v))
		sb.WriteString(prefix)
		for j := i; j < end; j++ {
			if j > i {
				sb.WriteByte('-')
			}
			fmt.Fprintf(sb, "%02X", v[j])
		}
		sb.WriteByte('\n')
	}
}

// DisplayName returns the name shown for tag in a dump: the ASN.1 type name
// for recognized universal tags, the bracketed number otherwise.
func DisplayName(tag der.Tag) string {
	if tag.Class != der.ClassUniversal {
		prefix := ""
		switch tag.Class {
		case der.ClassApplication:
			prefix = "APPLICATION "
		case der.ClassPrivate:
			prefix = "PRIVATE "
		}
		return "[" + prefix + strconv.Itoa(int(tag.Number)) + "]"
	}
	switch tag.Number {
	case der.TypeBoolean:
		return "BOOLEAN"
	case der.TypeInteger:
		return "INTEGER"
	case der.TypeBitString:
		return "BIT STRING"
	case der.TypeOctetString:
		return "OCTET STRING"
	case der.TypeNull:
		return "NULL"
	case der.TypeOID:
		return "OBJECT IDENTIFIER"
	case der.TypeUTF8String:
		return "UTF8String"
	case der.TypeSequence:
		return "SEQUENCE"
	case der.TypeSet:
		return "SET"
	case der.TypePrintableString:
		return "PrintableString"
	case der.TypeIA5String:
		return "IA5String"
	case der.TypeUTCTime:
		return "UTCTime"
	case der.TypeGeneralizedTime:
		return "GeneralizedTime"
	default:
		return "[UNIVERSAL " + strconv.Itoa(int(tag.Number)) + "]"
	}
}
