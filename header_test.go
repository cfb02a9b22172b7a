// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

func Test_headerLen(t *testing.T) {
	tests := []struct {
		contentLen int
		want       int
	}{
		{0, 2},
		{127, 2},
		{128, 3},
		{255, 3},
		{256, 4},
		{65535, 4},
		{65536, 5},
		{16777215, 5},
		{16777216, 6},
		{maxContentLen, 6},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.contentLen), func(t *testing.T) {
			if got := headerLen(tt.contentLen); got != tt.want {
				t.Errorf("headerLen(%d) = %d, want %d", tt.contentLen, got, tt.want)
			}
		})
	}
}

func Test_appendHeader(t *testing.T) {
	tests := map[string]struct {
		tag        Tag
		contentLen int
		want       []byte
	}{
		"ShortForm":     {Sequence, 60, []byte{0x30, 60}},
		"Boundary127":   {OctetString, 127, []byte{0x04, 0x7F}},
		"Boundary128":   {OctetString, 128, []byte{0x04, 0x81, 0x80}},
		"IA5String132":  {IA5String, 132, []byte{0x16, 0x81, 0x84}},
		"IA5String30k":  {IA5String, 30000, []byte{0x16, 0x82, 0x75, 0x30}},
		"IA5String70k":  {IA5String, 70000, []byte{0x16, 0x83, 0x01, 0x11, 0x70}},
		"FourByteForm":  {OctetString, 0x01020304, []byte{0x04, 0x84, 0x01, 0x02, 0x03, 0x04}},
		"ContextZero":   {Context(0, true), 3, []byte{0xA0, 0x03}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := appendHeader(nil, tt.tag, tt.contentLen)
			if !slices.Equal(got, tt.want) {
				t.Errorf("appendHeader() = % X, want % X", got, tt.want)
			}
			if len(got) != headerLen(tt.contentLen) {
				t.Errorf("appendHeader() wrote %d bytes, headerLen() = %d", len(got), headerLen(tt.contentLen))
			}
		})
	}
}

func Test_parseHeader(t *testing.T) {
	tests := map[string]struct {
		data           []byte
		wantTag        Tag
		wantContentLen int
		wantHdrLen     int
		wantErr        error
	}{
		"ShortForm":    {[]byte{0x30, 60}, Sequence, 60, 2, nil},
		"LongForm":     {[]byte{0x16, 0x82, 0x75, 0x30}, IA5String, 30000, 4, nil},
		"NonMinimal":   {[]byte{0x04, 0x81, 0x05}, OctetString, 5, 3, nil},
		"Empty":        {nil, Tag{}, 0, 0, ErrTruncated},
		"OnlyTag":      {[]byte{0x30}, Tag{}, 0, 0, ErrTruncated},
		"ShortLength":  {[]byte{0x30, 0x82, 0x01}, Tag{}, 0, 0, ErrTruncated},
		"UnknownTag":   {[]byte{0x0E, 0x00}, Tag{}, 0, 0, ErrUnrecognizedTag},
		"Indefinite":   {[]byte{0x30, 0x80}, Tag{}, 0, 0, ErrInvalidLength},
		"FiveBytes":    {[]byte{0x30, 0x85, 0x01, 0x02, 0x03, 0x04, 0x05}, Tag{}, 0, 0, ErrInvalidLength},
		"AboveCeiling": {[]byte{0x30, 0x84, 0xFF, 0xFF, 0xFF, 0xFF}, Tag{}, 0, 0, ErrInvalidLength},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tag, contentLen, hdrLen, err := parseHeader(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseHeader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if tag != tt.wantTag || contentLen != tt.wantContentLen || hdrLen != tt.wantHdrLen {
				t.Errorf("parseHeader() = (%v, %d, %d), want (%v, %d, %d)",
					tag, contentLen, hdrLen, tt.wantTag, tt.wantContentLen, tt.wantHdrLen)
			}
		})
	}
}
