// Copyright 2026 Malte Wickert. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"
	"time"
)

func TestNode_constructionMismatch(t *testing.T) {
	t.Run("ConstructedWithValue", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("NewValue(Sequence, ...) did not panic")
			}
		}()
		NewValue(Sequence, []byte{0x01})
	})

	t.Run("PrimitiveWithChildren", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("NewConstructed(Integer, ...) did not panic")
			}
		}()
		NewConstructed(Integer, NewNull())
	})
}

func TestNode_lengths(t *testing.T) {
	tests := map[string]struct {
		node       Node
		contentLen int
		headerLen  int
		outerLen   int
	}{
		"Empty":     {Node{}, 0, 0, 0},
		"Null":      {NewNull(), 0, 2, 2},
		"Integer":   {NewInteger(9), 1, 2, 3},
		"Sequence":  {NewSequence(NewInteger(9), NewInteger(10)), 6, 2, 8},
		"Nested":    {NewSequence(NewSequence(NewInteger(9))), 5, 2, 7},
		"LongValue": {NewValue(OctetString, make([]byte, 200)), 200, 3, 203},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.node.ContentLen(); got != tt.contentLen {
				t.Errorf("ContentLen() = %d, want %d", got, tt.contentLen)
			}
			if got := tt.node.HeaderLen(); got != tt.headerLen {
				t.Errorf("HeaderLen() = %d, want %d", got, tt.headerLen)
			}
			if got := tt.node.OuterLen(); got != tt.outerLen {
				t.Errorf("OuterLen() = %d, want %d", got, tt.outerLen)
			}
		})
	}
}

func TestNode_Equal(t *testing.T) {
	oid := func() Node {
		n, err := NewOID("1.2.840.113549.1.1.11")
		if err != nil {
			t.Fatalf("NewOID() error = %v", err)
		}
		return n
	}

	tests := map[string]struct {
		a, b Node
		want bool
	}{
		"Empty":          {Node{}, Node{}, true},
		"SameInteger":    {NewInteger(42), NewInteger(42), true},
		"OtherInteger":   {NewInteger(42), NewInteger(43), false},
		"TagMismatch":    {NewUTF8String("a"), NewIA5String("a"), false},
		"SameTree":       {NewSequence(oid(), NewNull()), NewSequence(oid(), NewNull()), true},
		"ChildOrder":     {NewSequence(oid(), NewNull()), NewSequence(NewNull(), oid()), false},
		"ChildCount":     {NewSequence(NewNull()), NewSequence(NewNull(), NewNull()), false},
		"EmptySequences": {NewSequence(), NewSet(), false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNode_constructors(t *testing.T) {
	tests := map[string]struct {
		node      Node
		wantTag   Tag
		wantValue []byte
	}{
		"Null":     {NewNull(), Null, []byte{}},
		"True":     {NewBoolean(true), Boolean, []byte{0xFF}},
		"False":    {NewBoolean(false), Boolean, []byte{0x00}},
		"Integer":  {NewInteger(-1), Integer, []byte{0xFF}},
		"Unsigned": {NewUnsignedInteger(0x9F952D59), Integer, []byte{0x00, 0x9F, 0x95, 0x2D, 0x59}},
		"UTF8":     {NewUTF8String("hé"), UTF8String, []byte("hé")},
		"IA5":      {NewIA5String("a@b"), IA5String, []byte("a@b")},
		"UTC": {
			NewUTCTime(time.Date(2026, time.August, 30, 7, 47, 53, 0, time.UTC)),
			UTCTime, []byte("260830074753Z"),
		},
		"Generalized": {
			NewGeneralizedTime(time.Date(2026, time.August, 30, 7, 47, 53, 0, time.UTC)),
			GeneralizedTime, []byte("20260830074753Z"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.node.Tag(); got != tt.wantTag {
				t.Errorf("Tag() = %v, want %v", got, tt.wantTag)
			}
			if got := tt.node.Value(); string(got) != string(tt.wantValue) {
				t.Errorf("Value() = % X, want % X", got, tt.wantValue)
			}
		})
	}
}
