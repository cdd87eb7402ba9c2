// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, input []byte) []byte {
	t.Helper()
	var compressed bytes.Buffer
	if err := Encode(bytes.NewReader(input), &compressed); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var output bytes.Buffer
	if err := Decode(bytes.NewReader(compressed.Bytes()), &output); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(output.Bytes(), input) {
		t.Fatalf("round trip mismatch: got %q, want %q", output.Bytes(), input)
	}
	return compressed.Bytes()
}

func TestRoundTripScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"HelloWorld", []byte("Hello, world")},
		{"Empty", nil},
		{"SingleByte", []byte{'A'}},
		{"RepeatedByte", []byte("AAAAAAAA")}, // exercises the KWKWK case
		{"AllByteValues", allByteValues()},
		{"Binary", []byte{0x00, 0xFF, 0x00, 0xFF, 0x01, 0x02, 0x01, 0x02, 0x01, 0x02}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roundTrip(t, tc.input)
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	input := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 50))
	var a, b bytes.Buffer
	if err := Encode(bytes.NewReader(input), &a); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := Encode(bytes.NewReader(input), &b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("two encodes of the same input produced different output")
	}
}

func TestEmptyInputProducesEmptyOutput(t *testing.T) {
	var compressed bytes.Buffer
	if err := Encode(bytes.NewReader(nil), &compressed); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if compressed.Len() != 0 {
		t.Fatalf("Encode(nil) produced %d bytes, want 0", compressed.Len())
	}
}

func TestDecodeCorrupt(t *testing.T) {
	// First code is the (valid, 8-bit) value 0. Second code is 9 bits
	// wide and encodes 257, i.e. next = 258, one past the decoder's
	// real dictionary size of 257 (no entry has been added yet, since
	// the first code left cur empty): this must surface as
	// ErrCorrupt rather than panic or silently decode garbage.
	bad := []byte{0x00, 0x01, 0x01}
	var out bytes.Buffer
	err := Decode(bytes.NewReader(bad), &out)
	if err != ErrCorrupt {
		t.Fatalf("Decode of corrupt stream = %v, want ErrCorrupt", err)
	}
}

func TestRoundTripLargeText(t *testing.T) {
	// A natural-language-ish, highly repetitive sample, kept small
	// enough for a fast unit test while still exercising many rounds
	// of dictionary growth and the drain/refill threshold logic.
	paragraph := `The quick brown fox jumps over the lazy dog. ` +
		`Pack my box with five dozen liquor jugs. ` +
		`How vexingly quick daft zebras jump! `
	input := []byte(strings.Repeat(paragraph, 2000))

	compressed := roundTrip(t, input)
	if len(compressed) >= len(input) {
		t.Fatalf("compressed size %d did not shrink relative to input size %d", len(compressed), len(input))
	}
}

// TestRoundTripAtDictionaryCap exercises the other hard edge case
// alongside KWKWK: once the dictionary saturates at trieMaxSize, every
// later code must still be transmitted at the same fixed width and
// decode back correctly, with no further entries added on either side.
func TestRoundTripAtDictionaryCap(t *testing.T) {
	input := genDistinctBytes(0, 400000)
	roundTrip(t, input)
}

func allByteValues() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
