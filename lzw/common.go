// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzw implements a byte-oriented LZW compressor and
// decompressor with variable-width codes and streaming I/O.
//
// Unlike compress/lzw in the standard library, this package does not
// implement any standardized LZW variant (GIF, TIFF, compress(1)); it
// defines its own dictionary growth rule, width convention, and wire
// format, and is only interoperable with itself.
package lzw

import "runtime"

const (
	// rootSize is the number of nodes a fresh Trie starts with: the
	// root plus one child per possible byte value.
	rootSize = 1 + 256

	// trieMaxSize caps dictionary growth. Once a Trie reaches this
	// many nodes, Add silently stops creating new entries.
	trieMaxSize = 1 << 16

	// bufferThresholdBits bounds how many bits the encoder accumulates
	// before draining, and how many bits the decoder tries to keep
	// buffered during a refill. 8 Mib, matching the reference.
	bufferThresholdBits = 8 << 20
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

// ErrCorrupt is returned by Decode when a code index exceeds the
// legal range for the decoder's current dictionary.
var ErrCorrupt error = Error("stream is corrupted")

// invariantError marks a violation of an internal invariant that
// construction is supposed to make impossible (e.g. the trie root
// missing a pre-seeded child). errRecover still converts it into the
// Encode/Decode error return like any other plain error, but its
// distinct message marks it as a bug rather than ordinary corrupt
// input, for whoever reads the returned error.
type invariantError string

func (e invariantError) Error() string { return "lzw: internal invariant violated: " + string(e) }

// errRecover is installed via defer at the top of Encode/Decode. It
// converts a panic carrying a plain error (including invariantError)
// into the function's named error return, while letting runtime
// errors (index out of range, nil dereference, etc.) continue to
// crash the program as a genuine bug.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// log2Ceil returns the smallest k such that 2^k >= a. For a <= 1 it
// returns 0.
func log2Ceil(a int) int {
	result := 0
	power := 1
	for power < a {
		power <<= 1
		result++
	}
	return result
}

// codeWidth returns the number of bits needed to transmit a code once
// the logical dictionary size is size. Both Encode and Decode apply
// this same formula to every code, including the final flush code,
// against a logical size each side tracks independently (see
// logicalSize in codec.go): the decoder cannot use its own Trie.Len()
// directly, because it legitimately lags the encoder's dictionary by
// one entry (the decoder's match state starts empty, so the first
// code it processes can't yet grow its dictionary the way the
// encoder's can).
func codeWidth(size int) int {
	return log2Ceil(size - 1)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
