// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bufio"
	"io"
)

// Encode reads every byte from source, LZW-compresses it, and writes
// the bit-packed result to sink. It borrows exclusive access to both
// for the duration of the call; concurrent Encode invocations must use
// independent source/sink pairs.
func Encode(source io.Reader, sink io.Writer) (err error) {
	defer errRecover(&err)

	trie := NewTrie()
	walker := NewTrieWalker(trie)
	bb := newBitBuffer()
	br := bufio.NewReader(source)

	var anyByte bool
	for {
		b, rerr := br.ReadByte()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
		anyByte = true

		priorSize := trie.Len()
		code, emitted := walker.Feed(b)
		if emitted {
			bb.Append(uint64(code-1), codeWidth(priorSize))
		}
		if bb.Len() >= bufferThresholdBits {
			if derr := bb.DrainWholeBytes(sink); derr != nil {
				return derr
			}
		}
	}

	if anyByte {
		final := walker.Finish()
		bb.Append(uint64(final-1), codeWidth(trie.Len()))
	}
	return bb.DrainWithPadding(sink)
}

// Decode reads a stream produced by Encode from source and writes the
// exact original byte sequence to sink. A code index outside the
// legal range for the decoder's dictionary is reported as ErrCorrupt;
// output already written to sink before the failure is not rolled
// back.
func Decode(source io.Reader, sink io.Writer) (err error) {
	defer errRecover(&err)

	trie := NewTrie()
	bb := newBitBuffer()
	cursor := 0
	logicalSize := trie.Len()
	var cur []byte

	br := bufio.NewReader(source)
	eof := false

	refill := func() error {
		for !eof && bb.Len() < bufferThresholdBits {
			var chunk [8]byte
			n := 0
			for n < 8 {
				c, rerr := br.ReadByte()
				if rerr == io.EOF {
					eof = true
					break
				}
				if rerr != nil {
					return rerr
				}
				chunk[n] = c
				n++
			}
			if n == 0 {
				break
			}
			var value uint64
			for i := 0; i < n; i++ {
				value |= uint64(chunk[i]) << uint(8*i)
			}
			bb.Append(value, n*8)
		}
		return nil
	}

	for {
		if rerr := refill(); rerr != nil {
			return rerr
		}
		for {
			width := codeWidth(logicalSize)
			if bb.Len()-cursor < width {
				break
			}
			value := bb.Read(width, cursor)
			cursor += width
			next := uint32(value) + 1

			switch {
			case int(next) < trie.Len():
				str, ok := trie.StringOf(next)
				if !ok {
					panic(invariantError("code within range but missing from trie"))
				}
				if _, werr := sink.Write(str); werr != nil {
					return werr
				}
				if len(cur) > 0 {
					trie.Add(appendByte(cur, str[0]))
				}
				cur = str
			case int(next) == trie.Len():
				if len(cur) == 0 {
					return ErrCorrupt
				}
				ext := appendByte(cur, cur[0])
				trie.Add(ext)
				if _, werr := sink.Write(ext); werr != nil {
					return werr
				}
				cur = ext
			default:
				return ErrCorrupt
			}

			logicalSize = min(logicalSize+1, trieMaxSize)
		}
		if eof {
			break
		}
		bb.Cut(cursor)
		cursor = 0
	}
	return nil
}

// appendByte returns a freshly allocated copy of s with b appended,
// never aliasing s's backing array (s may be a trie node's cached
// string, which must stay immutable).
func appendByte(s []byte, b byte) []byte {
	out := make([]byte, len(s)+1)
	copy(out, s)
	out[len(s)] = b
	return out
}
