// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzw compresses or decompresses a byte stream using this
// module's LZW codec. With no -input/-output flags, it reads stdin and
// writes stdout, making it usable as a pipeline filter.
//
// Example usage:
//	$ lzw -input twain.txt -output twain.txt.lzw
//	$ lzw -d -input twain.txt.lzw -output twain.txt
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/eliseevh/lzw/lzw"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzw: ")

	decompress := flag.Bool("d", false, "decompress the input instead of compressing it")
	inPath := flag.String("input", "", "input file (default stdin)")
	outPath := flag.String("output", "", "output file (default stdout)")
	flag.Parse()

	if err := run(*decompress, *inPath, *outPath); err != nil {
		log.Fatal(err)
	}
}

func run(decompress bool, inPath, outPath string) error {
	in := io.Reader(os.Stdin)
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if decompress {
		return lzw.Decode(in, out)
	}
	return lzw.Encode(in, out)
}
