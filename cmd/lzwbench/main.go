// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzwbench compares this module's LZW codec against a couple
// of well-known general-purpose compressors, reporting compression
// ratio and throughput for each on the same input files.
//
// Example usage:
//	$ lzwbench -files twain.txt,pg100.txt
//	BENCHMARK: twain.txt (459K)
//		codec        ratio   encode MB/s   decode MB/s
//		lzw           2.35         12.40         38.91
//		flate         2.99          9.87         61.22
//		xz            3.41          2.11         44.05
//
// Grounded on github.com/dsnet/compress's internal/tool/bench: the same
// idea of a name -> codec registry driving a comparison table, scaled
// down to this module's single format instead of bench's
// format/level/size matrix.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/eliseevh/lzw/lzw"
)

// codec is one comparison point: a name paired with functions that
// round-trip a byte slice through some compressor.
type codec struct {
	name   string
	encode func(w io.Writer, p []byte) error
	decode func(r io.Reader) ([]byte, error)
}

var codecs = []codec{
	{
		name: "lzw",
		encode: func(w io.Writer, p []byte) error {
			return lzw.Encode(bytes.NewReader(p), w)
		},
		decode: func(r io.Reader) ([]byte, error) {
			var out bytes.Buffer
			err := lzw.Decode(r, &out)
			return out.Bytes(), err
		},
	},
	{
		name: "flate",
		encode: func(w io.Writer, p []byte) error {
			zw, err := flate.NewWriter(w, flate.DefaultCompression)
			if err != nil {
				return err
			}
			if _, err := zw.Write(p); err != nil {
				return err
			}
			return zw.Close()
		},
		decode: func(r io.Reader) ([]byte, error) {
			zr := flate.NewReader(r)
			defer zr.Close()
			return ioutil.ReadAll(zr)
		},
	},
	{
		name: "xz",
		encode: func(w io.Writer, p []byte) error {
			zw, err := xz.NewWriter(w)
			if err != nil {
				return err
			}
			if _, err := zw.Write(p); err != nil {
				return err
			}
			return zw.Close()
		},
		decode: func(r io.Reader) ([]byte, error) {
			zr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return ioutil.ReadAll(zr)
		},
	},
}

type result struct {
	name    string
	ratio   float64
	encMBps float64
	decMBps float64
	err     error
}

func main() {
	f := flag.String("files", "", "comma-separated list of input files to benchmark")
	flag.Parse()

	if *f == "" {
		fmt.Fprintln(os.Stderr, "lzwbench: -files is required")
		os.Exit(2)
	}

	for _, path := range strings.Split(*f, ",") {
		if err := benchmarkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "lzwbench: %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func benchmarkFile(path string) error {
	input, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("BENCHMARK: %s (%dK)\n", path, len(input)/1024)
	fmt.Printf("\t%-10s%8s%14s%14s\n", "codec", "ratio", "encode MB/s", "decode MB/s")
	for _, c := range codecs {
		r := benchmarkCodec(c, input)
		if r.err != nil {
			fmt.Printf("\t%-10sSKIP: %v\n", r.name, r.err)
			continue
		}
		fmt.Printf("\t%-10s%8.2f%14.2f%14.2f\n", r.name, r.ratio, r.encMBps, r.decMBps)
	}
	fmt.Println()
	return nil
}

func benchmarkCodec(c codec, input []byte) result {
	var compressed bytes.Buffer
	start := time.Now()
	if err := c.encode(&compressed, input); err != nil {
		return result{name: c.name, err: err}
	}
	encElapsed := time.Since(start)

	start = time.Now()
	output, err := c.decode(bytes.NewReader(compressed.Bytes()))
	if err != nil {
		return result{name: c.name, err: err}
	}
	decElapsed := time.Since(start)

	if !bytes.Equal(output, input) {
		return result{name: c.name, err: fmt.Errorf("round trip did not reproduce the input")}
	}

	return result{
		name:    c.name,
		ratio:   float64(len(input)) / float64(compressed.Len()),
		encMBps: mbPerSec(len(input), encElapsed),
		decMBps: mbPerSec(len(input), decElapsed),
	}
}

func mbPerSec(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return (float64(n) / (1 << 20)) / d.Seconds()
}
