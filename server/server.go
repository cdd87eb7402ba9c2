// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package server exposes this module's LZW codec over HTTP: a
// multipart file upload in, a compressed or decompressed file back
// out as an attachment.
package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/eliseevh/lzw/lzw"
)

// FileSizeLimit bounds the size of an uploaded file.
const FileSizeLimit = 64 * 1024 * 1024 // 64 MiB

// compressedSuffix is appended to a filename by /compress and trimmed
// back off by /decompress.
const compressedSuffix = ".compress"

// Config holds the server's options. The blank field prevents unkeyed
// struct literals, so new options can be added later without breaking
// callers.
type Config struct {
	_ struct{}
}

// Handler returns an http.Handler serving POST /compress and
// POST /decompress.
func Handler(_ *Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/compress", processHandler(lzw.Encode, appendCompressedSuffix))
	mux.HandleFunc("/decompress", processHandler(lzw.Decode, trimCompressedSuffix))
	return mux
}

// codecFunc matches lzw.Encode/lzw.Decode's signature.
type codecFunc func(source io.Reader, sink io.Writer) error

// processHandler builds the shared multipart-in, attachment-out
// handler for both routes, parameterized only by which codec function
// runs and how the response filename is derived.
func processHandler(process codecFunc, nameGen func(string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, FileSizeLimit)
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Filename == "" {
			http.Error(w, "unnamed uploaded file", http.StatusBadRequest)
			return
		}

		var out bytes.Buffer
		if err := process(file, &out); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		name := nameGen(header.Filename)
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(out.Bytes())
	}
}

func appendCompressedSuffix(name string) string {
	return name + compressedSuffix
}

func trimCompressedSuffix(name string) string {
	return strings.TrimSuffix(name, compressedSuffix)
}
