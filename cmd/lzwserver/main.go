// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzwserver starts the HTTP front end for this module's LZW
// codec (package server): POST /compress and POST /decompress accept
// a multipart file upload and stream back the processed file.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/eliseevh/lzw/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("lzwserver: ")
	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, server.Handler(&server.Config{})))
}
