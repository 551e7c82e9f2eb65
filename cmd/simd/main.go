// Package main starts the simd input simulation server.
package main

import "flag"

// main is the entrypoint for the simd server.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
