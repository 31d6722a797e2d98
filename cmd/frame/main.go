// Package main provides the CLI entrypoint for frame.
//
// frame is a Go code generator that:
//   - Finds //frame:wrap directives in the doc comments of functions
//   - Parses their key = value arguments (title, sep, width, sep_line)
//   - Inserts a printed header banner before the function body and a
//     footer banner after it
//   - Rewrites the files in place, into a directory, or to stdout
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "frame:", err)
		os.Exit(1)
	}
}
