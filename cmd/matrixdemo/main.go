// SPDX-License-Identifier: MIT

// Command matrixdemo reads two N×N integer matrices from a file and prints
// their sum, product, diagonal sums and a few in-place edits.
//
// Usage:
//
//	matrixdemo [file] [--swap-a 0] [--swap-b 1] [--update-value 99] [-v]
//
// Without a file argument the program prompts for a filename on stdin.
// Flags may also be set through MATRIXDEMO_* environment variables
// (e.g. MATRIXDEMO_UPDATE_VALUE=7).
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
