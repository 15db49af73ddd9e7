// SPDX-License-Identifier: MIT

// Command numopt fits polynomials to sample files and runs the search and
// root-finding routines on built-in problems.
package main

import (
	"os"

	"github.com/katalvlaran/numopt/cmd/numopt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
