// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"
)

func main() {
	// Cobra already prints the error itself, so no additional rendering
	// here; see also https://github.com/spf13/cobra/issues/304.
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

// For CLI unit tests...
var osExit = os.Exit
