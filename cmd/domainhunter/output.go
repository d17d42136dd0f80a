// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/domainhunter/domainhunter/scan"
)

// writeResults persists the resolved names to the file at path, one name
// per line together with its addresses.
func writeResults(path string, results []scan.ResolvedName) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create results file: %w", err)
	}
	for _, name := range results {
		if _, err := fmt.Fprintf(f, "%s -> %s\n",
			strings.TrimSuffix(name.FQDN, "."),
			strings.Join(name.Addresses, ", ")); err != nil {
			f.Close()
			return fmt.Errorf("cannot write results file: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write results file: %w", err)
	}
	return nil
}
