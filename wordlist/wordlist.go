// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the wordlist file at path and returns its labels in file
// order. Labels are trimmed of surrounding whitespace; blank lines and
// comment lines starting with “#” are dropped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open wordlist: %w", err)
	}
	defer f.Close()
	labels, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read wordlist %q: %w", path, err)
	}
	return labels, nil
}

// Read reads labels from r, one per line, trimming whitespace and dropping
// blank and “#” comment lines.
func Read(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		label := strings.TrimSpace(scanner.Text())
		if label == "" || strings.HasPrefix(label, "#") {
			continue
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}
