// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package types

// Candidate is a single name to be resolved during a scan. It combines a
// wordlist label with the base domain under scan into a fully-qualified DNS
// name. Candidates are immutable values: they are created once by the name
// generator and then only ever read.
type Candidate struct {
	Label string `json:"label"` // the wordlist label this candidate was built from
	FQDN  string `json:"fqdn"`  // the fully-qualified (dot-terminated) DNS name
}
