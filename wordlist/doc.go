// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

// Package wordlist loads subdomain label wordlists from files or readers,
// normalizing the raw lines into the trimmed, non-empty label sequence the
// name generator consumes.
package wordlist
