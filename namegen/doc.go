// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

/*
Package namegen generates the candidate names of a subdomain scan: each
wordlist label joined with the base domain into a fully-qualified,
dot-terminated DNS name (courtesy of [dns.Fqdn]).

The candidates stream over a channel so that the scan scheduler's workers
pull from a single shared, order-preserving work source: no candidate is
ever dispatched twice, and under a single worker the scan processes
candidates strictly in wordlist order.
*/
package namegen
