// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

/*
Package resolver draws the capability boundary around DNS name resolution:
the [Resolver] interface turns one candidate name into one terminal
[types.ResolutionOutcome].

The real implementation is [Pool], a size-limited pool of DNS client
connections to a single resolver address, with the A/AAAA queries done in
pure Go thanks to the incredible [miekg/dns] module. Tests inject their own
deterministic or failure-injecting Resolver implementations instead.

Please note that the A and AAAA queries for a single name are not
concurrent.

[miekg/dns]: https://github.com/miekg/dns
*/
package resolver
