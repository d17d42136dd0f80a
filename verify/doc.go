// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

/*
Package verify implements an optional liveness check for the IP addresses a
scan resolved: each distinct address is pinged once by a goroutine-limited
worker pool and judged alive or dead against a configurable reply
threshold.

Pinging is implemented in pure Go, leveraging the [go-ping/ping] module.
Privileged ICMP pings are the default; use [AsUnprivileged] where raw
sockets are unavailable.

[go-ping/ping]: https://github.com/go-ping/ping
*/
package verify
