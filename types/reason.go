// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// FailureReason classifies why a candidate could not be resolved.
type FailureReason int

// The failure reasons of an unresolved candidate.
const (
	NameNotFound FailureReason = iota // authoritative no-such-name; a definitive negative.
	Timeout                           // no answer within the per-lookup timeout.
	NetworkError                      // transport-level failure talking to the resolver.
	Other                             // anything else; details in the accompanying error.
)

// String returns the clear-text representation of a FailureReason value.
func (r FailureReason) String() string {
	switch r {
	case NameNotFound:
		return "name not found"
	case Timeout:
		return "timeout"
	case NetworkError:
		return "network error"
	case Other:
		return "other"
	}
	return fmt.Sprintf("FailureReason(%d)", r)
}

// Transient returns true for failures that may succeed when retried
// immediately. NameNotFound is never transient: the resolver gave us a
// definitive negative answer.
func (r FailureReason) Transient() bool {
	switch r {
	case Timeout, NetworkError:
		return true
	default:
		return false
	}
}
