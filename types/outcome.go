// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package types

// ResolutionOutcome is the terminal result of resolving a single candidate:
// either the candidate resolved into one or more addresses, or it didn't for
// a classified reason. Every candidate of a scan produces exactly one
// terminal outcome.
//
// Outcomes travel from the resolver through the scheduler into the
// aggregator, crossing goroutines on the way, so they only offer getters and
// stay immutable after creation.
type ResolutionOutcome interface {
	Candidate() Candidate // the candidate this outcome belongs to
	Resolved() bool       // true if the candidate resolved into addresses
	Addresses() []string  // resolved IP addresses; nil for unresolved outcomes
	// Failure returns the failure classification together with optional
	// error details. It is only meaningful for unresolved outcomes and
	// returns zero values otherwise.
	Failure() (FailureReason, error)
}

// ResolvedValue implements a concrete [ResolutionOutcome] for a successfully
// resolved candidate.
type ResolvedValue struct {
	Cand  Candidate `json:"candidate"`
	Addrs []string  `json:"addresses"`
}

var _ ResolutionOutcome = (*ResolvedValue)(nil)

// Candidate returns the candidate this outcome belongs to.
func (o *ResolvedValue) Candidate() Candidate { return o.Cand }

// Resolved returns true.
func (o *ResolvedValue) Resolved() bool { return true }

// Addresses returns the resolved IP addresses.
func (o *ResolvedValue) Addresses() []string { return o.Addrs }

// Failure returns zero values, as there was no failure.
func (o *ResolvedValue) Failure() (FailureReason, error) { return 0, nil }

// UnresolvedValue implements a concrete [ResolutionOutcome] for a candidate
// that did not resolve.
type UnresolvedValue struct {
	Cand   Candidate     `json:"candidate"`
	Why    FailureReason `json:"reason"`
	Detail error         `json:"-"` // optional details, mostly for Other
}

var _ ResolutionOutcome = (*UnresolvedValue)(nil)

// Candidate returns the candidate this outcome belongs to.
func (o *UnresolvedValue) Candidate() Candidate { return o.Cand }

// Resolved returns false.
func (o *UnresolvedValue) Resolved() bool { return false }

// Addresses returns nil.
func (o *UnresolvedValue) Addresses() []string { return nil }

// Failure returns the failure classification and optional error details.
func (o *UnresolvedValue) Failure() (FailureReason, error) { return o.Why, o.Detail }
