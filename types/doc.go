// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

/*
Package types defines domainhunter's information model. Which is rather
simple and mainly revolves around [Candidate] and [ResolutionOutcome], as
well as the [FailureReason] classification of unresolved candidates.

# Design Rationale

[ResolutionOutcome] is an interface with concrete [ResolvedValue] and
[UnresolvedValue] types instead of a single struct with a success flag.
Outcomes are passed around between the resolver workers, the scheduler, and
the aggregator, crossing goroutine boundaries through callbacks. Offering
only getters on an interface buys us value semantics and immutability
without any locking, and it keeps the success and failure payloads (the
address list versus the failure classification) from bleeding into each
other. Code consuming outcomes switches on Resolved() exactly once and then
only ever sees the fields that are meaningful for that variant.
*/
package types
