// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"

	"github.com/domainhunter/domainhunter/types"
)

// Resolver is the capability to resolve a single candidate name into its IP
// addresses. Implementations perform one forward lookup per Resolve call
// and report the terminal outcome; they never retry on their own (retrying
// is the scan scheduler's business) and never cache results between calls.
//
// The per-attempt lookup timeout arrives as the deadline of the passed
// context, so a retried lookup always gets a fresh timeout window.
type Resolver interface {
	Resolve(ctx context.Context, cand types.Candidate) types.ResolutionOutcome
}
