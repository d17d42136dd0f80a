// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

// Deterministic and failure-injecting resolver stubs for exercising the
// scan engine without any real DNS traffic.

package scan

import (
	"context"
	"sync"
	"time"

	"github.com/domainhunter/domainhunter/types"
)

// stubResolver resolves deterministically through fn, ignoring the context.
type stubResolver struct {
	fn func(cand types.Candidate) types.ResolutionOutcome
}

func (r *stubResolver) Resolve(_ context.Context, cand types.Candidate) types.ResolutionOutcome {
	return r.fn(cand)
}

// alwaysResolver resolves every candidate into the same single address.
func alwaysResolver() *stubResolver {
	return &stubResolver{fn: func(cand types.Candidate) types.ResolutionOutcome {
		return &types.ResolvedValue{Cand: cand, Addrs: []string{"192.0.2.1"}}
	}}
}

// slowResolver resolves every candidate after a fixed delay, honoring
// cancellation.
type slowResolver struct {
	delay time.Duration
}

func (r *slowResolver) Resolve(ctx context.Context, cand types.Candidate) types.ResolutionOutcome {
	select {
	case <-time.After(r.delay):
		return &types.ResolvedValue{Cand: cand, Addrs: []string{"192.0.2.1"}}
	case <-ctx.Done():
		return &types.UnresolvedValue{Cand: cand, Why: types.Timeout}
	}
}

// countingResolver counts the lookup attempts per name and fails each
// name's first "failures" attempts with the configured reason before
// finally resolving it.
type countingResolver struct {
	failures int
	reason   types.FailureReason

	mu       sync.Mutex
	attempts map[string]int
}

func (r *countingResolver) Resolve(_ context.Context, cand types.Candidate) types.ResolutionOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.attempts == nil {
		r.attempts = map[string]int{}
	}
	r.attempts[cand.FQDN]++
	if r.attempts[cand.FQDN] <= r.failures {
		return &types.UnresolvedValue{Cand: cand, Why: r.reason}
	}
	return &types.ResolvedValue{Cand: cand, Addrs: []string{"192.0.2.1"}}
}

func (r *countingResolver) count(fqdn string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts[fqdn]
}
