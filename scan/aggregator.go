// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package scan

import (
	"sort"
	"sync"

	"github.com/domainhunter/domainhunter/types"
)

// ResolvedName is one entry of a scan's final report: a fully-qualified
// name together with the addresses it resolved into.
type ResolvedName struct {
	FQDN      string   `json:"fqdn"`
	Addresses []string `json:"addresses"`
}

// Aggregator collects the terminal outcomes of a scan: it counts completed
// candidates and keeps the set of resolved names. All updates go through a
// single critical section, so no recording worker can ever lose an update
// to another one. Lock hold times are O(1) per operation; in particular, no
// lock is ever held across a network call.
type Aggregator struct {
	mu        sync.Mutex
	total     int
	completed int
	resolved  map[string][]string // FQDN -> resolved addresses
}

// NewAggregator returns an Aggregator for a scan with the specified total
// number of candidates.
func NewAggregator(total int) *Aggregator {
	return &Aggregator{
		total:    total,
		resolved: map[string][]string{},
	}
}

// Record atomically accounts the terminal outcome of one candidate:
// completed goes up by one, and resolved candidates enter the resolved set.
// Record is safe for concurrent use by all scan workers.
func (a *Aggregator) Record(outcome types.ResolutionOutcome) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.completed++
	if outcome.Resolved() {
		a.resolved[outcome.Candidate().FQDN] = outcome.Addresses()
	}
}

// Snapshot returns a consistent (completed, total, resolved count) triple
// for progress reporting.
func (a *Aggregator) Snapshot() (completed int, total int, resolved int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.completed, a.total, len(a.resolved)
}

// Results returns the resolved set, sorted by name for stable reporting.
func (a *Aggregator) Results() []ResolvedName {
	a.mu.Lock()
	defer a.mu.Unlock()
	results := make([]ResolvedName, 0, len(a.resolved))
	for fqdn, addrs := range a.resolved {
		results = append(results, ResolvedName{FQDN: fqdn, Addresses: addrs})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].FQDN < results[j].FQDN })
	return results
}
