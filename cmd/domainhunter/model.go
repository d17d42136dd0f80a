// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"sync"
	"time"

	"github.com/domainhunter/domainhunter/types"

	log "github.com/sirupsen/logrus"
)

// hit is a single resolved candidate for display purposes.
type hit struct {
	fqdn    string
	addrs   []string
	elapsed time.Duration
}

// view is a consistent copy of the display model for one rendering pass.
type view struct {
	completed int
	total     int
	resolved  int
	hits      []hit
	verdicts  map[string]bool // address liveness; nil until verification ran.
	running   bool
}

// scanModel is the concurrency-safe display model: the scan engine reports
// progress snapshots and outcomes into it, the renderer reads consistent
// views out of it.
type scanModel struct {
	mu        sync.Mutex
	completed int
	total     int
	resolved  int
	hits      []hit
	verdicts  map[string]bool
	running   bool
}

func newScanModel() *scanModel {
	return &scanModel{running: true}
}

// Progress consumes a scan progress snapshot; it implements
// [scan.ProgressSink].
func (m *scanModel) Progress(completed, total, resolved int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed, m.total, m.resolved = completed, total, resolved
}

// Record consumes a candidate's terminal outcome. Resolved candidates
// become display hits; unresolved ones are only worth a debug log line.
func (m *scanModel) Record(outcome types.ResolutionOutcome, elapsed time.Duration) {
	if !outcome.Resolved() {
		reason, err := outcome.Failure()
		log.WithField("name", outcome.Candidate().FQDN).
			WithError(err).
			Debugf("unresolved: %s", reason)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits = append(m.hits, hit{
		fqdn:    outcome.Candidate().FQDN,
		addrs:   outcome.Addresses(),
		elapsed: elapsed,
	})
}

// SetVerdicts attaches the address liveness verdicts of the verification
// stage.
func (m *scanModel) SetVerdicts(verdicts map[string]bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verdicts = verdicts
}

// Finish marks the scan as wound down, so the renderer stops spinning.
func (m *scanModel) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
}

// View returns a consistent copy for rendering.
func (m *scanModel) View() view {
	m.mu.Lock()
	defer m.mu.Unlock()
	return view{
		completed: m.completed,
		total:     m.total,
		resolved:  m.resolved,
		hits:      append([]hit(nil), m.hits...),
		verdicts:  m.verdicts,
		running:   m.running,
	}
}
