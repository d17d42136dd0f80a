// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/domainhunter/domainhunter/namegen"
	"github.com/domainhunter/domainhunter/resolver"
	"github.com/domainhunter/domainhunter/types"

	"github.com/gammazero/workerpool"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single lookup attempt unless configured
// otherwise. A retried lookup gets a fresh timeout window.
const DefaultTimeout = 5 * time.Second

// defaultRetries is the number of immediate retries after a transient
// lookup failure; see also [WithRetries].
const defaultRetries = 1

// ErrInvalidConfig indicates a scan configuration that prevents the scan
// from even starting. It is the only fatal error condition; everything
// going wrong for individual candidates later just ends up as unresolved
// outcomes.
var ErrInvalidConfig = errors.New("invalid scan configuration")

// Config is the configuration of a single scan; it is immutable for the
// scan's duration.
type Config struct {
	Domain      string            // base domain the candidates are generated under.
	Labels      []string          // wordlist labels, already trimmed by the wordlist collaborator.
	Concurrency int               // maximum number of in-flight lookups; must be at least 1.
	Timeout     time.Duration     // per-lookup-attempt timeout; DefaultTimeout when zero.
	Resolver    resolver.Resolver // the DNS lookup capability.
}

// Scanner drives a single subdomain scan: it streams the generated
// candidates into a fixed-size worker pool, where each worker resolves its
// candidate (retrying once on transient failures) and records the terminal
// outcome with the scan's aggregator. A Scanner is good for exactly one
// Scan; it keeps no process-wide state, so any number of Scanners can run
// in the same process without interfering.
type Scanner struct {
	cfg       Config
	gen       *namegen.Generator
	agg       *Aggregator
	retries   int
	limiter   *rate.Limiter
	progress  ProgressSink
	interval  time.Duration
	outcomefn func(types.ResolutionOutcome, time.Duration)

	mu        sync.Mutex // protects cancelfn and cancelled
	cancelfn  context.CancelFunc
	cancelled bool
}

// New validates the specified configuration and returns a Scanner ready to
// run, or an error wrapping [ErrInvalidConfig].
func New(cfg Config, options ...Option) (*Scanner, error) {
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("%w: resolver must not be nil", ErrInvalidConfig)
	}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("%w: concurrency must be positive, got %d",
			ErrInvalidConfig, cfg.Concurrency)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	gen, err := namegen.New(cfg.Domain, cfg.Labels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s := &Scanner{
		cfg:      cfg,
		gen:      gen,
		agg:      NewAggregator(gen.Total()),
		retries:  defaultRetries,
		interval: time.Second,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Total returns the number of candidates this scan will attempt to resolve.
func (s *Scanner) Total() int { return s.gen.Total() }

// Snapshot returns the scan's current (completed, total, resolved count)
// progress triple.
func (s *Scanner) Snapshot() (completed int, total int, resolved int) {
	return s.agg.Snapshot()
}

// Results returns the resolved set as of now, sorted by name. After Scan
// has returned this is the final report; after a cancelled scan it is the
// partial, but still valid, report.
func (s *Scanner) Results() []ResolvedName { return s.agg.Results() }

// Scan runs the scan until every candidate has produced exactly one
// terminal outcome, or until cancellation, and returns the resolved set.
// Cancellation is not an error: the report is then simply partial. Scan
// must be called at most once per Scanner.
func (s *Scanner) Scan(ctx context.Context) []ResolvedName {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	if s.cancelled {
		// Cancelled before we even started: nothing gets dispatched, the
		// report stays empty.
		s.mu.Unlock()
		return s.agg.Results()
	}
	s.cancelfn = cancel
	s.mu.Unlock()

	// Progress reporting runs on its own ticker until the scan winds down;
	// a final snapshot then brings the sink fully up to date.
	reporting := make(chan struct{})
	reported := make(chan struct{})
	if s.progress == nil {
		close(reported)
	} else {
		go func() {
			defer close(reported)
			ticker := time.NewTicker(s.interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					s.progress.Progress(s.agg.Snapshot())
				case <-reporting:
					return
				}
			}
		}()
	}

	workers := workerpool.New(s.cfg.Concurrency)
	for cand := range s.gen.Generate(ctx) {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				break // cancelled while waiting for a dispatch slot.
			}
		}
		cand := cand
		workers.Submit(func() { s.resolve(ctx, cand) })
	}
	workers.StopWait()
	close(reporting)
	<-reported
	if s.progress != nil {
		s.progress.Progress(s.agg.Snapshot())
	}
	return s.agg.Results()
}

// Cancel stops the scan: no new lookups get dispatched, in-flight lookups
// are bounded by their per-attempt timeout, and candidates never dispatched
// don't count as attempted. Cancel is idempotent and safe to call from any
// goroutine; cancelling a scan that hasn't started yet makes a later Scan
// return immediately with an empty report.
func (s *Scanner) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
	if s.cancelfn != nil {
		s.cancelfn()
	}
}

// resolve performs the lookup attempts for a single candidate and records
// exactly one terminal outcome. The only exception: when the scan got
// cancelled before this candidate's first attempt started, the candidate is
// dropped without counting as attempted.
func (s *Scanner) resolve(ctx context.Context, cand types.Candidate) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	outcome := s.attempt(ctx, cand)
	for retry := 0; retry < s.retries && !outcome.Resolved(); retry++ {
		reason, _ := outcome.Failure()
		if !reason.Transient() || ctx.Err() != nil {
			break
		}
		outcome = s.attempt(ctx, cand)
	}
	s.agg.Record(outcome)
	if s.outcomefn != nil {
		s.outcomefn(outcome, time.Since(start))
	}
}

// attempt runs a single lookup attempt under a fresh timeout window.
func (s *Scanner) attempt(ctx context.Context, cand types.Candidate) types.ResolutionOutcome {
	actx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	return s.cfg.Resolver.Resolve(actx, cand)
}
