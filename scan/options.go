// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"
	"time"

	"github.com/domainhunter/domainhunter/types"

	"golang.org/x/time/rate"
)

// Option can be passed to New when creating new [Scanner] objects.
type Option func(*Scanner)

// WithRetries sets the number of immediate same-worker retries after a
// transient lookup failure (Timeout or NetworkError). The default is a
// single retry; NameNotFound is a definitive negative and never retried
// regardless of this setting. Worst-case work per candidate is thus
// retries+1 lookups.
func WithRetries(retries uint) Option {
	return func(s *Scanner) {
		s.retries = int(retries)
	}
}

// WithProgress registers a sink to receive progress snapshots every
// interval while the scan runs, plus one final snapshot after the last
// outcome has been recorded.
func WithProgress(sink ProgressSink, interval time.Duration) Option {
	if interval <= 0 {
		panic(fmt.Errorf("scan: progress interval must be positive, got %s", interval))
	}
	return func(s *Scanner) {
		s.progress = sink
		s.interval = interval
	}
}

// WithRateLimit caps the dispatch rate of new lookups at qps per second,
// with some burst legroom. Unlimited without this option.
func WithRateLimit(qps int) Option {
	if qps < 1 {
		panic(fmt.Errorf("scan: rate limit must be positive, got %d", qps))
	}
	burst := qps / 10
	if burst < 1 {
		burst = 1
	}
	return func(s *Scanner) {
		s.limiter = rate.NewLimiter(rate.Limit(qps), burst)
	}
}

// WithOutcomeFunc registers fn to be called with each candidate's terminal
// outcome and the total lookup duration (including retries) right after the
// outcome has been recorded. fn is invoked concurrently from all workers
// and thus must be safe for concurrent use.
func WithOutcomeFunc(fn func(outcome types.ResolutionOutcome, elapsed time.Duration)) Option {
	return func(s *Scanner) {
		s.outcomefn = fn
	}
}
