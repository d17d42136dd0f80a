// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

/*
Package scan implements the bounded-concurrency subdomain resolution
engine. A [Scanner] streams generated candidate names into a fixed-size
worker pool, where each worker resolves its candidate through the injected
[resolver.Resolver] capability and records the terminal outcome with the
scan's [Aggregator].

The worker pool caps the number of simultaneously in-flight lookups at the
configured concurrency; the cap exists purely to avoid resource exhaustion
(socket pressure, resolver rate limits), not to model any fairness. The
pool's size stays fixed for the whole scan. Since all workers pull their
work from a single ordered source, under a concurrency of one a scan
processes its candidates strictly sequentially in wordlist order.

Transient lookup failures (timeouts, network errors) get a single immediate
retry by the same worker before the candidate is recorded as unresolved;
the number of retries can be tuned with [WithRetries]. An authoritative
“no such name” is never retried.

Cancellation is cooperative: workers stop pulling new work, in-flight
lookups are bounded by their per-attempt timeout, and never-dispatched
candidates are dropped without being counted. A cancelled scan still yields
a valid, just partial, report.

Under its hood, the scheduler leverages [gammazero/workerpool] as the
limiting goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package scan
