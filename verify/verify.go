// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package verify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/go-ping/ping"
)

// Verdict reports the liveness of a single resolved IP address.
type Verdict struct {
	Address string `json:"address"`
	Alive   bool   `json:"alive"`
	Err     error  `json:"-"` // optional details when the probe could not run.
}

// Pinger validates resolved IP addresses by pinging them and streaming the
// verdicts to the channel returned by New. Pingers use a goroutine-limited
// worker pool, and they remember which addresses they already probed, so
// an address resolved by many names gets pinged only once.
type Pinger struct {
	count               int           // number of pings per address.
	interval            time.Duration // distance between pings.
	thresholdPercentage int           // percentage of successful pings for a live address.
	unprivileged        bool          // if true, uses UDP-based pings instead of privileged ICMPs.

	workers  *workerpool.WorkerPool
	verdicts chan Verdict
	mu       sync.Mutex // protects the set of addresses already probed.
	seen     map[string]struct{}
	stopOnce sync.Once
}

// Option can be passed to New when creating new [Pinger] objects.
type Option func(*Pinger)

// New returns a new [Pinger] with a maximum worker pool of the specified
// size, together with its verdict stream. The new Pinger defaults to
// pinging 3 times at intervals of 1s, with a liveness threshold of 50(%).
//
// The Pinger can be configured during creation using several options:
//   - [WithCount]
//   - [WithInterval]
//   - [WithThresholdPercentage]
//   - [AsUnprivileged]
func New(size int, options ...Option) (*Pinger, <-chan Verdict) {
	verdicts := make(chan Verdict, size)
	pinger := &Pinger{
		count:               3,
		interval:            time.Second,
		thresholdPercentage: 50,
		workers:             workerpool.New(size),
		verdicts:            verdicts,
		seen:                map[string]struct{}{},
	}
	for _, opt := range options {
		opt(pinger)
	}
	return pinger, verdicts
}

// WithCount sets the number of pings for testing the liveness of an IP
// address.
func WithCount(count uint) Option {
	return func(p *Pinger) {
		p.count = int(count)
	}
}

// WithInterval sets the interval between consecutive pings.
func WithInterval(interval time.Duration) Option {
	return func(p *Pinger) {
		p.interval = interval
	}
}

// AsUnprivileged tells the Pinger to carry out unprivileged pings using UDP
// instead of ICMP packets.
func AsUnprivileged() Option {
	return func(p *Pinger) {
		p.unprivileged = true
	}
}

// WithThresholdPercentage takes a percentage between 0 and 100 that
// specifies the percentage of successful ping responses required for an
// address to count as alive.
func WithThresholdPercentage(threshold uint) Option {
	if threshold > 100 {
		panic(fmt.Errorf("verify: threshold must be a percentage between 0 <= threshold <= 100, got: %d",
			threshold))
	}
	return func(p *Pinger) {
		p.thresholdPercentage = int(threshold)
	}
}

// Validate schedules a liveness probe for the specified address, unless
// this Pinger already probed (or is probing) that address: duplicates are
// silently dropped, so the verdict stream carries at most one verdict per
// distinct address.
//
// When the passed context gets cancelled, pending probes are aborted and
// their verdicts are not echoed to the verdict stream at all. Spurious
// verdicts might still appear due to the uncontrollable order of verdict
// sending and cancellation detection.
func (p *Pinger) Validate(ctx context.Context, addr string) {
	p.mu.Lock()
	if _, ok := p.seen[addr]; ok {
		p.mu.Unlock()
		return
	}
	p.seen[addr] = struct{}{}
	p.mu.Unlock()
	p.workers.Submit(func() {
		verdict := p.probe(ctx, addr)
		select {
		case p.verdicts <- verdict:
		case <-ctx.Done():
		}
	})
}

// probe does the real work of pinging a single address and passing the
// verdict. An address is considered dead if the percentage of successfully
// received ping replies doesn't reach the Pinger's threshold; this allows
// for some legroom.
func (p *Pinger) probe(ctx context.Context, addr string) Verdict {
	// A quick and non-blocking check to see if the context has been
	// cancelled before we start our work...
	select {
	case <-ctx.Done():
		return Verdict{Address: addr, Err: ctx.Err()}
	default:
	}
	pinger, err := ping.NewPinger(addr)
	if err != nil {
		return Verdict{Address: addr, Err: err}
	}
	pinger.SetPrivileged(!p.unprivileged)
	pinger.Count = p.count
	pinger.Interval = p.interval
	pinger.Timeout = time.Duration(p.count)*p.interval + time.Second
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-stopped:
		}
	}()
	if err := pinger.Run(); err != nil {
		return Verdict{Address: addr, Err: err}
	}
	stats := pinger.Statistics()
	return Verdict{
		Address: addr,
		Alive:   stats.PacketsRecv*100 >= p.thresholdPercentage*p.count,
	}
}

// StopWait waits for all scheduled liveness probes to finish, then shuts
// down the pool and closes the verdict channel. Calling StopWait multiple
// times is fine.
func (p *Pinger) StopWait() {
	p.stopOnce.Do(func() {
		p.workers.StopWait()
		close(p.verdicts)
	})
}
