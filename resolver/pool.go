// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/domainhunter/domainhunter/types"

	"github.com/miekg/dns"
)

// resolvConf is the system resolver configuration consulted by
// [SystemAddress].
const resolvConf = "/etc/resolv.conf"

// fallbackAddress is used when the system resolver configuration cannot be
// read.
const fallbackAddress = "8.8.8.8:53"

// Pool is a size-limited pool of DNS client connections talking to the same
// DNS resolver address. It implements [Resolver]: each Resolve call grabs a
// free connection, queries the candidate's A and AAAA records over it, and
// puts the connection back.
type Pool struct {
	clnt *dns.Client
	mu   sync.Mutex // protects the pool of DNS connections
	free []*dns.Conn
}

var _ Resolver = (*Pool)(nil)

// PoolOption can be passed to New when creating new [Pool] objects.
type PoolOption func(*Pool)

// WithNet selects the transport ("udp" or "tcp") for talking to the
// resolver; the default is "udp".
func WithNet(network string) PoolOption {
	return func(p *Pool) {
		p.clnt.Net = network
	}
}

// New returns a pool of the specified size of DNS client connections, all
// talking to the resolver at addr. If addr carries no port, port 53 is
// assumed. The passed context is used for dialing the connections only; the
// per-lookup timeout is taken from the context passed to Resolve.
func New(ctx context.Context, size int, addr string, options ...PoolOption) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("resolver: pool size must be at least 1, got %d", size)
	}
	if !strings.Contains(addr, ":") {
		addr += ":53"
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, fmt.Errorf("resolver: invalid resolver address %q: %w", addr, err)
	}
	pool := &Pool{
		clnt: &dns.Client{Net: "udp"},
	}
	for _, opt := range options {
		opt(pool)
	}
	free := make([]*dns.Conn, 0, size)
	for i := 0; i < size; i++ {
		conn, err := pool.clnt.DialContext(ctx, addr)
		if err != nil {
			// Immediately release all connections created so far.
			for _, conn := range free {
				conn.Close()
			}
			return nil, fmt.Errorf("resolver: cannot dial %q: %w", addr, err)
		}
		free = append(free, conn)
	}
	pool.free = free
	return pool, nil
}

// SystemAddress returns the address of the first nameserver configured in
// /etc/resolv.conf, falling back to a public resolver when the system
// configuration cannot be read.
func SystemAddress() string {
	conf, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil || len(conf.Servers) == 0 {
		return fallbackAddress
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port)
}

// Resolve performs a single forward lookup of the candidate's name,
// querying first the A and then the AAAA records. A name answering with at
// least one address resolves; a name answering NXDOMAIN, or answering
// without any address records, is recorded as NameNotFound. Transport
// problems and timeouts are classified via their failure reason so that the
// scheduler can decide about a retry.
func (p *Pool) Resolve(ctx context.Context, cand types.Candidate) types.ResolutionOutcome {
	conn := p.get()
	defer p.put(conn)

	var addrs []string
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		// don't fire the next query if the lookup has already been
		// cancelled or timed out.
		select {
		case <-ctx.Done():
			return &types.UnresolvedValue{
				Cand:   cand,
				Why:    reasonForError(ctx.Err()),
				Detail: ctx.Err(),
			}
		default:
		}
		msg := dns.Msg{
			MsgHdr: dns.MsgHdr{Id: dns.Id()},
		}
		msg.SetQuestion(dns.Fqdn(cand.FQDN), qtype)
		r, _, err := p.clnt.ExchangeWithConnContext(ctx, &msg, conn)
		if err != nil {
			return &types.UnresolvedValue{
				Cand:   cand,
				Why:    reasonForError(err),
				Detail: err,
			}
		}
		switch r.Rcode {
		case dns.RcodeSuccess:
			// fall through to harvesting the answer section.
		case dns.RcodeNameError:
			return &types.UnresolvedValue{Cand: cand, Why: types.NameNotFound}
		case dns.RcodeServerFailure:
			return &types.UnresolvedValue{
				Cand:   cand,
				Why:    types.NetworkError,
				Detail: fmt.Errorf("server failure resolving %q", cand.FQDN),
			}
		default:
			return &types.UnresolvedValue{
				Cand:   cand,
				Why:    types.Other,
				Detail: fmt.Errorf("unexpected rcode %s resolving %q", dns.RcodeToString[r.Rcode], cand.FQDN),
			}
		}
		for _, rr := range r.Answer {
			if addrRR, ok := rr.(*dns.A); ok {
				addrs = append(addrs, addrRR.A.String())
				continue
			}
			if addrRR, ok := rr.(*dns.AAAA); ok {
				addrs = append(addrs, addrRR.AAAA.String())
			}
		}
	}
	// A name that exists but answers with neither A nor AAAA records is as
	// definitive a negative as NXDOMAIN for our purposes.
	if len(addrs) == 0 {
		return &types.UnresolvedValue{Cand: cand, Why: types.NameNotFound}
	}
	return &types.ResolvedValue{Cand: cand, Addrs: addrs}
}

// Close releases all pooled DNS client connections. Resolve must not be
// called anymore afterwards.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, conn := range p.free {
		conn.Close()
	}
	p.free = nil
}

// get pops off a free DNS client connection,
// https://ueokande.github.io/go-slice-tricks/
func (p *Pool) get() *dns.Conn {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		panic("resolver: no free DNS client connection available")
	}
	last := len(p.free) - 1
	conn := p.free[last]
	p.free = p.free[:last]
	return conn
}

// put pushes a DNS client connection back into the free list.
func (p *Pool) put(conn *dns.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, conn)
}

// reasonForError classifies a lookup error into a failure reason.
func reasonForError(err error) types.FailureReason {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return types.Timeout
	case errors.As(err, &nerr) && nerr.Timeout():
		return types.Timeout
	case errors.Is(err, context.Canceled):
		return types.Other
	default:
		return types.NetworkError
	}
}
