// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/domainhunter/domainhunter/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// timeouterr mimics a net.Error timeout without any real networking.
type timeouterr struct{}

func (timeouterr) Error() string   { return "deadline huffed and puffed and blew by" }
func (timeouterr) Timeout() bool   { return true }
func (timeouterr) Temporary() bool { return true }

var _ net.Error = (*timeouterr)(nil)

var _ = Describe("DNS connection pool", func() {

	It("rejects silly pool sizes and addresses", func() {
		_, err := New(context.Background(), 0, "127.0.0.1:53")
		Expect(err).To(MatchError(ContainSubstring("pool size")))
		_, err = New(context.Background(), 1, "not:a:valid:address:at:all")
		Expect(err).To(MatchError(ContainSubstring("invalid resolver address")))
	})

	It("assumes port 53 when the address has none", func() {
		// UDP "dialing" doesn't actually contact the resolver, so this
		// succeeds regardless of what listens at the far end.
		pool := Successful(New(context.Background(), 2, "127.0.0.1"))
		defer pool.Close()
		Expect(pool.free).To(HaveLen(2))
	})

	It("hands out and takes back pooled connections", func() {
		pool := Successful(New(context.Background(), 2, "127.0.0.1:53"))
		defer pool.Close()
		conn1 := pool.get()
		conn2 := pool.get()
		Expect(conn1).NotTo(BeIdenticalTo(conn2))
		pool.put(conn1)
		pool.put(conn2)
		Expect(pool.free).To(HaveLen(2))
	})

	It("reports resolution failures against a dead resolver", func() {
		pool := Successful(New(context.Background(), 1, "127.0.0.1:1"))
		defer pool.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		outcome := pool.Resolve(ctx, types.Candidate{Label: "tld", FQDN: "tld.rottennet."})
		Expect(outcome.Resolved()).To(BeFalse())
		reason, _ := outcome.Failure()
		// Depending on the platform we either get an ICMP port-unreachable
		// induced read error or run into the lookup deadline.
		Expect(reason).To(BeElementOf(types.NetworkError, types.Timeout))
	})

	It("classifies lookup errors", func() {
		Expect(reasonForError(context.DeadlineExceeded)).To(Equal(types.Timeout))
		Expect(reasonForError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded))).To(Equal(types.Timeout))
		Expect(reasonForError(timeouterr{})).To(Equal(types.Timeout))
		Expect(reasonForError(context.Canceled)).To(Equal(types.Other))
		Expect(reasonForError(errors.New("connection refused"))).To(Equal(types.NetworkError))
	})

	It("returns a usable system resolver address", func() {
		addr := SystemAddress()
		_, _, err := net.SplitHostPort(addr)
		Expect(err).NotTo(HaveOccurred(), "system resolver address %q lacks a port", addr)
	})

})
