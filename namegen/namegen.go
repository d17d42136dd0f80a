// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package namegen

import (
	"context"
	"errors"
	"strings"

	"github.com/domainhunter/domainhunter/types"

	"github.com/miekg/dns"
)

// ErrEmptyDomain is returned by New when the base domain is empty.
var ErrEmptyDomain = errors.New("namegen: base domain must not be empty")

// Generator produces the sequence of fully-qualified candidate names for a
// scan by combining each wordlist label with the base domain. Empty labels
// are skipped silently and don't count towards the total.
type Generator struct {
	domain string
	labels []string
	total  int
}

// New returns a Generator for the given base domain and ordered label
// sequence. The labels are expected to arrive already trimmed (the wordlist
// package's job); whatever empty labels remain are skipped. New fails with
// [ErrEmptyDomain] if the base domain is empty.
func New(domain string, labels []string) (*Generator, error) {
	domain = strings.Trim(strings.TrimSpace(domain), ".")
	if domain == "" {
		return nil, ErrEmptyDomain
	}
	total := 0
	for _, label := range labels {
		if label != "" {
			total++
		}
	}
	return &Generator{
		domain: domain,
		labels: labels,
		total:  total,
	}, nil
}

// Total returns the number of candidates this generator will emit; empty
// labels are not included.
func (g *Generator) Total() int { return g.total }

// Generate returns a channel streaming the candidates in label order,
// closed after the last candidate. When the passed context gets cancelled
// the stream stops early (and then still gets closed), dropping all not yet
// emitted candidates.
func (g *Generator) Generate(ctx context.Context) <-chan types.Candidate {
	candidates := make(chan types.Candidate)
	go func() {
		defer close(candidates)
		for _, label := range g.labels {
			if label == "" {
				continue
			}
			cand := types.Candidate{
				Label: label,
				FQDN:  dns.Fqdn(label + "." + g.domain),
			}
			select {
			case candidates <- cand:
			case <-ctx.Done():
				return
			}
		}
	}()
	return candidates
}
