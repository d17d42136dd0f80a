// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package types

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("failure reasons", func() {

	It("renders clear-text reasons", func() {
		Expect(NameNotFound.String()).To(Equal("name not found"))
		Expect(Timeout.String()).To(Equal("timeout"))
		Expect(NetworkError.String()).To(Equal("network error"))
		Expect(Other.String()).To(Equal("other"))
		Expect(FailureReason(42).String()).To(Equal("FailureReason(42)"))
	})

	It("knows which failures are worth a retry", func() {
		Expect(Timeout.Transient()).To(BeTrue())
		Expect(NetworkError.Transient()).To(BeTrue())
		Expect(NameNotFound.Transient()).To(BeFalse())
		Expect(Other.Transient()).To(BeFalse())
	})

	It("keeps resolved and unresolved outcomes apart", func() {
		cand := Candidate{Label: "www", FQDN: "www.example.org."}
		var out ResolutionOutcome = &ResolvedValue{Cand: cand, Addrs: []string{"192.0.2.1"}}
		Expect(out.Resolved()).To(BeTrue())
		Expect(out.Addresses()).To(ConsistOf("192.0.2.1"))
		reason, err := out.Failure()
		Expect(reason).To(BeZero())
		Expect(err).NotTo(HaveOccurred())

		out = &UnresolvedValue{Cand: cand, Why: Timeout}
		Expect(out.Resolved()).To(BeFalse())
		Expect(out.Addresses()).To(BeNil())
		reason, _ = out.Failure()
		Expect(reason).To(Equal(Timeout))
	})

})
