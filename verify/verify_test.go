// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package verify

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
)

var _ = Describe("address liveness verification", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("handles multiple stops", func() {
		pinger, _ := New(1)
		for i := 0; i < 2; i++ {
			By(fmt.Sprintf("%d round", i+1))
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				pinger.StopWait()
				close(done)
			}()
			Eventually(done).WithTimeout(1 * time.Second).Should(BeClosed())
		}
	})

	It("rejects a silly liveness threshold", func() {
		Expect(func() { WithThresholdPercentage(101) }).To(Panic())
	})

	It("passes an error verdict for an unprobeable address", NodeTimeout(10*time.Second),
		func(ctx context.Context) {
			pinger, verdicts := New(1)
			pinger.Validate(ctx, "no.such.address.invalid.")
			var verdict Verdict
			Eventually(verdicts).WithContext(ctx).Should(Receive(&verdict))
			Expect(verdict.Alive).To(BeFalse())
			Expect(verdict.Err).To(HaveOccurred())
			pinger.StopWait()
			Eventually(verdicts).Should(BeClosed())
		})

	It("probes each distinct address only once", NodeTimeout(10*time.Second),
		func(ctx context.Context) {
			pinger, verdicts := New(2)
			pinger.Validate(ctx, "no.such.address.invalid.")
			pinger.Validate(ctx, "no.such.address.invalid.")
			pinger.StopWait()
			count := 0
			for range verdicts {
				count++
			}
			Expect(count).To(Equal(1), "duplicate address must not be probed again")
		})

})
