// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/domainhunter/domainhunter/resolver"
	"github.com/domainhunter/domainhunter/scan"
	"github.com/domainhunter/domainhunter/verify"
	"github.com/domainhunter/domainhunter/wordlist"

	"github.com/gosuri/uilive"
	log "github.com/sirupsen/logrus"
)

// ScanAndReport loads the wordlist, runs the subdomain scan with a live
// progress display, optionally verifies the liveness of the resolved
// addresses, and finally persists the results. A first interrupt signal
// cancels the scan but still yields the partial report.
func ScanAndReport(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !*quiet {
		fmt.Println(bannerStyle.Styled(banner))
	}

	labels, err := wordlist.Load(*wordlistPath)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return fmt.Errorf("no usable labels in wordlist %q", *wordlistPath)
	}

	addr := *nameserver
	if addr == "" {
		addr = resolver.SystemAddress()
	}
	pool, err := resolver.New(ctx, int(*concurrency), addr)
	if err != nil {
		return fmt.Errorf("cannot set up the DNS connection pool: %w", err)
	}
	defer pool.Close()

	// Create the (concurrency-safe) display model the scan engine reports
	// into and the renderer reads from.
	model := newScanModel()
	options := []scan.Option{
		scan.WithProgress(model, 100*time.Millisecond),
		scan.WithOutcomeFunc(model.Record),
	}
	if *qps > 0 {
		options = append(options, scan.WithRateLimit(int(*qps)))
	}
	scanner, err := scan.New(scan.Config{
		Domain:      *domainName,
		Labels:      labels,
		Concurrency: int(*concurrency),
		Timeout:     *lookupTimeout,
		Resolver:    pool,
	}, options...)
	if err != nil {
		return err
	}

	model.Progress(scanner.Snapshot())

	// Fire off the rendering goroutine. We deliberately avoid uilive's
	// background updating mode via Start(), as it may flush anytime with
	// the buffer only partially rendered, making the terminal output very
	// flickery; instead we explicitly flush after each completed render.
	renderingStop := make(chan struct{})
	renderingDone := make(chan struct{})
	go func() {
		term := uilive.New()
		renderer := newRenderer(term)
		defer func() {
			renderModel(term, renderer, model)
			renderer.Stop()
			close(renderingDone)
		}()
		renderModel(term, renderer, model)
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				renderModel(term, renderer, model)
			case <-renderingStop:
				return
			}
		}
	}()

	start := time.Now()
	results := scanner.Scan(ctx)
	elapsed := time.Since(start)

	if *verifyAddrs && len(results) > 0 {
		model.SetVerdicts(verifyResults(ctx, results))
	}
	model.Finish()
	close(renderingStop)
	<-renderingDone

	completed, total, resolved := scanner.Snapshot()
	if ctx.Err() != nil {
		fmt.Println(summaryStyle.Styled("scan interrupted; the report is partial"))
	}
	fmt.Println(summaryStyle.Styled(fmt.Sprintf(
		"scanned %d of %d candidates in %s, %d resolved",
		completed, total, elapsed.Truncate(10*time.Millisecond), resolved)))

	if *outputPath != "" {
		if err := writeResults(*outputPath, results); err != nil {
			return err
		}
		fmt.Printf("results saved to: %s\n", *outputPath)
	}
	return nil
}

// verifyResults pings each distinct resolved address once and returns the
// liveness verdicts, keyed by address.
func verifyResults(ctx context.Context, results []scan.ResolvedName) map[string]bool {
	options := []verify.Option{
		verify.WithCount(3),
		verify.WithInterval(200 * time.Millisecond),
	}
	// Raw ICMP sockets need privileges; fall back to UDP pings otherwise.
	if os.Geteuid() != 0 {
		options = append(options, verify.AsUnprivileged())
	}
	pinger, verdicts := verify.New(int(*concurrency), options...)
	go func() {
		for _, name := range results {
			for _, addr := range name.Addresses {
				pinger.Validate(ctx, addr)
			}
		}
		pinger.StopWait()
	}()
	alive := map[string]bool{}
	for verdict := range verdicts {
		if verdict.Err != nil {
			log.WithField("address", verdict.Address).
				Debugf("liveness probe failed: %v", verdict.Err)
		}
		alive[verdict.Address] = verdict.Alive
	}
	return alive
}

// renderModel renders the current scan state and then flushes it to the
// terminal.
func renderModel(term *uilive.Writer, r *renderer, model *scanModel) {
	r.Render(model.View())
	term.Flush()
}
