// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

var (
	domainName      *string
	wordlistPath    *string
	concurrency     *uint
	lookupTimeout   *time.Duration
	qps             *uint
	nameserver      *string
	outputPath      *string
	verifyAddrs     *bool
	spinnerInterval *time.Duration
	quiet           *bool
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "domainhunter [flags]",
		Short:   "domainhunter resolves wordlist-generated subdomain candidates of a target domain",
		Version: "1.0",
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *domainName == "" {
				return fmt.Errorf("--domain must not be empty")
			}
			if *wordlistPath == "" {
				return fmt.Errorf("--wordlist must not be empty")
			}
			if *concurrency < 1 || *concurrency > 10000 {
				return fmt.Errorf("--concurrency out of range [1..10000]")
			}
			if *lookupTimeout <= 0 {
				return fmt.Errorf("--timeout must be positive")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debug("debug logging enabled")
			}
			return ScanAndReport(context.Background())
		},
	}
	// Sets up the flags.
	domainName = rootCmd.PersistentFlags().StringP(
		"domain", "d", "", "target domain to scan for subdomains")
	wordlistPath = rootCmd.PersistentFlags().StringP(
		"wordlist", "w", "", "wordlist file with subdomain labels")
	concurrency = rootCmd.PersistentFlags().UintP(
		"concurrency", "c", 50, "number of concurrent DNS lookups")
	outputPath = rootCmd.PersistentFlags().StringP(
		"output", "o", "", "file to save the resolved names to")
	lookupTimeout = rootCmd.PersistentFlags().Duration(
		"timeout", 5*time.Second, "timeout of a single lookup attempt")
	qps = rootCmd.PersistentFlags().Uint(
		"qps", 0, "cap on lookups per second; 0 means unlimited")
	nameserver = rootCmd.PersistentFlags().String(
		"nameserver", "", "DNS resolver address (host[:port]); the system resolver when empty")
	verifyAddrs = rootCmd.PersistentFlags().Bool(
		"verify", false, "ping the resolved addresses to verify their liveness")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	quiet = rootCmd.PersistentFlags().BoolP(
		"quiet", "q", false, "suppress the banner")
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	_ = rootCmd.MarkPersistentFlagRequired("domain")
	_ = rootCmd.MarkPersistentFlagRequired("wordlist")
	return
}
