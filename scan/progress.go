// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package scan

// ProgressSink consumes the periodic progress snapshots of a running scan.
// Implementations render progress bars, write log lines, or whatever else;
// the scan core only ever emits counts.
type ProgressSink interface {
	Progress(completed, total, resolved int)
}

// ProgressFunc adapts a plain function to the [ProgressSink] interface.
type ProgressFunc func(completed, total, resolved int)

// Progress calls f.
func (f ProgressFunc) Progress(completed, total, resolved int) { f(completed, total, resolved) }
