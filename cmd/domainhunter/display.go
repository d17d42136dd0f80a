// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
)

// barWidth is the rune width of the rendered progress bar.
const barWidth = 30

// renderer renders the terminal display from views of the scan model.
type renderer struct {
	w       io.Writer
	spinner *spinner
}

// newRenderer returns a renderer object rendering to the specified
// io.Writer.
func newRenderer(w io.Writer) *renderer {
	sp := newSpinner()
	sp.Start(*spinnerInterval)
	return &renderer{
		w:       w,
		spinner: sp,
	}
}

// Stop the renderer's background ticker.
func (r *renderer) Stop() {
	r.spinner.Stop()
}

// Render one view of the scan: first the resolved names in hit order, then
// the progress line.
func (r *renderer) Render(v view) {
	// For neat display, determine the length of the longest name so that
	// the addresses column doesn't zig-zag around.
	maxlen := 0
	for _, hit := range v.hits {
		if l := len(strings.TrimSuffix(hit.fqdn, ".")); l > maxlen {
			maxlen = l
		}
	}
	for _, hit := range v.hits {
		r.renderHit(maxlen, v.verdicts, hit)
	}
	r.renderProgress(v)
}

// renderHit renders a single resolved name with its addresses, liveness
// markers (if verified), and lookup duration.
func (r *renderer) renderHit(labelwidth int, verdicts map[string]bool, h hit) {
	// pad before styling, as the invisible escape codes would otherwise
	// count towards the column width.
	name := fmt.Sprintf("%-*s", labelwidth, strings.TrimSuffix(h.fqdn, "."))
	fmt.Fprintf(r.w, "%s ->", hitNameStyle.Styled(name))
	for idx, addr := range h.addrs {
		if idx > 0 {
			fmt.Fprint(r.w, ",")
		}
		alive, verified := verdicts[addr]
		switch {
		case !verified:
			fmt.Fprint(r.w, " "+addressStyle.Styled(addr))
		case alive:
			fmt.Fprint(r.w, " "+addressStyle.Styled("✔ "+addr))
		default:
			fmt.Fprint(r.w, " "+deadAddressStyle.Styled("× "+addr))
		}
	}
	fmt.Fprintf(r.w, " %s\n", durationStyle.Styled(fmt.Sprintf("(%.2fs)", h.elapsed.Seconds())))
}

// renderProgress renders the progress bar line, spinning while the scan is
// still running.
func (r *renderer) renderProgress(v view) {
	head := "✔"
	if v.running {
		head = r.spinner.Frame()
	}
	fmt.Fprintf(r.w, "%s %s %3.0f%% (%d/%d) resolved: %d\n",
		head, progressBar(v.completed, v.total), percentage(v.completed, v.total),
		v.completed, v.total, v.resolved)
}

// progressBar builds a fixed-width textual progress bar.
func progressBar(completed, total int) string {
	filled := 0
	if total > 0 {
		filled = completed * barWidth / total
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// percentage with zero-division protection.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
