// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	hitNameStyle     = termenv.Style{}.Foreground(termenv.ANSIGreen)
	addressStyle     = termenv.Style{}.Foreground(termenv.ANSICyan)
	deadAddressStyle = termenv.Style{}.Foreground(termenv.ANSIRed)
	durationStyle    = termenv.Style{}.Foreground(termenv.ANSIYellow)
)

var (
	bannerStyle  = termenv.Style{}.Foreground(termenv.ANSIMagenta).Bold()
	summaryStyle = termenv.Style{}.Bold()
)
