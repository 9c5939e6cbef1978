/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import "fmt"

// RootSelector is the selector for default-theme and baseline output.
const RootSelector = ":root"

// DefaultBreakpointWidths maps breakpoint names to their min-width in px.
var DefaultBreakpointWidths = map[string]int{
	"xs": 360,
	"sm": 640,
	"md": 768,
	"lg": 1024,
	"xl": 1280,
}

// Selector scopes a cell's tokens: a rule selector, optionally nested
// in a media query.
type Selector struct {
	// Rule is the rule selector, e.g. ":root" or ".dark".
	Rule string

	// Media is the media query prelude, e.g. "(min-width: 768px)". Empty means none.
	Media string
}

// Root returns the :root selector.
func Root() Selector {
	return Selector{Rule: RootSelector}
}

// ForTheme returns :root for the default theme and .<theme> otherwise.
func ForTheme(theme, defaultTheme string) Selector {
	if theme == defaultTheme {
		return Root()
	}
	return Selector{Rule: "." + theme}
}

// ForBreakpoint returns :root for the baseline breakpoint and a min-width
// media query otherwise. Breakpoints missing from widths fall back to a
// --breakpoint-<name> custom property.
func ForBreakpoint(breakpoint, baseline string, widths map[string]int) Selector {
	if breakpoint == baseline {
		return Root()
	}
	width := fmt.Sprintf("var(--breakpoint-%s)", breakpoint)
	if px, ok := widths[breakpoint]; ok {
		width = fmt.Sprintf("%dpx", px)
	}
	return Selector{Rule: RootSelector, Media: fmt.Sprintf("(min-width: %s)", width)}
}

// Key identifies the selector in typed-object output.
func (s Selector) Key() string {
	if s.Media != "" {
		return "@media " + s.Media
	}
	if s.Rule == "" {
		return RootSelector
	}
	return s.Rule
}
