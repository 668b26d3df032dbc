// Package navigation decides how a navigation shell lays out its pane.
//
// ResolveDisplayMode turns a requested DisplayMode and the measured width
// into the mode to render. NeedsOverlay decides whether an expanded compact
// pane floats over the content or pushes it aside. Shell is the explicit
// state record a host keeps between frames.
package navigation

import (
	"math"
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// DisplayMode is the layout style of the navigation pane.
type DisplayMode int

const (
	// Automatic picks Minimal, Compact or Open from the available width.
	// It is never rendered directly.
	Automatic DisplayMode = iota
	// Minimal hides the pane behind a menu button.
	Minimal
	// Compact shows an icon strip that expands on demand.
	Compact
	// Open shows the full pane next to the content.
	Open
	// Top shows the items in a horizontal bar above the content.
	Top
)

// Width thresholds for Automatic.
const (
	// MinimalMaxWidth is the largest width resolved to Minimal.
	MinimalMaxWidth = 640.0
	// OpenMinWidth is the smallest width resolved to Open.
	OpenMinWidth = 1008.0
	// OverlayWidthDivisor keeps an inline pane from taking more than
	// 1/2.5 of the width.
	OverlayWidthDivisor = 2.5
)

var displayModeNames = map[DisplayMode]string{
	Automatic: "automatic",
	Minimal:   "minimal",
	Compact:   "compact",
	Open:      "open",
	Top:       "top",
}

func (m DisplayMode) String() string {
	if name, ok := displayModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseDisplayMode parses a case-insensitive mode name. An empty string is Automatic.
func ParseDisplayMode(s string) (DisplayMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return Automatic, nil
	}
	for mode, name := range displayModeNames {
		if name == s {
			return mode, nil
		}
	}
	return Automatic, fluenterrors.InvalidArgument("navigation.ParseDisplayMode", "unknown display mode %q", s)
}

// ResolveDisplayMode returns requested unchanged unless it is Automatic, in
// which case the width decides: up to and including MinimalMaxWidth is
// Minimal, from OpenMinWidth on is Open, and anything between is Compact.
//
// availableWidth must be a measured width; hosts substitute the last good
// measurement when layout reports an unbounded one (see Shell.Measure).
func ResolveDisplayMode(requested DisplayMode, availableWidth float64) DisplayMode {
	if requested != Automatic {
		return requested
	}
	switch {
	case availableWidth <= MinimalMaxWidth:
		return Minimal
	case availableWidth < OpenMinWidth:
		return Compact
	default:
		return Open
	}
}

// NeedsOverlay reports whether an expanded compact pane of openPaneWidth must
// float over the content instead of expanding inline.
func NeedsOverlay(availableWidth, openPaneWidth float64) bool {
	return availableWidth/OverlayWidthDivisor <= openPaneWidth
}

// Measurable reports whether width can be passed to ResolveDisplayMode.
func Measurable(width float64) bool {
	return !math.IsNaN(width) && !math.IsInf(width, 0) && width >= 0
}
