package navigation

import (
	"math"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// PaneWidthPolicy holds the pane widths a shell is configured with.
type PaneWidthPolicy struct {
	// OpenPaneWidth is the width of the fully expanded pane.
	OpenPaneWidth float64
	// CompactWidth is the width of the collapsed icon strip.
	CompactWidth float64
}

// Default pane widths.
const (
	DefaultOpenPaneWidth = 320.0
	DefaultCompactWidth  = 50.0
)

// DefaultPaneWidthPolicy returns the default pane widths.
func DefaultPaneWidthPolicy() PaneWidthPolicy {
	return PaneWidthPolicy{OpenPaneWidth: DefaultOpenPaneWidth, CompactWidth: DefaultCompactWidth}
}

// Validate checks that both widths are positive and finite and that the
// compact strip is narrower than the open pane.
func (p PaneWidthPolicy) Validate() error {
	const op = "navigation.PaneWidthPolicy.Validate"
	if !positiveFinite(p.OpenPaneWidth) {
		return fluenterrors.InvalidArgument(op, "open pane width %v must be positive and finite", p.OpenPaneWidth)
	}
	if !positiveFinite(p.CompactWidth) {
		return fluenterrors.InvalidArgument(op, "compact width %v must be positive and finite", p.CompactWidth)
	}
	if p.CompactWidth >= p.OpenPaneWidth {
		return fluenterrors.InvalidArgument(op, "compact width %v must be less than open pane width %v", p.CompactWidth, p.OpenPaneWidth)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
