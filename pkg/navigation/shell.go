package navigation

import fluenterrors "github.com/go-drift/fluent/pkg/errors"

// PaneState is the resolved layout of the pane. It is one of MinimalPane,
// CompactPane, OpenPane or TopPane.
type PaneState interface {
	// Mode returns the display mode this state renders.
	Mode() DisplayMode
	paneState()
}

// MinimalPane renders only a menu button.
type MinimalPane struct{}

// CompactPane renders the icon strip.
type CompactPane struct {
	// Overlay is true when the expanded pane must float over the content.
	Overlay bool
	// OverlayOpen is true while the floating pane is shown. It is always
	// false when Overlay is false.
	OverlayOpen bool
}

// OpenPane renders the full pane beside the content.
type OpenPane struct{}

// TopPane renders a horizontal bar above the content.
type TopPane struct{}

func (MinimalPane) Mode() DisplayMode { return Minimal }
func (CompactPane) Mode() DisplayMode { return Compact }
func (OpenPane) Mode() DisplayMode    { return Open }
func (TopPane) Mode() DisplayMode     { return Top }

func (MinimalPane) paneState() {}
func (CompactPane) paneState() {}
func (OpenPane) paneState()    {}
func (TopPane) paneState()     {}

// Shell is the view state of a navigation shell, owned by the host and
// replaced on every transition. Methods never modify the receiver.
type Shell struct {
	// Requested is the configured mode, possibly Automatic.
	Requested DisplayMode
	// Policy supplies the open pane width for the overlay decision.
	Policy PaneWidthPolicy
	// LastWidth is the last measurable width passed to Measure.
	LastWidth float64
	// HasWidth reports whether LastWidth has been set.
	HasWidth bool
	// State is the last resolved pane state. It is nil until the first
	// measurement when Requested is Automatic.
	State PaneState
}

// NewShell returns a Shell for requested. A non-Automatic request is
// resolved immediately; Automatic waits for the first Measure.
func NewShell(requested DisplayMode, policy PaneWidthPolicy) (Shell, error) {
	if _, ok := displayModeNames[requested]; !ok {
		return Shell{}, fluenterrors.InvalidArgument("navigation.NewShell", "unknown display mode %d", int(requested))
	}
	if err := policy.Validate(); err != nil {
		return Shell{}, err
	}
	s := Shell{Requested: requested, Policy: policy}
	if requested != Automatic {
		s = s.enter(requested)
	}
	return s, nil
}

// Mode returns the mode to render, or Automatic if nothing has been
// resolved yet.
func (s Shell) Mode() DisplayMode {
	if s.State == nil {
		return Automatic
	}
	return s.State.Mode()
}

// Measure resolves the shell against a new layout width. A width that is
// NaN, infinite or negative is replaced by the last good one; if there is
// none the previous state is kept as is.
func (s Shell) Measure(width float64) Shell {
	if Measurable(width) {
		s.LastWidth = width
		s.HasWidth = true
	} else if !s.HasWidth && s.Requested == Automatic {
		return s
	}
	return s.enter(ResolveDisplayMode(s.Requested, s.LastWidth))
}

// WithRequested returns s with a new requested mode, re-resolved against the
// last measured width. An unknown mode is an error and leaves s unchanged.
func (s Shell) WithRequested(requested DisplayMode) (Shell, error) {
	if _, ok := displayModeNames[requested]; !ok {
		return s, fluenterrors.InvalidArgument("navigation.Shell.WithRequested", "unknown display mode %d", int(requested))
	}
	s.Requested = requested
	if requested == Automatic && !s.HasWidth {
		s.State = nil
		return s, nil
	}
	return s.enter(ResolveDisplayMode(requested, s.LastWidth)), nil
}

// Toggle opens or closes the floating pane. It only has an effect in compact
// mode when the pane floats.
func (s Shell) Toggle() Shell {
	if c, ok := s.State.(CompactPane); ok && c.Overlay {
		c.OverlayOpen = !c.OverlayOpen
		s.State = c
	}
	return s
}

// Dismiss closes the floating pane, as a tap outside it does.
func (s Shell) Dismiss() Shell {
	if c, ok := s.State.(CompactPane); ok {
		c.OverlayOpen = false
		s.State = c
	}
	return s
}

func (s Shell) enter(mode DisplayMode) Shell {
	switch mode {
	case Minimal:
		s.State = MinimalPane{}
	case Compact:
		// Without a measurement the pane cannot be shown inline safely.
		overlay := !s.HasWidth || NeedsOverlay(s.LastWidth, s.Policy.OpenPaneWidth)
		next := CompactPane{Overlay: overlay}
		if prev, ok := s.State.(CompactPane); ok && overlay {
			next.OverlayOpen = prev.OverlayOpen
		}
		s.State = next
	case Open:
		s.State = OpenPane{}
	case Top:
		s.State = TopPane{}
	default:
		s.State = nil
	}
	return s
}
