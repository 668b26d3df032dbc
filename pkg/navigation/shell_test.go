package navigation

import (
	"errors"
	"math"
	"testing"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

func newAutomaticShell(t *testing.T) Shell {
	t.Helper()
	s, err := NewShell(Automatic, DefaultPaneWidthPolicy())
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	return s
}

func TestShellMeasure(t *testing.T) {
	s := newAutomaticShell(t)
	if s.State != nil || s.Mode() != Automatic {
		t.Fatalf("unmeasured shell should have no state, got %#v", s.State)
	}

	tests := []struct {
		width float64
		want  PaneState
	}{
		{500, MinimalPane{}},
		{700, CompactPane{Overlay: true}},
		{900, CompactPane{Overlay: false}},
		{1200, OpenPane{}},
	}
	for _, tt := range tests {
		got := s.Measure(tt.width)
		if got.State != tt.want {
			t.Errorf("Measure(%v).State = %#v, want %#v", tt.width, got.State, tt.want)
		}
		if got.LastWidth != tt.width || !got.HasWidth {
			t.Errorf("Measure(%v) did not record the width", tt.width)
		}
	}
}

func TestShellMeasureUnmeasurableKeepsLastWidth(t *testing.T) {
	s := newAutomaticShell(t).Measure(1100)
	for _, w := range []float64{math.Inf(1), math.NaN(), -5} {
		next := s.Measure(w)
		if next.Mode() != Open {
			t.Errorf("Measure(%v) mode = %v, want sticky Open", w, next.Mode())
		}
		if next.LastWidth != 1100 {
			t.Errorf("Measure(%v) LastWidth = %v, want 1100", w, next.LastWidth)
		}
	}

	unmeasured := newAutomaticShell(t).Measure(math.Inf(1))
	if unmeasured.State != nil {
		t.Errorf("unmeasurable first width should leave state unresolved, got %#v", unmeasured.State)
	}
}

func TestShellToggle(t *testing.T) {
	s := newAutomaticShell(t).Measure(700)
	s = s.Toggle()
	if s.State != (CompactPane{Overlay: true, OverlayOpen: true}) {
		t.Fatalf("Toggle() state = %#v, want open overlay", s.State)
	}

	// Re-measuring within overlay territory keeps the overlay open.
	s = s.Measure(750)
	if s.State != (CompactPane{Overlay: true, OverlayOpen: true}) {
		t.Errorf("Measure(750) state = %#v, want open overlay", s.State)
	}

	// Growing past the ratio forces it closed.
	s = s.Measure(900)
	if s.State != (CompactPane{Overlay: false, OverlayOpen: false}) {
		t.Errorf("Measure(900) state = %#v, want closed inline", s.State)
	}
	if s.Toggle().State != s.State {
		t.Error("Toggle() should be a no-op when the pane expands inline")
	}

	// Shrinking back does not reopen it.
	s = s.Measure(700)
	if s.State != (CompactPane{Overlay: true}) {
		t.Errorf("Measure(700) state = %#v, want closed overlay", s.State)
	}

	open := s.Toggle()
	if closed := open.Toggle(); closed.State != (CompactPane{Overlay: true}) {
		t.Errorf("double Toggle() state = %#v", closed.State)
	}
	if dismissed := open.Dismiss(); dismissed.State != (CompactPane{Overlay: true}) {
		t.Errorf("Dismiss() state = %#v", dismissed.State)
	}
	if open.State != (CompactPane{Overlay: true, OverlayOpen: true}) {
		t.Error("methods must not modify the receiver")
	}
}

func TestShellToggleOutsideCompact(t *testing.T) {
	for _, w := range []float64{400, 1500} {
		s := newAutomaticShell(t).Measure(w)
		if s.Toggle().State != s.State || s.Dismiss().State != s.State {
			t.Errorf("Toggle/Dismiss changed state at width %v", w)
		}
	}
}

func TestShellLeavingCompactResetsOverlay(t *testing.T) {
	s := newAutomaticShell(t).Measure(700).Toggle()
	s = s.Measure(500).Measure(700)
	if s.State != (CompactPane{Overlay: true}) {
		t.Errorf("state = %#v, want closed overlay after leaving compact", s.State)
	}
}

func TestShellExplicitModes(t *testing.T) {
	s, err := NewShell(Top, DefaultPaneWidthPolicy())
	if err != nil {
		t.Fatalf("NewShell(Top): %v", err)
	}
	if s.State != (TopPane{}) {
		t.Fatalf("state = %#v, want TopPane", s.State)
	}
	for _, w := range []float64{300, 900, 2000} {
		if got := s.Measure(w).Mode(); got != Top {
			t.Errorf("Measure(%v) mode = %v, want Top", w, got)
		}
	}

	c, _ := NewShell(Compact, DefaultPaneWidthPolicy())
	if c.State != (CompactPane{Overlay: true}) {
		t.Errorf("unmeasured compact state = %#v, want overlay", c.State)
	}
	if got := c.Measure(2000).State; got != (CompactPane{Overlay: false}) {
		t.Errorf("wide compact state = %#v, want inline", got)
	}
}

func TestShellWithRequested(t *testing.T) {
	s := newAutomaticShell(t).Measure(1200)
	tests := []struct {
		name      string
		from      Shell
		requested DisplayMode
		want      PaneState
	}{
		{"explicit top", s, Top, TopPane{}},
		{"explicit minimal", s, Minimal, MinimalPane{}},
		{"back to automatic", s, Automatic, OpenPane{}},
		{"compact at wide width", s, Compact, CompactPane{Overlay: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.WithRequested(tt.requested)
			if err != nil {
				t.Fatalf("WithRequested(%v): %v", tt.requested, err)
			}
			if got.Requested != tt.requested || got.State != tt.want {
				t.Errorf("WithRequested(%v) = {%v %#v}, want {%v %#v}", tt.requested, got.Requested, got.State, tt.requested, tt.want)
			}
		})
	}

	fresh, _ := NewShell(Open, DefaultPaneWidthPolicy())
	got, err := fresh.WithRequested(Automatic)
	if err != nil || got.State != nil {
		t.Errorf("automatic without width should be unresolved, got %#v, err = %v", got.State, err)
	}
}

func TestShellWithRequestedUnknownMode(t *testing.T) {
	s := newAutomaticShell(t).Measure(1200)
	for _, mode := range []DisplayMode{DisplayMode(42), DisplayMode(-1)} {
		got, err := s.WithRequested(mode)
		if !errors.Is(err, fluenterrors.ErrInvalidArgument) {
			t.Errorf("WithRequested(%d) err = %v, want invalid argument", int(mode), err)
		}
		if got.Requested != Automatic || got.State != (OpenPane{}) || got.Mode() != Open {
			t.Errorf("WithRequested(%d) changed shell: Requested=%v State=%#v", int(mode), got.Requested, got.State)
		}
	}
}

func TestShellEnterUnknownModeClearsState(t *testing.T) {
	s := newAutomaticShell(t).Measure(1200).enter(DisplayMode(42))
	if s.State != nil || s.Mode() != Automatic {
		t.Errorf("enter(42) left state %#v", s.State)
	}
}

func TestNewShellErrors(t *testing.T) {
	if _, err := NewShell(DisplayMode(9), DefaultPaneWidthPolicy()); !errors.Is(err, fluenterrors.ErrInvalidArgument) {
		t.Errorf("unknown mode err = %v", err)
	}
	if _, err := NewShell(Automatic, PaneWidthPolicy{}); !errors.Is(err, fluenterrors.ErrInvalidArgument) {
		t.Errorf("zero policy err = %v", err)
	}
}
