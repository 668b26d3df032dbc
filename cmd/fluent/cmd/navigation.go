package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-drift/fluent/pkg/navigation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "mode",
		Short: "Show the display mode for a window width",
		Long: `Print the navigation display mode for a window width.

The requested mode defaults to navigation.display_mode in fluent.yaml
(automatic if unset). For compact mode the output also says whether the
expanded pane floats over the content or expands inline.`,
		Usage: "fluent mode <width> [automatic|minimal|compact|open|top]",
		Run:   runMode,
	})
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long:  `Print fluent.yaml for the enclosing Go module with defaults applied.`,
		Usage: "fluent config",
		Run:   runConfig,
	})
}

func runMode(w io.Writer, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("width is required\n\nUsage: fluent mode <width> [mode]")
	}
	width, err := strconv.ParseFloat(args[0], 64)
	if err != nil || !navigation.Measurable(width) {
		return fmt.Errorf("invalid width %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	requested := cfg.DisplayMode
	if len(args) == 2 {
		if requested, err = navigation.ParseDisplayMode(args[1]); err != nil {
			return err
		}
	}

	shell, err := navigation.NewShell(requested, cfg.Policy)
	if err != nil {
		return err
	}
	shell = shell.Measure(width)
	switch state := shell.State.(type) {
	case navigation.CompactPane:
		if state.Overlay {
			fmt.Fprintln(w, "compact (overlay)")
		} else {
			fmt.Fprintln(w, "compact (inline)")
		}
	default:
		fmt.Fprintln(w, shell.Mode())
	}
	return nil
}

func runConfig(w io.Writer, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Root != "" {
		fmt.Fprintf(w, "root:            %s\n", cfg.Root)
		fmt.Fprintf(w, "module:          %s\n", cfg.ModulePath)
	}
	fmt.Fprintf(w, "locale:          %s\n", cfg.Locale)
	fmt.Fprintf(w, "years:           %d..%d\n", cfg.Bounds.StartYear+1, cfg.Bounds.EndYear)
	fmt.Fprintf(w, "display mode:    %s\n", cfg.DisplayMode)
	fmt.Fprintf(w, "open pane width: %g\n", cfg.Policy.OpenPaneWidth)
	fmt.Fprintf(w, "compact width:   %g\n", cfg.Policy.CompactWidth)
	return nil
}
