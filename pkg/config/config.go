// Package config loads the optional fluent.yaml that supplies date picker
// and navigation shell defaults for a project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fluent/pkg/datepicker"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/navigation"
)

// FileName is the name of the configuration file in the project root.
const FileName = "fluent.yaml"

// Config represents the optional fluent.yaml configuration.
type Config struct {
	DatePicker DatePickerConfig `yaml:"datepicker"`
	Navigation NavigationConfig `yaml:"navigation"`
}

// DatePickerConfig configures the date picker wheels.
type DatePickerConfig struct {
	Locale    string `yaml:"locale,omitempty"`
	StartYear *int   `yaml:"start_year,omitempty"`
	EndYear   *int   `yaml:"end_year,omitempty"`
}

// NavigationConfig configures the navigation shell.
type NavigationConfig struct {
	DisplayMode   string   `yaml:"display_mode,omitempty"`
	OpenPaneWidth *float64 `yaml:"open_pane_width,omitempty"`
	CompactWidth  *float64 `yaml:"compact_width,omitempty"`
}

// Resolved contains configuration with defaults applied.
type Resolved struct {
	Root        string
	ModulePath  string
	Locale      datepicker.LocaleKey
	Bounds      datepicker.Bounds
	DisplayMode navigation.DisplayMode
	Policy      navigation.PaneWidthPolicy
}

// LoadOptional reads fluent.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fluenterrors.Config("config.LoadOptional", fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fluenterrors.Config("config.LoadOptional", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads fluent.yaml (if present) from dir and applies defaults.
// Year bounds default relative to now. The locale falls back to the LANG
// environment variable.
func Resolve(dir string, now time.Time) (*Resolved, error) {
	const op = "config.Resolve"

	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, fluenterrors.Config(op, err)
	}
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	locale := strings.TrimSpace(cfg.DatePicker.Locale)
	if locale == "" {
		locale = os.Getenv("LANG")
	}

	bounds := datepicker.DefaultBounds(now)
	if cfg.DatePicker.StartYear != nil {
		bounds.StartYear = *cfg.DatePicker.StartYear
	}
	if cfg.DatePicker.EndYear != nil {
		bounds.EndYear = *cfg.DatePicker.EndYear
	}
	if err := bounds.Validate(); err != nil {
		return nil, fluenterrors.Config(op, fmt.Errorf("datepicker: %w", err))
	}

	mode, err := navigation.ParseDisplayMode(cfg.Navigation.DisplayMode)
	if err != nil {
		return nil, fluenterrors.Config(op, fmt.Errorf("navigation.display_mode: %w", err))
	}

	policy := navigation.DefaultPaneWidthPolicy()
	if cfg.Navigation.OpenPaneWidth != nil {
		policy.OpenPaneWidth = *cfg.Navigation.OpenPaneWidth
	}
	if cfg.Navigation.CompactWidth != nil {
		policy.CompactWidth = *cfg.Navigation.CompactWidth
	}
	if err := policy.Validate(); err != nil {
		return nil, fluenterrors.Config(op, fmt.Errorf("navigation: %w", err))
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		Locale:      datepicker.ParseLocale(locale),
		Bounds:      bounds,
		DisplayMode: mode,
		Policy:      policy,
	}, nil
}

// FindProjectRoot walks up from start to the nearest directory with a go.mod.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found above %s)", start)
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
