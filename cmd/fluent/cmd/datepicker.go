package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/fluent/pkg/datepicker"
)

func init() {
	RegisterCommand(&Command{
		Name:  "order",
		Short: "Show the wheel order for a locale",
		Long: `Print the left-to-right order of the year, month and day wheels.

The locale defaults to datepicker.locale in fluent.yaml, then $LANG.`,
		Usage: "fluent order [locale]",
		Run:   runOrder,
	})
	RegisterCommand(&Command{
		Name:  "days",
		Short: "Show the number of days in a month",
		Long:  `Print the number of days in month (1-12, or beyond to roll into later years) of year.`,
		Usage: "fluent days <month> <year>",
		Run:   runDays,
	})
	RegisterCommand(&Command{
		Name:  "years",
		Short: "List the years on the year wheel",
		Long: `Print the years shown by the year wheel, start exclusive and end inclusive.

Bounds default to fluent.yaml, then 100 years back and 25 years ahead.`,
		Usage: "fluent years [start end]",
		Run:   runYears,
	})
	RegisterCommand(&Command{
		Name:  "wheels",
		Short: "Show the wheel layout for a date",
		Long:  `Print each wheel's field, item count and selected index for a date (YYYY-MM-DD).`,
		Usage: "fluent wheels <date> [locale]",
		Run:   runWheels,
	})
}

func localeArg(args []string, i int) (datepicker.LocaleKey, error) {
	if len(args) > i {
		return datepicker.ParseLocale(args[i]), nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return datepicker.LocaleKey{}, err
	}
	return cfg.Locale, nil
}

func runOrder(w io.Writer, args []string) error {
	locale, err := localeArg(args, 0)
	if err != nil {
		return err
	}
	order := datepicker.ResolveFieldOrder(&locale)
	names := make([]string, len(order))
	for i, f := range order {
		names[i] = f.String()
	}
	fmt.Fprintln(w, strings.Join(names, " "))
	return nil
}

func runDays(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("month and year are required\n\nUsage: fluent days <month> <year>")
	}
	month, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", args[0], err)
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[1], err)
	}
	fmt.Fprintln(w, datepicker.DaysInMonth(month, year))
	return nil
}

func runYears(w io.Writer, args []string) error {
	var bounds datepicker.Bounds
	switch len(args) {
	case 0:
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		bounds = cfg.Bounds
	case 2:
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid start year %q: %w", args[0], err)
		}
		end, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid end year %q: %w", args[1], err)
		}
		bounds = datepicker.Bounds{StartYear: start, EndYear: end}
		if err := bounds.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("expected no arguments or start and end\n\nUsage: fluent years [start end]")
	}

	var years []string
	for y := range bounds.Years() {
		years = append(years, strconv.Itoa(y))
	}
	fmt.Fprintln(w, strings.Join(years, " "))
	return nil
}

func runWheels(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("date is required\n\nUsage: fluent wheels <date> [locale]")
	}
	t, err := time.Parse(time.DateOnly, args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", args[0], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	locale := cfg.Locale
	if len(args) > 1 {
		locale = datepicker.ParseLocale(args[1])
	}

	picker, err := datepicker.NewPicker(cfg.Bounds, &locale)
	if err != nil {
		return err
	}
	cols, err := picker.Columns(datepicker.FromTime(t))
	if err != nil {
		return err
	}
	for _, c := range cols {
		fmt.Fprintf(w, "%-6s %4d items, selected %d\n", c.Field, c.Count, c.Selected)
	}
	return nil
}
