package datepicker

import (
	"strings"

	"golang.org/x/text/language"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// DateField identifies one wheel of the picker.
type DateField int

const (
	Year DateField = iota
	Month
	Day
)

func (f DateField) String() string {
	switch f {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	default:
		return "unknown"
	}
}

// FieldOrder is the left-to-right order of the three wheels.
type FieldOrder [3]DateField

var (
	// OrderMDY is used for the United States.
	OrderMDY = FieldOrder{Month, Day, Year}
	// OrderYMD is used for Chinese, Korean and Japanese.
	OrderYMD = FieldOrder{Year, Month, Day}
	// OrderDMY is the default.
	OrderDMY = FieldOrder{Day, Month, Year}
)

// Validate returns an InvalidArgument error unless each field appears exactly once.
func (o FieldOrder) Validate() error {
	var seen [3]bool
	for _, f := range o {
		if f < Year || f > Day {
			return fluenterrors.InvalidArgument("datepicker.FieldOrder.Validate", "unknown field %d in %v", int(f), o)
		}
		if seen[f] {
			return fluenterrors.InvalidArgument("datepicker.FieldOrder.Validate", "field %s repeated in %v", f, o)
		}
		seen[f] = true
	}
	return nil
}

// Index returns the position of f in the order, or -1.
func (o FieldOrder) Index(f DateField) int {
	for i, g := range o {
		if g == f {
			return i
		}
	}
	return -1
}

func (o FieldOrder) String() string {
	parts := make([]string, len(o))
	for i, f := range o {
		parts[i] = f.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// LocaleKey identifies a locale for field-order lookup.
type LocaleKey struct {
	// Language is the language code, e.g. "en".
	Language string
	// Country is the optional country code, e.g. "US".
	Country string
}

// String renders k as a BCP 47 tag. A key with only a country uses the
// undetermined language "und".
func (k LocaleKey) String() string {
	switch {
	case k.Country == "":
		return k.Language
	case k.Language == "":
		return "und-" + k.Country
	}
	return k.Language + "-" + k.Country
}

var ymdLanguages = map[string]bool{
	"zh": true,
	"ko": true,
	"jp": true,
}

// ResolveFieldOrder returns the wheel order for locale.
// A nil or unrecognized locale gets OrderDMY.
func ResolveFieldOrder(locale *LocaleKey) FieldOrder {
	if locale == nil {
		return OrderDMY
	}
	if strings.EqualFold(locale.Country, "US") {
		return OrderMDY
	}
	if ymdLanguages[strings.ToLower(locale.Language)] {
		return OrderYMD
	}
	return OrderDMY
}

// ParseLocale parses a BCP 47 ("en-US", "zh-Hans-CN") or POSIX ("en_US.UTF-8")
// locale identifier. It never fails: input the language package rejects is
// split on '-' and '_' instead, and empty input yields the zero LocaleKey.
func ParseLocale(s string) LocaleKey {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || strings.EqualFold(s, "C") || strings.EqualFold(s, "POSIX") {
		return LocaleKey{}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return splitLocale(s)
	}
	// Base and Region infer missing subtags; only keep explicit ones.
	var key LocaleKey
	if base, conf := tag.Base(); conf == language.Exact {
		key.Language = base.String()
	}
	if region, conf := tag.Region(); conf == language.Exact {
		key.Country = region.String()
	}
	return key
}

func splitLocale(s string) LocaleKey {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) == 0 {
		return LocaleKey{}
	}
	key := LocaleKey{Language: strings.ToLower(parts[0])}
	for _, p := range parts[1:] {
		// Skip script subtags such as "Hans".
		if len(p) == 2 || (len(p) == 3 && isDigits(p)) {
			key.Country = strings.ToUpper(p)
			break
		}
	}
	return key
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
