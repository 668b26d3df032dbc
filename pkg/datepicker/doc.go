// Package datepicker provides the rendering-free logic behind a wheel-style
// date picker.
//
// A date picker shows three wheels (year, month, day) side by side. This
// package decides the order of those wheels for a locale, maps a wheel's
// selected index back to a date, and keeps the resulting date valid.
//
// # Field order
//
// ResolveFieldOrder picks the left-to-right wheel order:
//
//	datepicker.ResolveFieldOrder(&datepicker.LocaleKey{Country: "US"}) // [Month Day Year]
//	datepicker.ResolveFieldOrder(&datepicker.LocaleKey{Language: "zh"}) // [Year Month Day]
//	datepicker.ResolveFieldOrder(nil)                                   // [Day Month Year]
//
// # Wheel mapping
//
// The Apply functions are the pure mapping from a new field value plus the
// current date to the next date. A month change clamps the day to the length
// of the new month; a year change does not, so Feb 29 carried into a
// non-leap year stays as is until the host calls CalendarDate.Clamp.
//
// Picker wraps the Apply functions with index-based entry points that match
// wheels sized by Bounds and DaysInMonth.
//
// All functions are pure and safe for concurrent use.
package datepicker
