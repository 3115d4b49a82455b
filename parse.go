package julian

import (
	"fmt"
	"time"
)

// dateLayouts lists the formats ParseDate attempts, in order.
var dateLayouts = []string{
	"2006-01-02",
}

// timestampLayouts lists the formats ParseTimestamp attempts, in order.
//
// WARNING: Must go from most restrictive to least restrictive! A permissive
// layout tried too early could consume a prefix of a more specific input and
// silently discard the rest. Numeric offset, then Zulu marker, then
// zone-free, for the space-separated forms and then the ISO 8601 "T" forms,
// with the bare date as the final fallback. Every layout with a seconds
// field also accepts an optional fractional second, per time.Parse.
var timestampLayouts = []string{
	"2006-01-02 15:04:05-0700", // 2020-01-01 11:11:11.123-0500
	"2006-01-02 15:04:05Z",     // 2020-01-01 11:11:11.123Z
	"2006-01-02 15:04:05",      // 2020-01-01 11:11:11.123
	"2006-01-02T15:04:05-0700", // 2020-01-01T11:11:11.123-0500
	"2006-01-02T15:04:05Z",     // 2020-01-01T11:11:11.123Z
	"2006-01-02T15:04:05",      // 2020-01-01T11:11:11.123
	"2006-01-02",               // 2020-01-01
}

// ParseDate parses src into a Date by iterating through the list of valid
// date formats. Returns false if src cannot be parsed by any of the formats.
func ParseDate(src string) (Date, bool) {
	for _, layout := range dateLayouts {
		value, err := time.Parse(layout, src)
		if err == nil {
			return DateFromTime(value), true
		}
	}

	// Not found.
	return 0, false
}

// ParseTimestamp parses src into a Timestamp by iterating through the list
// of valid timestamp formats, stopping at the first match. Returns false if
// src cannot be parsed by any of the formats.
//
// A numeric offset or Zulu marker shifts the parsed instant to UTC before
// encoding; the offset itself is discarded, so the resulting Timestamp is
// zone-naive.
func ParseTimestamp(src string) (Timestamp, bool) {
	for _, layout := range timestampLayouts {
		value, err := time.Parse(layout, src)
		if err == nil {
			return TimestampFromTime(value), true
		}
	}

	// Not found.
	return 0, false
}

// ParseDateText is like [ParseDate], but returns an error identifying src
// when its format cannot be determined and parsed.
func ParseDateText(src string) (Date, error) {
	date, ok := ParseDate(src)
	if !ok {
		return 0, fmt.Errorf(`%w: format is not recognized: "%v"`, ErrJulian, src)
	}
	return date, nil
}

// ParseTimestampText is like [ParseTimestamp], but returns an error
// identifying src when its format cannot be determined and parsed.
func ParseTimestampText(src string) (Timestamp, error) {
	ts, ok := ParseTimestamp(src)
	if !ok {
		return 0, fmt.Errorf(`%w: format is not recognized: "%v"`, ErrJulian, src)
	}
	return ts, nil
}
