// Package julian converts between calendar representations and the compact
// integer encodings PostgreSQL uses to store date and timestamp values:
// dates are 4-byte Julian day counts and timestamps are 8-byte counts of
// microseconds since the Julian epoch.
//
// It makes every effort to duplicate the behavior of PostgreSQL's date2j()
// and j2date() functions in particular, so that encoded values compare and
// store bit-for-bit the same as values written by PostgreSQL itself.
//
// Every function and method in this package is a pure function of its
// arguments: no shared state, no I/O, safe for concurrent use.
package julian

import "errors"

// ErrJulian wraps errors returned by the julian package.
var ErrJulian = errors.New("julian")

// Microsecond conversion factors for the time-of-day component of a
// timestamp.
const (
	MicrosecondsPerSecond uint64 = 1000 * 1000
	MicrosecondsPerMinute        = 60 * MicrosecondsPerSecond
	MicrosecondsPerHour          = 60 * MicrosecondsPerMinute
	MicrosecondsPerDay           = 24 * MicrosecondsPerHour
)

const (
	// PostgresEpochDay is the Julian day number of 2000-01-01, the
	// PostgreSQL timestamp epoch.
	PostgresEpochDay = 2451545

	// UnixEpochDay is the Julian day number of 1970-01-01.
	UnixEpochDay = 2440588
)

// Date2J converts a calendar date to a Julian day count. It reproduces the
// overflow-safe integer algorithm of PostgreSQL's date2j(): months are
// shifted so that March is logical month 1 and January and February belong
// to the previous logical year, which keeps every intermediate value
// non-negative over the supported range.
//
// It performs no range validation. An out-of-range month or day shifts the
// result arithmetically rather than returning an error, so Date2J(2020, 13, 1)
// equals Date2J(2021, 1, 1).
func Date2J(year, month, day int) uint32 {
	if month > 2 {
		month++
		year += 4800
	} else {
		month += 13
		year += 4799
	}

	century := uint32(year) / 100
	julian := uint32(year)*365 - 32167
	julian += uint32(year)/4 - century + century/4
	julian += 7834*uint32(month)/256 + uint32(day)

	return julian
}

// J2Date converts a Julian day count back to a calendar date, reproducing
// PostgreSQL's j2date(). The computation walks the 400-year and 4-year
// Gregorian leap cycles in exactly the order j2date() does; the sequence of
// truncating divisions is load-bearing, and reordering it produces wrong
// dates near leap-year and century boundaries.
func J2Date(julianDay uint32) (year, month, day int) {
	julian := julianDay + 32044

	quad := julian / 146097
	extra := (julian-quad*146097)*4 + 3

	julian += 60 + quad*3 + extra/146097
	quad = julian / 1461
	julian -= quad * 1461

	y := int(julian) * 4 / 1461
	if y != 0 {
		julian = (julian + 305) % 365
	} else {
		julian = (julian + 306) % 366
	}
	julian += 123
	y += int(quad) * 4

	quad = julian * 2141 / 65536
	year = y - 4800
	month = int((quad+10)%12 + 1)
	day = int(julian - 7834*quad/256)

	return year, month, day
}
