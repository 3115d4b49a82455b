package julian

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"time"
)

// Timestamp represents the PostgreSQL timestamp type: an unsigned 64-bit
// count of microseconds since the Julian epoch. Its value is always
// date * MicrosecondsPerDay + microseconds since midnight; timestamps
// produced by this package keep the time-of-day remainder within a single
// day, while values constructed from arbitrary raw integers decode
// arithmetically but may name an ill-defined calendar point.
type Timestamp uint64

// TimestampFromParts encodes a calendar date and time of day as a Timestamp.
// It performs no bounds checking: an out-of-range hour, minute, second, or
// microsecond shifts the result arithmetically rather than returning an
// error, matching the encoding contract of [Date2J].
func TimestampFromParts(year, month, day, hour, minute, sec, usec int) Timestamp {
	ts := uint64(Date2J(year, month, day)) * MicrosecondsPerDay
	ts += uint64(hour) * MicrosecondsPerHour
	ts += uint64(minute) * MicrosecondsPerMinute
	ts += uint64(sec) * MicrosecondsPerSecond
	ts += uint64(usec)

	return Timestamp(ts)
}

// TimestampFromTime encodes t as a Timestamp, normalizing it to UTC first.
// Sub-microsecond precision is truncated.
func TimestampFromTime(t time.Time) Timestamp {
	t = t.UTC()
	year, month, day := t.Date()

	return TimestampFromParts(
		year, int(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000,
	)
}

// Date returns the date component of ts, truncating the time of day.
func (ts Timestamp) Date() Date {
	return Date(uint64(ts) / MicrosecondsPerDay)
}

// Microseconds returns the raw Julian microsecond count of ts.
func (ts Timestamp) Microseconds() uint64 {
	return uint64(ts)
}

// timeOfDay returns the microseconds elapsed since midnight of ts's date.
func (ts Timestamp) timeOfDay() uint64 {
	return uint64(ts) - uint64(ts.Date())*MicrosecondsPerDay
}

// Time returns ts as a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	remainder := time.Duration(ts.timeOfDay()) * time.Microsecond
	return ts.Date().Time().Add(remainder)
}

// timestampFormat represents the canonical string format for Timestamp
// values. The fractional second renders only when non-zero, mirroring the
// optional fraction the parser accepts.
const timestampFormat = "2006-01-02 15:04:05.999999"

// String returns the string representation of ts using the format
// "2006-01-02 15:04:05.999999".
func (ts Timestamp) String() string {
	return FormatTimestamp(ts)
}

// Compare compares the instant ts with u. If ts is before u, it returns -1;
// if ts is after u, it returns +1; if they're the same, it returns 0.
func (ts Timestamp) Compare(u Timestamp) int {
	return cmp.Compare(ts, u)
}

// TimestampBinarySize is the width of the binary encoding of a Timestamp.
// The storage layer depends on timestamps occupying exactly this many bytes.
const TimestampBinarySize = 8

// AppendBinary appends the 8-byte little-endian encoding of ts to b and
// returns the extended slice.
func (ts Timestamp) AppendBinary(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(ts))
}

// PutBinary writes the 8-byte little-endian encoding of ts into b, which
// must be at least TimestampBinarySize bytes long.
func (ts Timestamp) PutBinary(b []byte) {
	binary.LittleEndian.PutUint64(b, uint64(ts))
}

// TimestampFromBinary decodes a Timestamp from the first
// TimestampBinarySize bytes of b.
func TimestampFromBinary(b []byte) Timestamp {
	return Timestamp(binary.LittleEndian.Uint64(b))
}

// MarshalJSON implements the json.Marshaler interface. The timestamp is a
// quoted string in the canonical "2006-01-02 15:04:05.999999" format.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	const timestampJSONSize = len(timestampFormat) + len(`""`)
	b := make([]byte, 0, timestampJSONSize)
	b = append(b, '"')
	b = ts.Time().AppendFormat(b, timestampFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The timestamp
// must be a quoted string in any of the formats accepted by
// [ParseTimestamp].
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, ok := ParseTimestamp(string(data[1 : len(data)-1]))
	if !ok {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrJulian, data, timestampFormat)
	}
	*ts = parsed
	return nil
}
