package julian

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"time"
)

// Date represents the PostgreSQL date type: an unsigned 32-bit Julian day
// count. It carries no calendar fields; calendar components are recovered
// only by decoding through [Date.YMD]. The zero value is the Julian epoch,
// November 24, 4714 BC.
type Date uint32

// DateFromYMD encodes a calendar date as a Date. Like PostgreSQL, it does
// not validate its arguments; see [Date2J].
func DateFromYMD(year, month, day int) Date {
	return Date(Date2J(year, month, day))
}

// DateFromTime encodes the calendar date of t, evaluated in UTC.
func DateFromTime(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return DateFromYMD(year, int(month), day)
}

// YMD decodes d into its calendar components.
func (d Date) YMD() (year, month, day int) {
	return J2Date(uint32(d))
}

// Timestamp returns the timestamp at midnight of d.
func (d Date) Timestamp() Timestamp {
	return Timestamp(uint64(d) * MicrosecondsPerDay)
}

// Time returns midnight of d as a time.Time in UTC.
func (d Date) Time() time.Time {
	year, month, day := d.YMD()
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// dateFormat represents the canonical string format for Date values.
const dateFormat = "2006-01-02"

// String returns the string representation of d.
func (d Date) String() string {
	return FormatDate(d)
}

// Compare compares d with u. If d is before u, it returns -1; if d is after
// u, it returns +1; if they're the same day, it returns 0.
func (d Date) Compare(u Date) int {
	return cmp.Compare(d, u)
}

// DateBinarySize is the width of the binary encoding of a Date. The storage
// layer depends on dates occupying exactly this many bytes.
const DateBinarySize = 4

// AppendBinary appends the 4-byte little-endian encoding of d to b and
// returns the extended slice.
func (d Date) AppendBinary(b []byte) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(d))
}

// PutBinary writes the 4-byte little-endian encoding of d into b, which must
// be at least DateBinarySize bytes long.
func (d Date) PutBinary(b []byte) {
	binary.LittleEndian.PutUint32(b, uint32(d))
}

// DateFromBinary decodes a Date from the first DateBinarySize bytes of b.
func DateFromBinary(b []byte) Date {
	return Date(binary.LittleEndian.Uint32(b))
}

// MarshalJSON implements the json.Marshaler interface. The date is a quoted
// string in the canonical "2006-01-02" format.
func (d Date) MarshalJSON() ([]byte, error) {
	const dateJSONSize = len(dateFormat) + len(`""`)
	b := make([]byte, 0, dateJSONSize)
	b = append(b, '"')
	b = d.Time().AppendFormat(b, dateFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must be
// a quoted string in the "2006-01-02" format.
func (d *Date) UnmarshalJSON(data []byte) error {
	date, ok := ParseDate(string(data[1 : len(data)-1]))
	if !ok {
		return fmt.Errorf("%w: Cannot parse %s as %q", ErrJulian, data, dateFormat)
	}
	*d = date
	return nil
}
