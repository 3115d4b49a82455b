package julian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, tc := range []struct {
		name  string
		value string
		exp   Date
		ok    bool
	}{
		{"iso_date", "2020-01-01", DateFromYMD(2020, 1, 1), true},
		{"leap_day", "2024-02-29", DateFromYMD(2024, 2, 29), true},
		{"postgres_epoch", "2000-01-01", 2451545, true},
		{"empty", "", 0, false},
		{"not_a_date", "not-a-date", 0, false},
		{"month_13", "2020-13-01", 0, false},
		{"day_out_of_range", "2020-02-30", 0, false},
		{"slashes", "2020/01/01", 0, false},
		{"trailing_text", "2020-01-01 ", 0, false},
		{"timestamp_not_a_date", "2020-01-01 11:11:11", 0, false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			date, ok := ParseDate(tc.value)
			a.Equal(tc.ok, ok)
			a.Equal(tc.exp, date)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, tc := range []struct {
		name  string
		value string
		exp   Timestamp
		ok    bool
	}{
		{
			name:  "space_offset",
			value: "2020-01-01 11:11:11.123-0500",
			exp:   TimestampFromParts(2020, 1, 1, 16, 11, 11, 123000),
			ok:    true,
		},
		{
			name:  "space_zulu",
			value: "2020-01-01 11:11:11.123Z",
			exp:   TimestampFromParts(2020, 1, 1, 11, 11, 11, 123000),
			ok:    true,
		},
		{
			name:  "space_naked",
			value: "2020-01-01 11:11:11.123",
			exp:   TimestampFromParts(2020, 1, 1, 11, 11, 11, 123000),
			ok:    true,
		},
		{
			name:  "t_offset",
			value: "2020-01-01T11:11:11.123-0500",
			exp:   TimestampFromParts(2020, 1, 1, 16, 11, 11, 123000),
			ok:    true,
		},
		{
			name:  "t_zulu",
			value: "2020-01-01T11:11:11.123Z",
			exp:   TimestampFromParts(2020, 1, 1, 11, 11, 11, 123000),
			ok:    true,
		},
		{
			name:  "t_naked",
			value: "2020-01-01T11:11:11.123",
			exp:   TimestampFromParts(2020, 1, 1, 11, 11, 11, 123000),
			ok:    true,
		},
		{
			name:  "date_only",
			value: "2020-01-01",
			exp:   DateFromYMD(2020, 1, 1).Timestamp(),
			ok:    true,
		},
		{
			name:  "no_fraction",
			value: "2020-06-15 08:09:10",
			exp:   TimestampFromParts(2020, 6, 15, 8, 9, 10, 0),
			ok:    true,
		},
		{
			name:  "positive_offset",
			value: "2020-01-01T11:11:11+0530",
			exp:   TimestampFromParts(2020, 1, 1, 5, 41, 11, 0),
			ok:    true,
		},
		{
			name:  "offset_crosses_midnight",
			value: "2020-01-01 01:00:00+0500",
			exp:   TimestampFromParts(2019, 12, 31, 20, 0, 0, 0),
			ok:    true,
		},
		{"empty", "", 0, false},
		{"not_a_date", "not-a-date", 0, false},
		{"hour_out_of_range", "2020-01-01 25:00:00", 0, false},
		{"trailing_text", "2020-01-01 11:11:11 extra", 0, false},
		{"missing_seconds", "2020-01-01 11:11", 0, false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ts, ok := ParseTimestamp(tc.value)
			a.Equal(tc.ok, ok)
			a.Equal(tc.exp, ts)
		})
	}
}

// A timestamp with trailing zone information must match its zone-aware
// format rather than falling through to the date-only fallback and
// discarding the time of day.
func TestParseTimestampPrecedence(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	ts, ok := ParseTimestamp("2020-01-01T11:11:11.123-0500")
	r.True(ok)
	a.Equal(TimestampFromParts(2020, 1, 1, 16, 11, 11, 123000), ts)

	dateOnly, ok := ParseTimestamp("2020-01-01")
	r.True(ok)
	a.NotEqual(dateOnly, ts)
}

// Zulu and an explicit zero offset name the same instant.
func TestParseTimestampZuluOffsetEquivalence(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	zulu, ok := ParseTimestamp("2020-06-15T00:00:00Z")
	r.True(ok)
	zero, ok := ParseTimestamp("2020-06-15 00:00:00+0000")
	r.True(ok)
	a.Equal(zulu, zero)
	a.Equal(DateFromYMD(2020, 6, 15).Timestamp(), zulu)
}

func TestParseDateText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	date, err := ParseDateText("2000-01-01")
	r.NoError(err)
	a.Equal(Date(2451545), date)

	_, err = ParseDateText("not-a-date")
	r.Error(err)
	r.EqualError(err, `julian: format is not recognized: "not-a-date"`)
	r.ErrorIs(err, ErrJulian)
}

func TestParseTimestampText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	ts, err := ParseTimestampText("2000-01-01 00:00:00")
	r.NoError(err)
	a.Equal(Timestamp(2451545*MicrosecondsPerDay), ts)

	_, err = ParseTimestampText("")
	r.Error(err)
	r.EqualError(err, `julian: format is not recognized: ""`)
	r.ErrorIs(err, ErrJulian)
}
