package julian

// FormatDate renders d in the canonical "2006-01-02" form, with the year
// sign-extended for dates before year 1.
func FormatDate(d Date) string {
	return d.Time().Format(dateFormat)
}

// FormatTimestamp renders ts as its calendar date and time of day, space
// separated, with the fractional second omitted when zero and no zone
// suffix: decoded values are presented as zone-naive. The output parses
// back to ts through the zone-free timestamp format.
func FormatTimestamp(ts Timestamp) string {
	return ts.Time().Format(timestampFormat)
}
