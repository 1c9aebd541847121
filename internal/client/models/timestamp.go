package models

import "time"

// TimestampLayout is fixed-width and zero-padded, so the lexicographic order
// of formatted values matches chronological order.
const TimestampLayout = "2006-01-02 15:04:05.000"

// Clock is the time source for new stamps.
var Clock = time.Now

// Now returns the current time in UTC at the precision the stores persist.
func Now() time.Time {
	return Clock().UTC().Truncate(time.Millisecond)
}

// ToMillis converts t to Unix milliseconds, the representation both stores
// persist. The zero time maps to 0.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromMillis is the inverse of ToMillis.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}
