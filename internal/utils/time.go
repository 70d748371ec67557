package util

import "time"

const displayLayout = "1/2/2006 03:04 PM"

// FormatDate renders t in its own location, e.g. "3/14/2025 09:26 AM".
func FormatDate(t time.Time) string {
	return t.Format(displayLayout)
}

// FromUnixMilli accepts the millisecond timestamps browsers send.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
