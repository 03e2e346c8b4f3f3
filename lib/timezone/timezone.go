package timezone

import "time"

// generated pages are date-stamped in UTC no matter where the process
// runs, so repeat runs from different hosts agree on "today"
func Now() time.Time {
	return time.Now().UTC()
}

// DateStamp formats t the way pages and the index record dates.
func DateStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
