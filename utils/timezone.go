package utils

import "time"

// Manila is the fixed local zone for consumption timestamps and calendar
// days. The product tracks "today" in Philippine time regardless of where the
// server runs.
var Manila = manilaLocation()

func manilaLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		// No tzdata on the host; Manila is UTC+8 with no DST.
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}

// Now returns the current wall-clock time in the fixed local zone.
func Now() time.Time {
	return time.Now().In(Manila)
}

// Today returns the current Manila calendar day, represented as midnight UTC
// so stored dates compare consistently across drivers.
func Today() time.Time {
	n := Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
