package astro

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// OffsetMinutes converts a UTC offset in hours to whole minutes.
// Fractional offsets such as +5.5 are rounded to the minute before use so
// repeated conversions cannot drift.
func OffsetMinutes(offsetHours float64) int {
	return int(math.Round(offsetHours * 60))
}

// FixedZone builds a fixed-offset time.Location for a UTC offset in hours.
func FixedZone(name string, offsetHours float64) *time.Location {
	return time.FixedZone(name, OffsetMinutes(offsetHours)*60)
}

// Moment builds the absolute UTC instant for a local civil date and
// time-of-day in a zone with the given UTC offset. Day rollover across
// month and year boundaries is handled by the calendar arithmetic.
func Moment(d CivilDate, hour, minute int, offsetHours float64) time.Time {
	loc := FixedZone("local", offsetHours)
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc).UTC()
}

// JulianDay converts an instant to a Julian Day number.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}
