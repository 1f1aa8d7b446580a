package muhurta

import "time"

// Ghatika is one of the eight equal segments of a day or night span.
// Indices are 1-based. Flagged marks the segment a rule singles out
// (Rahu Kaal or Yamaganda, depending on context).
type Ghatika struct {
	Index   int
	Start   time.Time
	End     time.Time
	Flagged bool
}

// Partition divides [start, end) into eight chronological segments.
// Boundaries are computed from the span with integer duration arithmetic
// so the segments tile the span exactly, with no gaps or overlaps.
// Ghatika durations vary with season and latitude and must be recomputed
// for every date; they are never reused across dates.
func Partition(start, end time.Time) [8]Ghatika {
	span := end.Sub(start)
	var out [8]Ghatika
	for i := 0; i < 8; i++ {
		out[i] = Ghatika{
			Index: i + 1,
			Start: start.Add(span * time.Duration(i) / 8),
			End:   start.Add(span * time.Duration(i+1) / 8),
		}
	}
	return out
}

// NightEnd applies the night-span safety correction: if the naive next
// sunrise is not after this date's sunset, a day is added.
func NightEnd(sunset, nextSunrise time.Time) time.Time {
	if !nextSunrise.After(sunset) {
		return nextSunrise.Add(24 * time.Hour)
	}
	return nextSunrise
}
