package muhurta

import (
	"fmt"
	"time"
)

// Quality classifies a Gowri segment.
type Quality int

const (
	Average Quality = iota
	Good
	// Bad is part of the classification space but unused by the shipped
	// table.
	Bad
)

func (q Quality) String() string {
	switch q {
	case Good:
		return "Good"
	case Bad:
		return "Bad"
	}
	return "Average"
}

// rahuKaalSlot maps weekday (Sunday=0) to the day ghatika occupied by
// Rahu Kaal. The indices are fixed; only the absolute times vary with
// sunrise and sunset.
var rahuKaalSlot = [7]int{8, 2, 7, 5, 6, 4, 3}

// yamagandaDaySlot maps weekday to the Yamaganda day ghatika. The night
// part is always ghatika 4 regardless of weekday.
var yamagandaDaySlot = [7]int{5, 4, 3, 2, 1, 6, 7}

const yamagandaNightSlot = 4

// gowriDay and gowriNight assign a quality to each of the eight day and
// night segments per weekday (Sunday=0).
var gowriDay = [7][8]Quality{
	{Good, Average, Average, Average, Average, Average, Average, Good},    // Sunday: 1, 8
	{Good, Average, Average, Average, Average, Good, Average, Average},    // Monday: 1, 6
	{Average, Good, Average, Average, Average, Average, Good, Average},    // Tuesday: 2, 7
	{Average, Average, Good, Average, Average, Average, Average, Good},    // Wednesday: 3, 8
	{Average, Average, Average, Good, Good, Average, Average, Average},    // Thursday: 4, 5
	{Average, Average, Average, Average, Average, Good, Good, Average},    // Friday: 6, 7
	{Average, Average, Average, Average, Good, Average, Average, Average}, // Saturday: 5
}

var gowriNight = [7][8]Quality{
	{Average, Average, Average, Good, Average, Average, Good, Average},    // Sunday: 4, 7
	{Average, Good, Average, Average, Average, Average, Good, Average},    // Monday: 2, 7
	{Good, Average, Average, Average, Average, Good, Average, Average},    // Tuesday: 1, 6
	{Average, Average, Average, Good, Average, Average, Average, Average}, // Wednesday: 4
	{Average, Average, Good, Average, Average, Average, Average, Good},    // Thursday: 3, 8
	{Good, Average, Average, Average, Average, Average, Average, Average}, // Friday: 1
	{Average, Good, Average, Average, Average, Good, Average, Average},    // Saturday: 2, 6
}

func init() {
	// A malformed slot index is a programming defect, not a runtime
	// condition; refuse to start.
	for w := 0; w < 7; w++ {
		for _, idx := range []int{rahuKaalSlot[w], yamagandaDaySlot[w]} {
			if idx < 1 || idx > 8 {
				panic(fmt.Sprintf("muhurta: slot index %d out of range for weekday %d", idx, w))
			}
		}
	}
}

// RahuKaalIndex returns the day-ghatika index (1-8) of Rahu Kaal.
func RahuKaalIndex(w time.Weekday) int {
	return rahuKaalSlot[int(w)]
}

// YamagandaDayIndex returns the day-ghatika index (1-8) of Yamaganda.
func YamagandaDayIndex(w time.Weekday) int {
	return yamagandaDaySlot[int(w)]
}

// YamagandaNightIndex returns the fixed night-ghatika index of Yamaganda.
func YamagandaNightIndex() int {
	return yamagandaNightSlot
}

// GowriDayQuality returns the quality of the eight day segments.
func GowriDayQuality(w time.Weekday) [8]Quality {
	return gowriDay[int(w)]
}

// GowriNightQuality returns the quality of the eight night segments.
func GowriNightQuality(w time.Weekday) [8]Quality {
	return gowriNight[int(w)]
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
