package ephemeris

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/senthamizh/panchangam/internal/domain/astro"
)

// SearchRiseSet implements astro.Ephemeris. Only solar events are
// supported; the muhurta pipeline never asks for other bodies. The scan
// walks UTC calendar dates from start and returns the first crossing at
// or after it. Days on which the Sun neither rises nor sets (polar
// conditions) are skipped.
func (m *Meeus) SearchRiseSet(body astro.Body, obs astro.Observer, direction int, start time.Time, windowDays int) (time.Time, bool) {
	if body != astro.Sun {
		return time.Time{}, false
	}
	if windowDays < 1 {
		windowDays = 1
	}
	day := start.UTC().Truncate(24 * time.Hour)
	for i := 0; i <= windowDays; i++ {
		rise, set := sunrise.SunriseSunset(obs.Latitude, obs.Longitude,
			day.Year(), day.Month(), day.Day())
		event := rise
		if direction == astro.DirectionSet {
			event = set
		}
		if !event.IsZero() && !event.Before(start) {
			return event, true
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}
