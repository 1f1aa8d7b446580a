package tamilcal

import (
	"fmt"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// Iteration caps for the backward date walks. A solar month spans 29-32
// days and a year 365-366, so exceeding these bounds means either the
// month-index logic is broken or the date is outside the supported range.
const (
	monthStartSearchCap = 40
	yearStartSearchCap  = 420
)

// noonHour is the fixed local reference time the Sun's longitude is
// sampled at for calendar decisions.
const noonHour = 12

// sunSiderealAtNoon samples the Sun's sidereal longitude at local noon.
func sunSiderealAtNoon(eph astro.Ephemeris, date astro.CivilDate, city location.City) (float64, error) {
	obs := astro.Moment(date, noonHour, 0, city.UTCOffsetHours)
	tropical, err := eph.EclipticLongitude(astro.Sun, obs)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeEphemeris, "solar longitude", err)
	}
	return astro.NormalizeDegrees(tropical - astro.Ayanamsa(obs)), nil
}

// MonthIndex returns the Tamil month (0-11) a date falls in.
func MonthIndex(eph astro.Ephemeris, date astro.CivilDate, city location.City) (int, error) {
	lon, err := sunSiderealAtNoon(eph, date, city)
	if err != nil {
		return 0, err
	}
	return astro.RasiIndex(lon), nil
}

// MonthStart walks backward to the first date of the enclosing Tamil
// month: the most recent date whose previous day has a different month
// index.
func MonthStart(eph astro.Ephemeris, date astro.CivilDate, city location.City) (astro.CivilDate, error) {
	target, err := MonthIndex(eph, date, city)
	if err != nil {
		return astro.CivilDate{}, err
	}
	cursor := date
	for i := 0; i < monthStartSearchCap; i++ {
		prev := cursor.AddDays(-1)
		idx, err := MonthIndex(eph, prev, city)
		if err != nil {
			return astro.CivilDate{}, err
		}
		if idx != target {
			return cursor, nil
		}
		cursor = prev
	}
	return astro.CivilDate{}, apperrors.Wrap(apperrors.CodeSearchExhausted,
		fmt.Sprintf("no month boundary within %d days of %s", monthStartSearchCap, date), nil)
}

// YearStart walks backward to the most recent date on which the Sun
// entered Mesha (month index 0 with the previous day at index 11).
func YearStart(eph astro.Ephemeris, date astro.CivilDate, city location.City) (astro.CivilDate, error) {
	cursor := date
	for i := 0; i < yearStartSearchCap; i++ {
		idx, err := MonthIndex(eph, cursor, city)
		if err != nil {
			return astro.CivilDate{}, err
		}
		if idx == 0 {
			prev := cursor.AddDays(-1)
			prevIdx, err := MonthIndex(eph, prev, city)
			if err != nil {
				return astro.CivilDate{}, err
			}
			if prevIdx == 11 {
				return cursor, nil
			}
		}
		cursor = cursor.AddDays(-1)
	}
	return astro.CivilDate{}, apperrors.Wrap(apperrors.CodeSearchExhausted,
		fmt.Sprintf("no year boundary within %d days of %s", yearStartSearchCap, date), nil)
}
