// Package muhurta derives the auspicious and inauspicious time windows of
// a day from its sunrise/sunset-based ghatika partition.
package muhurta

import (
	"fmt"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// SunTimes source tags.
const (
	SourceCache    = "cache"
	SourceComputed = "computed"
)

// SunTimes are the sunrise and sunset instants for a date and location.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
	Source  string
}

// Lookup answers sunrise/sunset queries from the startup-loaded table.
type Lookup interface {
	SunTimes(city string, date astro.CivilDate, offsetHours float64) (sunrise, sunset time.Time, ok bool)
}

// SunTimesProvider resolves sunrise and sunset for a city and date.
type SunTimesProvider interface {
	SunTimes(city location.City, date astro.CivilDate) (SunTimes, error)
}

// Resolver is the cache-first SunTimesProvider: the static lookup wins,
// otherwise the ephemeris rise/set search anchored at the date's UTC
// midnight is used.
type Resolver struct {
	eph    astro.Ephemeris
	lookup Lookup
}

// NewResolver constructs a Resolver. lookup may be nil when no cache file
// is configured.
func NewResolver(eph astro.Ephemeris, lookup Lookup) *Resolver {
	return &Resolver{eph: eph, lookup: lookup}
}

// SunTimes implements SunTimesProvider.
func (r *Resolver) SunTimes(city location.City, date astro.CivilDate) (SunTimes, error) {
	if r.lookup != nil {
		if rise, set, ok := r.lookup.SunTimes(city.Name, date, city.UTCOffsetHours); ok {
			return SunTimes{Sunrise: rise, Sunset: set, Source: SourceCache}, nil
		}
	}

	anchor := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC)
	obs := city.Observer()
	rise, ok := r.eph.SearchRiseSet(astro.Sun, obs, astro.DirectionRise, anchor, 1)
	if !ok {
		return SunTimes{}, apperrors.Wrap(apperrors.CodeRiseSetUnavailable,
			fmt.Sprintf("no sunrise found for %s at %s", date, city.Name), nil)
	}
	set, ok := r.eph.SearchRiseSet(astro.Sun, obs, astro.DirectionSet, anchor, 1)
	if !ok {
		return SunTimes{}, apperrors.Wrap(apperrors.CodeRiseSetUnavailable,
			fmt.Sprintf("no sunset found for %s at %s", date, city.Name), nil)
	}
	return SunTimes{Sunrise: rise, Sunset: set, Source: SourceComputed}, nil
}
