// Package suncache loads a static sunrise/sunset table from a YAML file
// at startup. Cached entries take precedence over computed rise/set
// times, which lets deployments pin authoritative almanac values for
// specific cities and dates.
package suncache

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/muhurta"
)

type dayEntry struct {
	Sunrise string `yaml:"sunrise"`
	Sunset  string `yaml:"sunset"`
}

type fileFormat struct {
	Cities map[string]map[string]dayEntry `yaml:"cities"`
}

type entry struct {
	riseHour, riseMin int
	setHour, setMin   int
}

// Store holds the parsed table. It is loaded once and read-only after.
type Store struct {
	entries map[string]map[string]entry
}

// Load parses the YAML table at path. A missing file yields an empty
// store; a malformed file is an error.
func Load(path string) (*Store, error) {
	s := &Store{entries: map[string]map[string]entry{}}
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read sun cache: %w", err)
	}
	var file fileFormat
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse sun cache: %w", err)
	}
	for city, days := range file.Cities {
		parsed := map[string]entry{}
		for date, day := range days {
			rh, rm, err := astro.ParseClock(day.Sunrise)
			if err != nil {
				return nil, fmt.Errorf("sun cache %s/%s sunrise: %w", city, date, err)
			}
			sh, sm, err := astro.ParseClock(day.Sunset)
			if err != nil {
				return nil, fmt.Errorf("sun cache %s/%s sunset: %w", city, date, err)
			}
			parsed[date] = entry{riseHour: rh, riseMin: rm, setHour: sh, setMin: sm}
		}
		s.entries[city] = parsed
	}
	return s, nil
}

// SunTimes implements muhurta.Lookup. Cached clock times are local to
// the city; the returned instants are in UTC.
func (s *Store) SunTimes(city string, date astro.CivilDate, offsetHours float64) (time.Time, time.Time, bool) {
	days, ok := s.entries[city]
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	e, ok := days[date.String()]
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	rise := astro.Moment(date, e.riseHour, e.riseMin, offsetHours)
	set := astro.Moment(date, e.setHour, e.setMin, offsetHours)
	return rise, set, true
}

// Len reports how many day entries are loaded, across all cities.
func (s *Store) Len() int {
	n := 0
	for _, days := range s.entries {
		n += len(days)
	}
	return n
}

var _ muhurta.Lookup = (*Store)(nil)
