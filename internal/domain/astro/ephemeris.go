package astro

import "time"

// Body identifies a celestial body known to the position engine.
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// Bodies lists every body in display order. The first seven are physical
// bodies served by the ephemeris; Rahu and Ketu are derived mean nodes.
var Bodies = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// EphemerisBodies are the bodies an Ephemeris must answer for.
var EphemerisBodies = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Mars:
		return "Mars"
	case Mercury:
		return "Mercury"
	case Jupiter:
		return "Jupiter"
	case Venus:
		return "Venus"
	case Saturn:
		return "Saturn"
	case Rahu:
		return "Rahu"
	case Ketu:
		return "Ketu"
	}
	return "Unknown"
}

// Observer is a geographic observation point.
type Observer struct {
	Latitude  float64
	Longitude float64
	Elevation float64
}

// Rise/set search directions.
const (
	DirectionRise = +1
	DirectionSet  = -1
)

// Ephemeris supplies the raw astronomical quantities the calculation
// pipeline consumes. Implementations are expected to be deterministic.
type Ephemeris interface {
	// EclipticLongitude returns the geocentric apparent tropical ecliptic
	// longitude of a body in degrees.
	EclipticLongitude(body Body, t time.Time) (float64, error)

	// SiderealTime returns Greenwich apparent sidereal time in hours.
	SiderealTime(t time.Time) float64

	// SearchRiseSet finds the first rise (+1) or set (-1) crossing of a
	// body at or after start within windowDays days. The boolean reports
	// whether a crossing was found.
	SearchRiseSet(body Body, obs Observer, direction int, start time.Time, windowDays int) (time.Time, bool)
}
