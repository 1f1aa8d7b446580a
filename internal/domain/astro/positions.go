package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"

	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// RasiIndex maps a longitude to its zodiac-sign bucket (0-11).
func RasiIndex(longitude float64) int {
	return int(NormalizeDegrees(longitude) / 30)
}

// Longitudes holds sidereal longitudes in degrees keyed by body.
type Longitudes map[Body]float64

// SiderealLongitudes computes the sidereal longitude of the nine grahas at
// t: the seven physical bodies via the ephemeris with the ayanamsa
// subtracted, Rahu from the mean-node polynomial and Ketu opposite Rahu.
// Any ephemeris failure aborts the whole set.
func SiderealLongitudes(eph Ephemeris, t time.Time) (Longitudes, error) {
	ayanamsa := Ayanamsa(t)
	out := make(Longitudes, len(Bodies))
	for _, body := range EphemerisBodies {
		tropical, err := eph.EclipticLongitude(body, t)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeEphemeris, fmt.Sprintf("longitude of %s", body), err)
		}
		out[body] = NormalizeDegrees(tropical - ayanamsa)
	}
	out[Rahu] = NormalizeDegrees(MeanNodeLongitude(t) - ayanamsa)
	out[Ketu] = NormalizeDegrees(out[Rahu] + 180)
	return out, nil
}

// MeanNodeLongitude returns the tropical mean longitude of the Moon's
// ascending node in degrees. The true (perturbed) node is out of scope.
func MeanNodeLongitude(t time.Time) float64 {
	T := base.J2000Century(JulianDay(t))
	return NormalizeDegrees(125.04455501 - 1934.1361849*T + 0.0020762*T*T)
}
