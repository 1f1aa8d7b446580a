// Package ephemeris provides the astronomical backend: solar, lunar and
// sidereal quantities from the Meeus algorithms, planetary longitudes
// from mean orbital elements, and rise/set times from a dedicated solar
// transit solver.
package ephemeris

import (
	"fmt"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// Meeus computes geocentric positions using the learnmeeus implementation
// of the Meeus algorithms for the Sun and Moon, and low-precision mean
// orbital elements for the five classical planets.
type Meeus struct{}

// NewMeeus constructs the Meeus-backed ephemeris.
func NewMeeus() *Meeus {
	return &Meeus{}
}

// EclipticLongitude implements astro.Ephemeris.
func (m *Meeus) EclipticLongitude(body astro.Body, t time.Time) (float64, error) {
	jd := julian.TimeToJD(t.UTC())
	switch body {
	case astro.Sun:
		return solar.ApparentLongitude(base.J2000Century(jd)).Deg(), nil
	case astro.Moon:
		lambda, _, _ := moonposition.Position(jd)
		return astro.NormalizeDegrees(lambda.Deg()), nil
	case astro.Mercury, astro.Venus, astro.Mars, astro.Jupiter, astro.Saturn:
		return planetLongitude(body, base.J2000Century(jd))
	}
	return 0, apperrors.Wrap(apperrors.CodeEphemeris,
		fmt.Sprintf("no ephemeris for body %s", body), nil)
}

// SiderealTime implements astro.Ephemeris, returning Greenwich apparent
// sidereal time in hours.
func (m *Meeus) SiderealTime(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	return sidereal.Apparent(jd).Hour()
}

var _ astro.Ephemeris = (*Meeus)(nil)
