package astro

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"
)

// Ayanamsa returns the Lahiri precession correction in degrees at t.
//
// The value at J2000.0 is 23°51'10.5" with a precession rate of about
// 50.2879" per year. The same formula is used by every call site; the
// older variant that appeared in earlier revisions of the source material
// differed only past the fourth decimal and was retired.
func Ayanamsa(t time.Time) float64 {
	return AyanamsaJD(JulianDay(t))
}

// AyanamsaJD is Ayanamsa for a moment already expressed as a Julian Day.
func AyanamsaJD(jd float64) float64 {
	T := base.J2000Century(jd)
	return 23.8529 + (50.2879*T+0.0222*T*T)/3600.0
}
