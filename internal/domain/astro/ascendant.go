package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"

	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// PolarLatitudeLimit bounds the latitudes the ascendant formula supports.
// Past the polar circles tan(latitude) makes the spherical-trigonometry
// expression unreliable, and at the poles it is singular.
const PolarLatitudeLimit = 66.5

// Ascendant computes the sidereal rising degree for an instant and place.
// Latitudes beyond PolarLatitudeLimit are rejected rather than producing
// a degenerate value.
func Ascendant(eph Ephemeris, t time.Time, latitude, longitude, ayanamsa float64) (float64, error) {
	if math.Abs(latitude) > PolarLatitudeLimit {
		return 0, apperrors.Wrap(apperrors.CodeUnsupportedLatitude,
			fmt.Sprintf("latitude %.4f is beyond the supported range ±%.1f", latitude, PolarLatitudeLimit), nil)
	}

	gast := eph.SiderealTime(t)
	lst := gast + longitude/15.0
	ramc := NormalizeDegrees(lst * 15.0)

	T := base.J2000Century(JulianDay(t))
	obliquity := 23.439291 - 0.0130042*T

	ramcRad := ramc * math.Pi / 180
	oblRad := obliquity * math.Pi / 180
	latRad := latitude * math.Pi / 180

	tropical := math.Atan2(
		math.Cos(ramcRad),
		math.Cos(oblRad)*math.Sin(ramcRad)+math.Sin(oblRad)*math.Tan(latRad),
	) * 180 / math.Pi

	return NormalizeDegrees(NormalizeDegrees(tropical) - ayanamsa), nil
}
