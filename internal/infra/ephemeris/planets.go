package ephemeris

import (
	"fmt"
	"math"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// orbitalElements are mean Keplerian elements at J2000 with per-century
// rates (Standish, "Keplerian Elements for Approximate Positions of the
// Major Planets", valid 1800-2050). Angles in degrees, semi-major axis
// in AU.
type orbitalElements struct {
	a, aDot       float64 // semi-major axis
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination
	l, lDot       float64 // mean longitude
	peri, periDot float64 // longitude of perihelion
	node, nodeDot float64 // longitude of ascending node
}

var planetElements = map[astro.Body]orbitalElements{
	astro.Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		i: 7.00497902, iDot: -0.00594749,
		l: 252.25032350, lDot: 149472.67411175,
		peri: 77.45779628, periDot: 0.16047689,
		node: 48.33076593, nodeDot: -0.12534081,
	},
	astro.Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		i: 3.39467605, iDot: -0.00078890,
		l: 181.97909950, lDot: 58517.81538729,
		peri: 131.60246718, periDot: 0.00268329,
		node: 76.67984255, nodeDot: -0.27769418,
	},
	astro.Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		i: 1.84969142, iDot: -0.00813131,
		l: -4.55343205, lDot: 19140.30268499,
		peri: -23.94362959, periDot: 0.44441088,
		node: 49.55953891, nodeDot: -0.29257343,
	},
	astro.Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		i: 1.30439695, iDot: -0.00183714,
		l: 34.39644051, lDot: 3034.74612775,
		peri: 14.72847983, periDot: 0.21252668,
		node: 100.47390909, nodeDot: 0.20469106,
	},
	astro.Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		i: 2.48599187, iDot: 0.00193609,
		l: 49.95424423, lDot: 1222.49362201,
		peri: 92.59887831, periDot: -0.41897216,
		node: 113.66242448, nodeDot: -0.28867794,
	},
}

// earthElements are the EM barycenter elements from the same table; the
// barycenter stands in for Earth at this precision.
var earthElements = orbitalElements{
	a: 1.00000261, aDot: 0.00000562,
	e: 0.01671123, eDot: -0.00004392,
	i: -0.00001531, iDot: -0.01294668,
	l: 100.46457166, lDot: 35999.37244981,
	peri: 102.93768193, periDot: 0.32327364,
	node: 0, nodeDot: 0,
}

// planetLongitude returns the geocentric geometric ecliptic longitude of
// a classical planet in degrees. T is Julian centuries from J2000.
func planetLongitude(body astro.Body, T float64) (float64, error) {
	el, ok := planetElements[body]
	if !ok {
		return 0, apperrors.Wrap(apperrors.CodeEphemeris,
			fmt.Sprintf("no orbital elements for body %s", body), nil)
	}
	px, py, _ := el.heliocentric(T)
	ex, ey, _ := earthElements.heliocentric(T)
	lon := math.Atan2(py-ey, px-ex) * 180 / math.Pi
	return astro.NormalizeDegrees(lon), nil
}

// heliocentric returns the J2000-ecliptic heliocentric position in AU.
func (el orbitalElements) heliocentric(T float64) (x, y, z float64) {
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	i := radians(el.i + el.iDot*T)
	L := el.l + el.lDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	// Mean anomaly in (-pi, pi] for the solver.
	M := radians(astro.NormalizeDegrees(L - peri))
	if M > math.Pi {
		M -= 2 * math.Pi
	}
	E := solveKepler(M, e)

	// Position in the orbital plane, x' toward perihelion.
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	omega := radians(peri - node)
	Omega := radians(node)

	cw, sw := math.Cos(omega), math.Sin(omega)
	cO, sO := math.Cos(Omega), math.Sin(Omega)
	ci, si := math.Cos(i), math.Sin(i)

	x = (cw*cO-sw*sO*ci)*xp + (-sw*cO-cw*sO*ci)*yp
	y = (cw*sO+sw*cO*ci)*xp + (-sw*sO+cw*cO*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// solveKepler solves E - e*sin(E) = M by Newton iteration. M and E in
// radians.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for iter := 0; iter < 20; iter++ {
		dM := M - (E - e*math.Sin(E))
		dE := dM / (1 - e*math.Cos(E))
		E += dE
		if math.Abs(dE) < 1e-9 {
			break
		}
	}
	return E
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
