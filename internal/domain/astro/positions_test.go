package astro

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

type stubEphemeris struct {
	longitudes map[Body]float64
	err        error
	sidereal   float64
}

func (s *stubEphemeris) EclipticLongitude(body Body, _ time.Time) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.longitudes[body], nil
}

func (s *stubEphemeris) SiderealTime(_ time.Time) float64 {
	return s.sidereal
}

func (s *stubEphemeris) SearchRiseSet(Body, Observer, int, time.Time, int) (time.Time, bool) {
	return time.Time{}, false
}

func TestNormalizeDegrees(t *testing.T) {
	require.Equal(t, 330.0, NormalizeDegrees(-30))
	require.Equal(t, 0.0, NormalizeDegrees(360))
	require.Equal(t, 10.0, NormalizeDegrees(730))
	require.Equal(t, 45.5, NormalizeDegrees(45.5))
}

func TestRasiIndex(t *testing.T) {
	require.Equal(t, 0, RasiIndex(0))
	require.Equal(t, 0, RasiIndex(29.999))
	require.Equal(t, 1, RasiIndex(30))
	require.Equal(t, 11, RasiIndex(359.9))
	require.Equal(t, 11, RasiIndex(-0.5))
}

func TestSiderealLongitudesSubtractsAyanamsa(t *testing.T) {
	moment := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)
	stub := &stubEphemeris{longitudes: map[Body]float64{
		Sun: 100, Moon: 200, Mars: 10, Mercury: 90, Jupiter: 180, Venus: 270, Saturn: 355,
	}}

	out, err := SiderealLongitudes(stub, moment)
	require.NoError(t, err)
	require.Len(t, out, 9)

	ayanamsa := Ayanamsa(moment)
	require.InDelta(t, NormalizeDegrees(100-ayanamsa), out[Sun], 1e-9)
	require.InDelta(t, NormalizeDegrees(355-ayanamsa), out[Saturn], 1e-9)
}

func TestKetuOppositeRahu(t *testing.T) {
	moment := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubEphemeris{longitudes: map[Body]float64{}}

	out, err := SiderealLongitudes(stub, moment)
	require.NoError(t, err)

	diff := math.Mod(out[Ketu]-out[Rahu]+360, 360)
	require.InDelta(t, 180.0, diff, 1e-9)
}

func TestSiderealLongitudesPropagatesEphemerisFailure(t *testing.T) {
	stub := &stubEphemeris{err: errors.New("boom")}
	_, err := SiderealLongitudes(stub, time.Now())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeEphemeris))
}

func TestMeanNodeRegressesOverTime(t *testing.T) {
	// The node moves backward through the zodiac, one revolution in about
	// 18.6 years.
	t1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 1, 0)
	delta := math.Mod(MeanNodeLongitude(t1)-MeanNodeLongitude(t2)+360, 360)
	require.InDelta(t, 1.6, delta, 0.2)
}
