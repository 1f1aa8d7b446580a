package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

func TestAscendantRejectsPolarLatitudes(t *testing.T) {
	stub := &stubEphemeris{sidereal: 12}
	_, err := Ascendant(stub, time.Now(), 70.0, 25.0, 24.0)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeUnsupportedLatitude))

	_, err = Ascendant(stub, time.Now(), -80.0, 25.0, 24.0)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeUnsupportedLatitude))
}

func TestAscendantWithinRange(t *testing.T) {
	stub := &stubEphemeris{sidereal: 6.5}
	moment := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)

	lagna, err := Ascendant(stub, moment, 13.0827, 80.2707, 24.2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, lagna, 0.0)
	require.Less(t, lagna, 360.0)
}

func TestAscendantVariesWithSiderealTime(t *testing.T) {
	moment := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)

	a1, err := Ascendant(&stubEphemeris{sidereal: 3}, moment, 13.0827, 80.2707, 24.2)
	require.NoError(t, err)
	a2, err := Ascendant(&stubEphemeris{sidereal: 9}, moment, 13.0827, 80.2707, 24.2)
	require.NoError(t, err)
	require.NotEqual(t, a1, a2)
}
