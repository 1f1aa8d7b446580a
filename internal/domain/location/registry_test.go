package location

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownCity(t *testing.T) {
	r := NewRegistry()
	city := r.Resolve("Mumbai")
	require.Equal(t, "Mumbai", city.Name)
	require.InDelta(t, 19.0760, city.Latitude, 1e-6)
	require.InDelta(t, 72.8777, city.Longitude, 1e-6)
	require.Equal(t, 5.5, city.UTCOffsetHours)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, DefaultCity, r.Resolve("").Name)
	require.Equal(t, DefaultCity, r.Resolve("Atlantis").Name)
	// Lookups are case sensitive.
	require.Equal(t, DefaultCity, r.Resolve("chennai").Name)
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	require.Len(t, names, 6)
	require.True(t, sort.StringsAreSorted(names))
	require.Contains(t, names, "Chennai")
}

func TestAllMatchesNames(t *testing.T) {
	r := NewRegistry()
	all := r.All()
	names := r.Names()
	require.Len(t, all, len(names))
	for i, city := range all {
		require.Equal(t, names[i], city.Name)
	}
}

func TestCityZone(t *testing.T) {
	city := NewRegistry().Resolve("Chennai")
	zone := city.Zone()
	moment := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2025-12-12T05:30:00", moment.In(zone).Format("2006-01-02T15:04:05"))
}
