package suncache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/senthamizh/panchangam/internal/domain/astro"
)

const sampleYAML = `cities:
  Chennai:
    "2025-12-12":
      sunrise: "06:21"
      sunset: "17:46"
  Delhi:
    "2025-12-12":
      sunrise: "07:03"
      sunset: "17:26"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suntimes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAndLookup(t *testing.T) {
	store, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	date := astro.CivilDate{Year: 2025, Month: time.December, Day: 12}
	rise, set, ok := store.SunTimes("Chennai", date, 5.5)
	require.True(t, ok)
	require.Equal(t, time.Date(2025, time.December, 12, 0, 51, 0, 0, time.UTC), rise)
	require.Equal(t, time.Date(2025, time.December, 12, 12, 16, 0, 0, time.UTC), set)
}

func TestLookupMisses(t *testing.T) {
	store, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)

	date := astro.CivilDate{Year: 2025, Month: time.December, Day: 12}
	_, _, ok := store.SunTimes("Mumbai", date, 5.5)
	require.False(t, ok)

	_, _, ok = store.SunTimes("Chennai", date.AddDays(1), 5.5)
	require.False(t, ok)
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 0, store.Len())
}

func TestLoadEmptyPathYieldsEmptyStore(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 0, store.Len())
}

func TestLoadRejectsMalformedClock(t *testing.T) {
	bad := `cities:
  Chennai:
    "2025-12-12":
      sunrise: "6:21 AM"
      sunset: "17:46"
`
	_, err := Load(writeTemp(t, bad))
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "cities: [not a map"))
	require.Error(t, err)
}
