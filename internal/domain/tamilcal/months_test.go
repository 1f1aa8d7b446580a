package tamilcal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTamilMonthTable(t *testing.T) {
	require.Equal(t, "Chittirai", tamilMonths[0].English)
	require.Equal(t, "Panguni", tamilMonths[11].English)
	for i, m := range tamilMonths {
		require.Equal(t, i, m.Index)
		require.NotEmpty(t, m.Tamil)
		require.NotEmpty(t, m.English)
	}
}

func TestSamvatsaraName(t *testing.T) {
	name, ok := SamvatsaraName(1987)
	require.True(t, ok)
	require.Equal(t, "Prabhava", name)

	name, ok = SamvatsaraName(2025)
	require.True(t, ok)
	require.Equal(t, "Vishvavasu", name)

	// The cycle repeats after 60 years.
	name, ok = SamvatsaraName(2047)
	require.True(t, ok)
	require.Equal(t, "Prabhava", name)
}

func TestSamvatsaraNameOutsideRange(t *testing.T) {
	_, ok := SamvatsaraName(1986)
	require.False(t, ok)
	_, ok = SamvatsaraName(2101)
	require.False(t, ok)
}
