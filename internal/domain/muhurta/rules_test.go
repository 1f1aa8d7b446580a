package muhurta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRahuKaalSlots(t *testing.T) {
	require.Equal(t, 8, RahuKaalIndex(time.Sunday))
	require.Equal(t, 2, RahuKaalIndex(time.Monday))
	require.Equal(t, 4, RahuKaalIndex(time.Friday))
	require.Equal(t, 3, RahuKaalIndex(time.Saturday))
}

func TestYamagandaSlots(t *testing.T) {
	require.Equal(t, 5, YamagandaDayIndex(time.Sunday))
	require.Equal(t, 1, YamagandaDayIndex(time.Thursday))
	require.Equal(t, 6, YamagandaDayIndex(time.Friday))
	require.Equal(t, 4, YamagandaNightIndex())
}

func TestGowriGoodSlots(t *testing.T) {
	goodIndices := func(q [8]Quality) []int {
		var out []int
		for i, v := range q {
			if v == Good {
				out = append(out, i+1)
			}
		}
		return out
	}

	require.Equal(t, []int{1, 8}, goodIndices(GowriDayQuality(time.Sunday)))
	require.Equal(t, []int{6, 7}, goodIndices(GowriDayQuality(time.Friday)))
	require.Equal(t, []int{5}, goodIndices(GowriDayQuality(time.Saturday)))
	require.Equal(t, []int{1}, goodIndices(GowriNightQuality(time.Friday)))
	require.Equal(t, []int{4}, goodIndices(GowriNightQuality(time.Wednesday)))
}

func TestQualityString(t *testing.T) {
	require.Equal(t, "Good", Good.String())
	require.Equal(t, "Bad", Bad.String())
	require.Equal(t, "Average", Average.String())
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, time.December, 12, 6, 0, 0, 0, time.UTC)
	at := func(m int) time.Time { return base.Add(time.Duration(m) * time.Minute) }

	require.True(t, Overlaps(at(0), at(60), at(30), at(90)))
	require.True(t, Overlaps(at(30), at(90), at(0), at(60)))
	require.True(t, Overlaps(at(0), at(90), at(30), at(60)))
	// Touching half-open intervals do not overlap.
	require.False(t, Overlaps(at(0), at(60), at(60), at(120)))
	require.False(t, Overlaps(at(60), at(120), at(0), at(60)))
}
