package muhurta

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

type stubSunProvider struct {
	byDate map[string]SunTimes
}

func (s *stubSunProvider) SunTimes(_ location.City, date astro.CivilDate) (SunTimes, error) {
	st, ok := s.byDate[date.String()]
	if !ok {
		return SunTimes{}, apperrors.Wrap(apperrors.CodeRiseSetUnavailable,
			fmt.Sprintf("no sun times for %s", date), nil)
	}
	return st, nil
}

// chennaiDecember stubs 2025-12-12 (a Friday) in Chennai: sunrise
// 6:21 AM, sunset 5:46 PM IST, next sunrise 6:22 AM.
func chennaiDecember() *stubSunProvider {
	return &stubSunProvider{byDate: map[string]SunTimes{
		"2025-12-12": {
			Sunrise: time.Date(2025, time.December, 12, 0, 51, 0, 0, time.UTC),
			Sunset:  time.Date(2025, time.December, 12, 12, 16, 0, 0, time.UTC),
			Source:  SourceCache,
		},
		"2025-12-13": {
			Sunrise: time.Date(2025, time.December, 13, 0, 52, 0, 0, time.UTC),
			Sunset:  time.Date(2025, time.December, 13, 12, 16, 0, 0, time.UTC),
			Source:  SourceCache,
		},
	}}
}

func newServiceUnderTest(sun SunTimesProvider) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(sun, location.NewRegistry(), logger)
}

func TestAuspiciousTimesFriday(t *testing.T) {
	svc := newServiceUnderTest(chennaiDecember())

	resp, err := svc.AuspiciousTimes(context.Background(), Request{Date: "2025-12-12", City: "Chennai"})
	require.NoError(t, err)

	require.Equal(t, "Chennai", resp.City)
	require.Equal(t, "6:21 AM", resp.Sunrise)
	require.Equal(t, "5:46 PM", resp.Sunset)
	require.Equal(t, SourceCache, resp.SunriseSource)

	require.Equal(t, "Friday", resp.RahuKaal.Day)
	require.Equal(t, 5, resp.RahuKaal.DayOfWeek)
	require.Equal(t, 4, resp.RahuKaal.SlotNumber)
	require.Equal(t, "10:37 AM", resp.RahuKaal.StartTime)
	require.Equal(t, "12:03 PM", resp.RahuKaal.EndTime)
	require.Equal(t, 86, resp.RahuKaal.DurationMinutes)

	require.Equal(t, "1:29 PM", resp.Yamaganda.DayPeriod.StartTime)
	require.Equal(t, "2:54 PM", resp.Yamaganda.DayPeriod.EndTime)
	require.Equal(t, "10:29 PM", resp.Yamaganda.NightPeriod.StartTime)
	require.Equal(t, "12:04 AM", resp.Yamaganda.NightPeriod.EndTime)

	for i, g := range resp.Yamaganda.DayGhatikas {
		require.Equal(t, i+1, g.Number)
		require.Equal(t, g.Number == 6, g.IsYamaganda)
	}
	for _, g := range resp.Yamaganda.NightGhatikas {
		require.Equal(t, g.Number == 4, g.IsYamaganda)
	}
}

func TestAuspiciousTimesRahuKaalWithinDaySpan(t *testing.T) {
	svc := newServiceUnderTest(chennaiDecember())

	resp, err := svc.AuspiciousTimes(context.Background(), Request{Date: "2025-12-12"})
	require.NoError(t, err)

	// Every ghatika, Rahu Kaal included, must lie inside [sunrise, sunset).
	require.Equal(t, resp.Sunrise, resp.Yamaganda.DayGhatikas[0].StartTime)
	require.Equal(t, resp.Sunset, resp.Yamaganda.DayGhatikas[7].EndTime)
}

func TestGowriNallaNeramFridayExclusions(t *testing.T) {
	svc := newServiceUnderTest(chennaiDecember())

	resp, err := svc.GowriNallaNeram(context.Background(), Request{Date: "2025-12-12", City: "Chennai"})
	require.NoError(t, err)

	require.Equal(t, "Friday", resp.Day)
	require.Equal(t, 4, resp.Meta.RahuKaalIndex)
	require.Equal(t, 6, resp.Meta.YamagandaDayIndex)

	// Friday's Good day segments are 6 and 7. Segment 6 is Yamaganda, so
	// only segment 7 survives; the night Good segment 1 is never filtered.
	require.Len(t, resp.NallaNeram, 2)
	require.Equal(t, 7, resp.NallaNeram[0].Index)
	require.Equal(t, "day", resp.NallaNeram[0].Span)
	require.Equal(t, 1, resp.NallaNeram[1].Index)
	require.Equal(t, "night", resp.NallaNeram[1].Span)

	for _, s := range resp.DaySlots {
		require.Contains(t, []string{"Good", "Average", "Bad"}, s.Quality)
	}
}

func TestGowriNightSlotsNeverFiltered(t *testing.T) {
	svc := newServiceUnderTest(chennaiDecember())

	resp, err := svc.GowriNallaNeram(context.Background(), Request{Date: "2025-12-12"})
	require.NoError(t, err)

	nightGood := 0
	for _, s := range resp.NightSlots {
		if s.Quality == "Good" {
			nightGood++
		}
	}
	inNalla := 0
	for _, s := range resp.NallaNeram {
		if s.Span == "night" {
			inNalla++
		}
	}
	require.Equal(t, nightGood, inNalla)
}

func TestServiceValidation(t *testing.T) {
	svc := newServiceUnderTest(chennaiDecember())

	_, err := svc.AuspiciousTimes(context.Background(), Request{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.GowriNallaNeram(context.Background(), Request{Date: "not-a-date"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceFallsBackToDefaultCity(t *testing.T) {
	svc := newServiceUnderTest(chennaiDecember())

	resp, err := svc.AuspiciousTimes(context.Background(), Request{Date: "2025-12-12", City: "Atlantis"})
	require.NoError(t, err)
	require.Equal(t, location.DefaultCity, resp.City)
}

func TestServiceSurfacesSunTimeFailure(t *testing.T) {
	svc := newServiceUnderTest(&stubSunProvider{byDate: map[string]SunTimes{}})

	_, err := svc.AuspiciousTimes(context.Background(), Request{Date: "2025-12-12"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeRiseSetUnavailable))
}
