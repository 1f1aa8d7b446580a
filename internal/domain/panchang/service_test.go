package panchang

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

type stubEphemeris struct {
	sun, moon float64
	err       error
	calls     int
}

func (s *stubEphemeris) EclipticLongitude(body astro.Body, _ time.Time) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if body == astro.Moon {
		return s.moon, nil
	}
	return s.sun, nil
}

func (s *stubEphemeris) SiderealTime(time.Time) float64 { return 0 }

func (s *stubEphemeris) SearchRiseSet(astro.Body, astro.Observer, int, time.Time, int) (time.Time, bool) {
	return time.Time{}, false
}

type stubStore struct {
	entries map[string]Response
	gets    int
	saves   int
}

func (s *stubStore) Get(_ context.Context, key string) (Response, bool, error) {
	s.gets++
	resp, ok := s.entries[key]
	return resp, ok, nil
}

func (s *stubStore) Save(_ context.Context, key string, resp Response, _ time.Duration) error {
	s.saves++
	s.entries[key] = resp
	return nil
}

func newServiceUnderTest(eph astro.Ephemeris, store Store) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(eph, location.NewRegistry(), store, time.Hour, logger)
}

func TestCompleteComputesAllElements(t *testing.T) {
	eph := &stubEphemeris{sun: 250, moon: 10}
	svc := newServiceUnderTest(eph, nil)

	resp, err := svc.Complete(context.Background(), Request{Date: "2025-12-12", City: "Chennai"})
	require.NoError(t, err)

	require.Equal(t, "2025-12-12", resp.Date)
	require.Equal(t, "Chennai", resp.City)
	require.NotEmpty(t, resp.Tithi.Name)
	require.NotEmpty(t, resp.Nakshatra.Name)
	require.NotEmpty(t, resp.Yoga.Name)
	require.NotEmpty(t, resp.Karana.Name)
	require.NotEmpty(t, resp.Ayanamsa)

	// Elongation 120 degrees: tithi 11, Ekadashi. The ayanamsa cancels in
	// the Moon-Sun difference.
	require.Equal(t, 11, resp.Tithi.Number)
	require.True(t, resp.Tithi.IsSpecial)
}

func TestCompleteUsesCache(t *testing.T) {
	eph := &stubEphemeris{sun: 250, moon: 10}
	store := &stubStore{entries: map[string]Response{}}
	svc := newServiceUnderTest(eph, store)

	first, err := svc.Complete(context.Background(), Request{Date: "2025-12-12", City: "Chennai"})
	require.NoError(t, err)
	require.Equal(t, 1, store.saves)
	callsAfterFirst := eph.calls

	second, err := svc.Complete(context.Background(), Request{Date: "2025-12-12", City: "Chennai"})
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, callsAfterFirst, eph.calls, "cache hit must not consult the ephemeris")
	require.Equal(t, 2, store.gets)
	require.Equal(t, 1, store.saves)
}

func TestCompleteCacheKeyIncludesCity(t *testing.T) {
	eph := &stubEphemeris{sun: 250, moon: 10}
	store := &stubStore{entries: map[string]Response{}}
	svc := newServiceUnderTest(eph, store)

	_, err := svc.Complete(context.Background(), Request{Date: "2025-12-12", City: "Chennai"})
	require.NoError(t, err)
	_, err = svc.Complete(context.Background(), Request{Date: "2025-12-12", City: "Delhi"})
	require.NoError(t, err)
	require.Equal(t, 2, store.saves)
	require.Contains(t, store.entries, "Chennai:2025-12-12")
	require.Contains(t, store.entries, "Delhi:2025-12-12")
}

func TestCompleteValidation(t *testing.T) {
	svc := newServiceUnderTest(&stubEphemeris{}, nil)

	_, err := svc.Complete(context.Background(), Request{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Complete(context.Background(), Request{Date: "12-12-2025"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestCompleteSurfacesEphemerisFailure(t *testing.T) {
	svc := newServiceUnderTest(&stubEphemeris{err: errors.New("boom")}, nil)

	_, err := svc.Complete(context.Background(), Request{Date: "2025-12-12"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeEphemeris))
}
