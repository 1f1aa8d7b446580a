package tamilcal

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senthamizh/panchangam/internal/domain/location"
	"github.com/senthamizh/panchangam/internal/domain/panchang"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

type stubPanchang struct {
	calls int
}

func (s *stubPanchang) Complete(_ context.Context, req panchang.Request) (panchang.Response, error) {
	s.calls++
	return panchang.Response{
		Date:      req.Date,
		City:      req.City,
		Tithi:     panchang.TithiView{Number: 11},
		Nakshatra: panchang.NakshatraView{Number: 3},
	}, nil
}

func newServiceUnderTest(p panchang.Service) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(meshaEntry2025(), p, location.NewRegistry(), logger)
}

func TestMonthGridJune2025(t *testing.T) {
	stub := &stubPanchang{}
	svc := newServiceUnderTest(stub)

	resp, err := svc.Month(context.Background(), Request{Year: 2025, Month: 6, City: "Chennai"})
	require.NoError(t, err)

	require.Equal(t, 2025, resp.Year)
	require.Equal(t, 6, resp.Month)
	require.Equal(t, "Chennai", resp.City)
	require.Equal(t, 30, stub.calls)

	// June 2025 starts on a Sunday and spans five calendar weeks.
	require.Len(t, resp.Weeks, 5)
	for _, week := range resp.Weeks {
		require.Len(t, week, 7)
	}

	cells := 0
	day := 0
	for _, week := range resp.Weeks {
		for _, cell := range week {
			if cell == nil {
				continue
			}
			cells++
			day++
			require.Equal(t, day, cell.Gregorian.Day)
		}
	}
	require.Equal(t, 30, cells)

	first := resp.Weeks[0][0]
	require.NotNil(t, first)
	require.Equal(t, "2025-06-01", first.Date)
	require.Equal(t, "Sunday", first.Weekday)
	require.Equal(t, "Vaikasi", first.Tamil.Month.English)
	require.Equal(t, 19, first.Tamil.Day)
	require.Equal(t, "2025-05-14", first.Tamil.MonthStartDate)
	require.Equal(t, "2025-04-14", first.Tamil.Year.StartDate)
	require.Equal(t, 2025, first.Tamil.Year.StartGregorianYear)
	require.Equal(t, "Vishvavasu", first.Tamil.Year.Name)

	// The last two days land alone in the final week.
	require.NotNil(t, resp.Weeks[4][0])
	require.NotNil(t, resp.Weeks[4][1])
	require.Nil(t, resp.Weeks[4][2])

	// The 15th falls in Aani with the linear test Sun, so Aani labels the
	// grid even though the month opens in Vaikasi.
	require.Equal(t, "Aani", resp.MonthLabel.English)
}

func TestMonthGridCarriesObservanceTags(t *testing.T) {
	svc := newServiceUnderTest(&stubPanchang{})

	resp, err := svc.Month(context.Background(), Request{Year: 2025, Month: 6})
	require.NoError(t, err)

	first := resp.Weeks[0][0]
	require.NotNil(t, first)
	keys := tagKeys(first.Tags)
	require.Contains(t, keys, "EKADASHI")
	require.Contains(t, keys, "KIRUTHIGAI")
	require.Equal(t, 11, first.Panchang.Tithi.Number)
}

func TestMonthValidation(t *testing.T) {
	svc := newServiceUnderTest(&stubPanchang{})

	_, err := svc.Month(context.Background(), Request{Year: 2025, Month: 0})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Month(context.Background(), Request{Year: 2025, Month: 13})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Month(context.Background(), Request{Year: 0, Month: 6})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
