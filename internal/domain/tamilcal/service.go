package tamilcal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	"github.com/senthamizh/panchangam/internal/domain/panchang"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var monthNotes = []string{
	"Tamil month/day derived from the Sun's sidereal longitude (Lahiri ayanamsa, local-noon sampling).",
	"Observance tags are rule-based heuristics derived from the computed panchang and may differ from local almanacs.",
	"Pradosham tagging is based on tithi number only (Trayodashi), not sunset intersection.",
}

// Service renders Tamil calendar month grids.
type Service interface {
	Month(ctx context.Context, req Request) (MonthResponse, error)
}

type service struct {
	eph      astro.Ephemeris
	panchang panchang.Service
	cities   *location.Registry
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs the Tamil calendar service.
func NewService(eph astro.Ephemeris, panchangSvc panchang.Service, cities *location.Registry, logger *slog.Logger) Service {
	return &service{
		eph:      eph,
		panchang: panchangSvc,
		cities:   cities,
		logger:   logger.With("component", "tamilcal.service"),
		now:      time.Now,
	}
}

// Month builds the week-aligned grid of day payloads for a Gregorian
// month.
func (s *service) Month(ctx context.Context, req Request) (MonthResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return MonthResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("month %d out of range", req.Month), nil)
	}
	if req.Year < 1 {
		return MonthResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "year is required", nil)
	}
	city := s.cities.Resolve(req.City)

	lastDay := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	first := astro.CivilDate{Year: req.Year, Month: time.Month(req.Month), Day: 1}

	weeks := make([][]*DayPayload, 0, 6)
	week := make([]*DayPayload, 7)
	cursor := int(first.Weekday())

	for day := 1; day <= lastDay; day++ {
		date := astro.CivilDate{Year: req.Year, Month: time.Month(req.Month), Day: day}
		payload, err := s.dayPayload(ctx, date, city)
		if err != nil {
			return MonthResponse{}, err
		}
		week[cursor] = payload
		if cursor == 6 {
			weeks = append(weeks, week)
			week = make([]*DayPayload, 7)
			cursor = 0
		} else {
			cursor++
		}
	}
	for _, cell := range week {
		if cell != nil {
			weeks = append(weeks, week)
			break
		}
	}

	// The Tamil month of the 15th labels the grid; it is usually stable
	// within a Gregorian month.
	mid := astro.CivilDate{Year: req.Year, Month: time.Month(req.Month), Day: min(15, lastDay)}
	midIdx, err := MonthIndex(s.eph, mid, city)
	if err != nil {
		return MonthResponse{}, err
	}

	return MonthResponse{
		Year:        req.Year,
		Month:       req.Month,
		City:        city.Name,
		Location:    city,
		MonthLabel:  tamilMonths[midIdx],
		Weeks:       weeks,
		Notes:       monthNotes,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) dayPayload(ctx context.Context, date astro.CivilDate, city location.City) (*DayPayload, error) {
	idx, err := MonthIndex(s.eph, date, city)
	if err != nil {
		return nil, err
	}
	monthStart, err := MonthStart(s.eph, date, city)
	if err != nil {
		return nil, err
	}
	yearStart, err := YearStart(s.eph, date, city)
	if err != nil {
		return nil, err
	}
	yearName, _ := SamvatsaraName(yearStart.Year)

	pResp, err := s.panchang.Complete(ctx, panchang.Request{Date: date.String(), City: city.Name})
	if err != nil {
		return nil, err
	}

	return &DayPayload{
		Date:    date.String(),
		Weekday: weekdayNames[date.Weekday()],
		Gregorian: Gregorian{
			Year:  date.Year,
			Month: int(date.Month),
			Day:   date.Day,
		},
		Tamil: TamilInfo{
			Month:          tamilMonths[idx],
			Day:            astro.DaysBetween(monthStart, date) + 1,
			MonthStartDate: monthStart.String(),
			Year: YearInfo{
				StartDate:          yearStart.String(),
				StartGregorianYear: yearStart.Year,
				Name:               yearName,
			},
		},
		Panchang: pResp,
		Tags:     ObservanceTags(pResp.Tithi.Number, pResp.Nakshatra.Number),
	}, nil
}
