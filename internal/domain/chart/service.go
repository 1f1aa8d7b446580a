// Package chart computes the daily sidereal transit chart.
package chart

import (
	"context"
	"log/slog"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// DefaultTime is assumed when the request omits a time-of-day. It matches
// the civil day boundary used by the Indian almanac convention.
const DefaultTime = "05:30"

// planetLabels carries the Tamil + English display names.
var planetLabels = map[astro.Body]string{
	astro.Sun:     "ஞாயிறு (சூ) Sun",
	astro.Moon:    "திங்கள் (நிலவு) Moon",
	astro.Mars:    "செவ்வாய் Mars",
	astro.Mercury: "புதன் Mercury",
	astro.Jupiter: "வியாழன் (குரு) Jupiter",
	astro.Venus:   "வெள்ளி (சுக்) Venus",
	astro.Saturn:  "சனி (சனி) Saturn",
	astro.Rahu:    "இராகு Rahu",
	astro.Ketu:    "கேது Ketu",
}

// Service produces daily transit charts.
type Service interface {
	Daily(ctx context.Context, req Request) (Response, error)
}

type service struct {
	eph    astro.Ephemeris
	cities *location.Registry
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs the chart service.
func NewService(eph astro.Ephemeris, cities *location.Registry, logger *slog.Logger) Service {
	return &service{
		eph:    eph,
		cities: cities,
		logger: logger.With("component", "chart.service"),
		now:    time.Now,
	}
}

// Daily computes sidereal longitudes and the ascendant for the requested
// moment and places each graha in its rasi bucket. The chart is
// all-or-nothing: any ephemeris failure fails the whole request.
func (s *service) Daily(_ context.Context, req Request) (Response, error) {
	if req.Date == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date is required", nil)
	}
	date, err := astro.ParseCivilDate(req.Date)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid date", err)
	}
	clock := req.Time
	if clock == "" {
		clock = DefaultTime
	}
	hour, minute, err := astro.ParseClock(clock)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid time", err)
	}

	city := s.cities.Resolve(req.City)
	moment := astro.Moment(date, hour, minute, city.UTCOffsetHours)
	jd := astro.JulianDay(moment)
	ayanamsa := astro.AyanamsaJD(jd)

	longitudes, err := astro.SiderealLongitudes(s.eph, moment)
	if err != nil {
		return Response{}, err
	}
	lagna, err := astro.Ascendant(s.eph, moment, city.Latitude, city.Longitude, ayanamsa)
	if err != nil {
		return Response{}, err
	}

	var rasi [12]RasiBucket
	raw := make(map[string]float64, len(astro.Bodies))
	for _, body := range astro.Bodies {
		lon := longitudes[body]
		raw[body.String()] = lon
		idx := astro.RasiIndex(lon)
		rasi[idx].Planets = append(rasi[idx].Planets, planetLabels[body])
	}
	rasi[astro.RasiIndex(lagna)].IsLagna = true

	s.logger.Debug("daily chart computed", "date", date.String(), "city", city.Name, "lagna", lagna)

	return Response{
		Date:           date.String(),
		Time:           clock,
		City:           city.Name,
		Rasi:           rasi,
		RawLongitudes:  raw,
		LagnaLongitude: lagna,
		Ayanamsa:       ayanamsa,
		JulianDay:      jd,
		CalculatedAt:   s.now().UTC().Format(time.RFC3339),
	}, nil
}
