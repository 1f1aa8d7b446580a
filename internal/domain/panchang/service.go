package panchang

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// observationHour is the local reference time of day the elements are
// evaluated at. Noon keeps the reading representative of the civil day.
const observationHour = 12

// Store caches complete responses. Results are deterministic per
// (date, city), so the TTL only bounds memory.
type Store interface {
	Get(ctx context.Context, key string) (Response, bool, error)
	Save(ctx context.Context, key string, resp Response, ttl time.Duration) error
}

// Service exposes the complete-Panchangam operation.
type Service interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

type service struct {
	eph    astro.Ephemeris
	cities *location.Registry
	store  Store
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs the panchang service. store may be nil to disable
// result caching.
func NewService(eph astro.Ephemeris, cities *location.Registry, store Store, ttl time.Duration, logger *slog.Logger) Service {
	return &service{
		eph:    eph,
		cities: cities,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "panchang.service"),
		now:    time.Now,
	}
}

// Complete computes tithi, nakshatra, yoga and karana for the date.
func (s *service) Complete(ctx context.Context, req Request) (Response, error) {
	if req.Date == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date is required", nil)
	}
	date, err := astro.ParseCivilDate(req.Date)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid date", err)
	}
	city := s.cities.Resolve(req.City)

	key := city.Name + ":" + date.String()
	if s.store != nil {
		if cached, ok, err := s.store.Get(ctx, key); err == nil && ok {
			return cached, nil
		} else if err != nil {
			s.logger.Warn("panchang cache read failed", "key", key, "error", err)
		}
	}

	obs := astro.Moment(date, observationHour, 0, city.UTCOffsetHours)
	ayanamsa := astro.Ayanamsa(obs)

	sunTropical, err := s.eph.EclipticLongitude(astro.Sun, obs)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeEphemeris, "solar longitude", err)
	}
	moonTropical, err := s.eph.EclipticLongitude(astro.Moon, obs)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeEphemeris, "lunar longitude", err)
	}
	sun := astro.NormalizeDegrees(sunTropical - ayanamsa)
	moon := astro.NormalizeDegrees(moonTropical - ayanamsa)

	zone := city.Zone()
	tithi := TithiAt(sun, moon, obs)
	nakshatra := NakshatraAt(moon, obs)
	yoga := YogaAt(sun, moon, obs)
	karana := KaranaAt(sun, moon, obs)

	resp := Response{
		Date: date.String(),
		City: city.Name,
		Tithi: TithiView{
			Number:       tithi.Number,
			Name:         tithi.Name,
			Paksha:       tithi.Paksha,
			Progress:     tithi.Progress,
			IsSpecial:    tithi.IsSpecial,
			SpecialNote:  tithi.SpecialNote,
			ElementTimes: s.elementTimes(tithi.Window, date, zone),
		},
		Nakshatra: NakshatraView{
			Number:       nakshatra.Number,
			Name:         nakshatra.Name,
			Lord:         nakshatra.Lord,
			Deity:        nakshatra.Deity,
			Next:         nakshatra.Next,
			Progress:     nakshatra.Progress,
			ElementTimes: s.elementTimes(nakshatra.Window, date, zone),
		},
		Yoga: YogaView{
			Number:       yoga.Number,
			Name:         yoga.Name,
			Nature:       yoga.Nature,
			Progress:     yoga.Progress,
			ElementTimes: s.elementTimes(yoga.Window, date, zone),
		},
		Karana: KaranaView{
			Number:       karana.Number,
			Name:         karana.Name,
			Nature:       karana.Nature,
			Progress:     karana.Progress,
			ElementTimes: s.elementTimes(karana.Window, date, zone),
		},
		Ayanamsa:     fmt.Sprintf("%.4f", ayanamsa),
		CalculatedAt: s.now().UTC().Format(time.RFC3339),
	}

	if s.store != nil {
		if err := s.store.Save(ctx, key, resp, s.ttl); err != nil {
			s.logger.Warn("panchang cache write failed", "key", key, "error", err)
		}
	}
	return resp, nil
}

func (s *service) elementTimes(w Window, date astro.CivilDate, zone *time.Location) ElementTimes {
	return ElementTimes{
		StartTime:        astro.Clock12(w.Start, zone),
		EndTime:          astro.Clock12(w.End, zone),
		StartDayOffset:   astro.DaysBetween(date, astro.DateOf(w.Start, zone)),
		EndDayOffset:     astro.DaysBetween(date, astro.DateOf(w.End, zone)),
		MinutesRemaining: w.MinutesRemaining,
	}
}
