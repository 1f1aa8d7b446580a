package muhurta

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/astro"
	"github.com/senthamizh/panchangam/internal/domain/location"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Service exposes the window-rule operations.
type Service interface {
	AuspiciousTimes(ctx context.Context, req Request) (TimesResponse, error)
	GowriNallaNeram(ctx context.Context, req Request) (GowriResponse, error)
}

type service struct {
	sun    SunTimesProvider
	cities *location.Registry
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs the muhurta service.
func NewService(sun SunTimesProvider, cities *location.Registry, logger *slog.Logger) Service {
	return &service{
		sun:    sun,
		cities: cities,
		logger: logger.With("component", "muhurta.service"),
		now:    time.Now,
	}
}

// daySpans bundles everything derived from a resolved date: the sun times,
// the ghatika partitions and the local zone used for rendering.
type daySpans struct {
	date    astro.CivilDate
	city    location.City
	zone    *time.Location
	weekday time.Weekday
	sun     SunTimes
	day     [8]Ghatika
	night   [8]Ghatika
}

func (s *service) resolve(req Request) (daySpans, error) {
	if req.Date == "" {
		return daySpans{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date is required", nil)
	}
	date, err := astro.ParseCivilDate(req.Date)
	if err != nil {
		return daySpans{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid date", err)
	}
	city := s.cities.Resolve(req.City)

	sun, err := s.sun.SunTimes(city, date)
	if err != nil {
		return daySpans{}, err
	}
	next, err := s.sun.SunTimes(city, date.AddDays(1))
	if err != nil {
		return daySpans{}, err
	}
	nightEnd := NightEnd(sun.Sunset, next.Sunrise)

	return daySpans{
		date:    date,
		city:    city,
		zone:    city.Zone(),
		weekday: date.Weekday(),
		sun:     sun,
		day:     Partition(sun.Sunrise, sun.Sunset),
		night:   Partition(sun.Sunset, nightEnd),
	}, nil
}

// AuspiciousTimes reports sunrise/sunset, Rahu Kaal and Yamaganda.
func (s *service) AuspiciousTimes(_ context.Context, req Request) (TimesResponse, error) {
	spans, err := s.resolve(req)
	if err != nil {
		return TimesResponse{}, err
	}

	rahuIdx := RahuKaalIndex(spans.weekday)
	rahu := spans.day[rahuIdx-1]
	ygDayIdx := YamagandaDayIndex(spans.weekday)
	ygDay := spans.day[ygDayIdx-1]
	ygNight := spans.night[YamagandaNightIndex()-1]

	s.logger.Debug("auspicious times computed",
		"date", spans.date.String(), "city", spans.city.Name,
		"rahuSlot", rahuIdx, "yamagandaDaySlot", ygDayIdx, "source", spans.sun.Source)

	return TimesResponse{
		Date:          spans.date.String(),
		City:          spans.city.Name,
		Sunrise:       astro.Clock12(spans.sun.Sunrise, spans.zone),
		Sunset:        astro.Clock12(spans.sun.Sunset, spans.zone),
		SunriseSource: spans.sun.Source,
		RahuKaal: RahuKaal{
			Period:     s.period(rahu.Start, rahu.End, spans.zone),
			Day:        weekdayNames[spans.weekday],
			DayOfWeek:  int(spans.weekday),
			SlotNumber: rahuIdx,
		},
		Yamaganda: Yamaganda{
			DayPeriod:     s.period(ygDay.Start, ygDay.End, spans.zone),
			NightPeriod:   s.period(ygNight.Start, ygNight.End, spans.zone),
			DayGhatikas:   ghatikaViews(spans.day, ygDayIdx, spans.zone),
			NightGhatikas: ghatikaViews(spans.night, YamagandaNightIndex(), spans.zone),
		},
		CalculatedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

// GowriNallaNeram classifies every day and night segment and derives the
// final auspicious windows. Rahu Kaal and Yamaganda exclusions apply to
// day segments only; the night list is never filtered.
func (s *service) GowriNallaNeram(_ context.Context, req Request) (GowriResponse, error) {
	spans, err := s.resolve(req)
	if err != nil {
		return GowriResponse{}, err
	}

	rahuIdx := RahuKaalIndex(spans.weekday)
	ygDayIdx := YamagandaDayIndex(spans.weekday)
	ygDay := spans.day[ygDayIdx-1]

	dayQuality := GowriDayQuality(spans.weekday)
	nightQuality := GowriNightQuality(spans.weekday)

	var daySlots, nightSlots [8]Slot
	nalla := make([]Slot, 0, 8)
	for i, g := range spans.day {
		daySlots[i] = s.slot(g, "day", dayQuality[i], spans.zone)
		if dayQuality[i] != Good {
			continue
		}
		if g.Index == rahuIdx {
			continue
		}
		if Overlaps(g.Start, g.End, ygDay.Start, ygDay.End) {
			continue
		}
		nalla = append(nalla, daySlots[i])
	}
	for i, g := range spans.night {
		nightSlots[i] = s.slot(g, "night", nightQuality[i], spans.zone)
		if nightQuality[i] == Good {
			nalla = append(nalla, nightSlots[i])
		}
	}

	return GowriResponse{
		Date:       spans.date.String(),
		City:       spans.city.Name,
		Day:        weekdayNames[spans.weekday],
		Sunrise:    astro.Clock12(spans.sun.Sunrise, spans.zone),
		Sunset:     astro.Clock12(spans.sun.Sunset, spans.zone),
		DaySlots:   daySlots,
		NightSlots: nightSlots,
		NallaNeram: nalla,
		Meta: GowriMeta{
			RahuKaalIndex:     rahuIdx,
			YamagandaDayIndex: ygDayIdx,
			Notes: []string{
				"Nalla Neram lists Gowri Good segments; day segments overlapping Rahu Kaal or Yamaganda are excluded.",
				"Night segments are exempt from Rahu Kaal and Yamaganda exclusions.",
			},
		},
		CalculatedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) period(start, end time.Time, loc *time.Location) Period {
	minutes := int(math.Round(end.Sub(start).Minutes()))
	return Period{
		StartTime:       astro.Clock12(start, loc),
		EndTime:         astro.Clock12(end, loc),
		Duration:        fmt.Sprintf("%dh %dm", minutes/60, minutes%60),
		DurationMinutes: minutes,
	}
}

func (s *service) slot(g Ghatika, span string, q Quality, loc *time.Location) Slot {
	return Slot{
		Index:     g.Index,
		Span:      span,
		StartTime: astro.Clock12(g.Start, loc),
		EndTime:   astro.Clock12(g.End, loc),
		Quality:   q.String(),
	}
}

func ghatikaViews(ghatikas [8]Ghatika, activeIndex int, loc *time.Location) [8]GhatikaView {
	var out [8]GhatikaView
	for i, g := range ghatikas {
		out[i] = GhatikaView{
			Number:      g.Index,
			StartTime:   astro.Clock12(g.Start, loc),
			EndTime:     astro.Clock12(g.End, loc),
			IsYamaganda: g.Index == activeIndex,
		}
	}
	return out
}
