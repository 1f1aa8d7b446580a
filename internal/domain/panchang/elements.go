// Package panchang computes the four positional elements of the Hindu
// almanac from sidereal Sun and Moon longitudes.
package panchang

import (
	"math"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/astro"
)

const (
	tithiArc     = 12.0
	nakshatraArc = 360.0 / 27.0
	yogaArc      = 360.0 / 27.0
	karanaArc    = 6.0

	// moonRelativeRate is the Moon's mean motion relative to the Sun in
	// degrees per hour; moonRate is its absolute motion approximated by
	// the same constant, and yogaRate approximates the combined Sun+Moon
	// motion. These drive the start/end projections only, never the
	// element indices.
	moonRelativeRate = 0.549
	moonRate         = 0.549
	yogaRate         = 1.0
)

// Window is the projected validity interval of the current unit around
// the observation moment.
type Window struct {
	Start            time.Time
	End              time.Time
	MinutesRemaining int
}

// project derives the unit window from the elapsed angle within the unit
// and a constant angular rate.
func project(obs time.Time, angleInUnit, arc, ratePerHour float64) Window {
	totalHours := arc / ratePerHour
	elapsed := angleInUnit / arc
	remainingHours := (1 - elapsed) * totalHours
	return Window{
		Start:            obs.Add(-hoursToDuration(elapsed * totalHours)),
		End:              obs.Add(hoursToDuration(remainingHours)),
		MinutesRemaining: int(math.Round(remainingHours * 60)),
	}
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func progressPercent(angleInUnit, arc float64) int {
	return int(math.Round(angleInUnit / arc * 100))
}

// Tithi is the lunar day.
type Tithi struct {
	Number      int
	Name        string
	Paksha      string
	Progress    int
	IsSpecial   bool
	SpecialNote string
	Window      Window
}

// TithiAt derives the tithi from the Moon-Sun elongation at obs.
func TithiAt(sunLong, moonLong float64, obs time.Time) Tithi {
	angle := astro.NormalizeDegrees(moonLong - sunLong)
	number := int(angle/tithiArc) + 1
	inUnit := math.Mod(angle, tithiArc)

	paksha := pakshaSukla
	if number > 15 {
		paksha = pakshaKrishna
	}
	// Ekadashi of either paksha is a fasting day.
	isEkadashi := number == 11 || number == 26
	note := ""
	if isEkadashi {
		note = ekadashiNote
	}

	return Tithi{
		Number:      number,
		Name:        tithiNames[number-1],
		Paksha:      paksha,
		Progress:    progressPercent(inUnit, tithiArc),
		IsSpecial:   isEkadashi,
		SpecialNote: note,
		Window:      project(obs, inUnit, tithiArc, moonRelativeRate),
	}
}

// Nakshatra is the lunar mansion.
type Nakshatra struct {
	Number   int
	Name     string
	Lord     string
	Deity    string
	Next     string
	Progress int
	Window   Window
}

// NakshatraAt derives the nakshatra from the Moon's longitude at obs.
func NakshatraAt(moonLong float64, obs time.Time) Nakshatra {
	lon := astro.NormalizeDegrees(moonLong)
	number := int(lon/nakshatraArc) + 1
	inUnit := math.Mod(lon, nakshatraArc)
	info := nakshatras[number-1]

	return Nakshatra{
		Number:   number,
		Name:     info.Name,
		Lord:     info.Lord,
		Deity:    info.Deity,
		Next:     nakshatras[number%27].Name,
		Progress: progressPercent(inUnit, nakshatraArc),
		Window:   project(obs, inUnit, nakshatraArc, moonRate),
	}
}

// Yoga is the Sun+Moon combination element.
type Yoga struct {
	Number   int
	Name     string
	Nature   string
	Progress int
	Window   Window
}

// YogaAt derives the yoga from the sum of the luminaries' longitudes.
func YogaAt(sunLong, moonLong float64, obs time.Time) Yoga {
	combined := astro.NormalizeDegrees(sunLong + moonLong)
	number := int(combined/yogaArc) + 1
	inUnit := math.Mod(combined, yogaArc)
	info := yogas[number-1]

	return Yoga{
		Number:   number,
		Name:     info.Name,
		Nature:   info.Nature,
		Progress: progressPercent(inUnit, yogaArc),
		Window:   project(obs, inUnit, yogaArc, yogaRate),
	}
}

// Karana is the half-tithi.
type Karana struct {
	Number   int
	Name     string
	Nature   string
	Progress int
	Window   Window
}

// KaranaAt derives the karana from the Moon-Sun elongation. The 60
// numeric karanas cycle through eleven names; Vishti (Bhadra) is the only
// inauspicious one.
func KaranaAt(sunLong, moonLong float64, obs time.Time) Karana {
	angle := astro.NormalizeDegrees(moonLong - sunLong)
	number := int(angle/karanaArc) + 1
	inUnit := math.Mod(angle, karanaArc)

	cycle := (number - 1) % 11
	nature := natureAuspicious
	if cycle == vishtiCycleIndex {
		nature = natureInauspicious
	}

	return Karana{
		Number:   number,
		Name:     karanaNames[cycle],
		Nature:   nature,
		Progress: progressPercent(inUnit, karanaArc),
		Window:   project(obs, inUnit, karanaArc, moonRelativeRate),
	}
}
