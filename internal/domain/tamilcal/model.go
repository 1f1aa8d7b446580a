package tamilcal

import (
	"github.com/senthamizh/panchangam/internal/domain/location"
	"github.com/senthamizh/panchangam/internal/domain/panchang"
)

// Request identifies a Gregorian month to render as a Tamil calendar.
type Request struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	City  string `json:"city"`
}

// Gregorian is the civil date triple of a day cell.
type Gregorian struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// YearInfo describes the enclosing Tamil year.
type YearInfo struct {
	StartDate          string `json:"startDate"`
	StartGregorianYear int    `json:"startGregorianYear"`
	Name               string `json:"name,omitempty"`
}

// TamilInfo is the Tamil-calendar portion of a day cell.
type TamilInfo struct {
	Month          TamilMonth `json:"month"`
	Day            int        `json:"day"`
	MonthStartDate string     `json:"monthStartDate"`
	Year           YearInfo   `json:"year"`
}

// DayPayload is one day cell of the month grid.
type DayPayload struct {
	Date      string            `json:"date"`
	Weekday   string            `json:"weekday"`
	Gregorian Gregorian         `json:"gregorian"`
	Tamil     TamilInfo         `json:"tamil"`
	Panchang  panchang.Response `json:"panchang"`
	Tags      []Tag             `json:"tags"`
}

// MonthResponse is the rendered month grid. Weeks hold seven cells each,
// nil-padded at the edges so cells stay aligned to weekday columns
// (Sunday first).
type MonthResponse struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	City        string          `json:"city"`
	Location    location.City   `json:"location"`
	MonthLabel  TamilMonth      `json:"monthLabel"`
	Weeks       [][]*DayPayload `json:"weeks"`
	Notes       []string        `json:"notes"`
	GeneratedAt string          `json:"generatedAt"`
}
