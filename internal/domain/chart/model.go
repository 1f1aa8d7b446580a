package chart

// Request captures the parameters for a daily transit chart.
type Request struct {
	Date string `json:"date"`
	Time string `json:"time"`
	City string `json:"city"`
}

// RasiBucket is one of the twelve zodiac-sign cells of the chart.
type RasiBucket struct {
	Planets []string `json:"planets"`
	IsLagna bool     `json:"isLagna"`
}

// Response is the daily transit chart serialized to API consumers.
type Response struct {
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	City           string             `json:"city"`
	Rasi           [12]RasiBucket     `json:"rasi"`
	RawLongitudes  map[string]float64 `json:"rawLongitudes"`
	LagnaLongitude float64            `json:"lagnaLongitude"`
	Ayanamsa       float64            `json:"ayanamsa"`
	JulianDay      float64            `json:"julianDay"`
	CalculatedAt   string             `json:"calculatedAt"`
}
