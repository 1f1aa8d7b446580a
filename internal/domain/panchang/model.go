package panchang

// Request identifies the date and city for a Panchangam calculation.
type Request struct {
	Date string `json:"date"`
	City string `json:"city"`
}

// ElementTimes renders a unit window in local clock time. The day offsets
// mark windows whose start or end fall on the previous (-1) or next (+1)
// civil day so a clock time is never ambiguous.
type ElementTimes struct {
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	StartDayOffset   int    `json:"startDayOffset"`
	EndDayOffset     int    `json:"endDayOffset"`
	MinutesRemaining int    `json:"minutesRemaining"`
}

// TithiView is the serialized tithi.
type TithiView struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Paksha      string `json:"paksha"`
	Progress    int    `json:"progress"`
	IsSpecial   bool   `json:"isSpecial"`
	SpecialNote string `json:"specialNote,omitempty"`
	ElementTimes
}

// NakshatraView is the serialized nakshatra.
type NakshatraView struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Lord     string `json:"lord"`
	Deity    string `json:"deity"`
	Next     string `json:"nextNakshatra"`
	Progress int    `json:"progress"`
	ElementTimes
}

// YogaView is the serialized yoga.
type YogaView struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Nature   string `json:"nature"`
	Progress int    `json:"progress"`
	ElementTimes
}

// KaranaView is the serialized karana.
type KaranaView struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Nature   string `json:"nature"`
	Progress int    `json:"progress"`
	ElementTimes
}

// Response answers the complete-Panchangam operation.
type Response struct {
	Date         string        `json:"date"`
	City         string        `json:"city"`
	Tithi        TithiView     `json:"tithi"`
	Nakshatra    NakshatraView `json:"nakshatra"`
	Yoga         YogaView      `json:"yoga"`
	Karana       KaranaView    `json:"karana"`
	Ayanamsa     string        `json:"ayanamsa"`
	CalculatedAt string        `json:"calculatedAt"`
}
