package muhurta

// Request identifies the date and city for a window calculation.
type Request struct {
	Date string `json:"date"`
	City string `json:"city"`
}

// Period is a single time window rendered in local clock time.
type Period struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"durationMinutes"`
}

// GhatikaView is one segment of an eight-part span breakdown.
type GhatikaView struct {
	Number      int    `json:"number"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsYamaganda bool   `json:"isYamaganda"`
}

// RahuKaal is the day's Rahu Kaal window.
type RahuKaal struct {
	Period
	Day        string `json:"day"`
	DayOfWeek  int    `json:"dayOfWeek"`
	SlotNumber int    `json:"slotNumber"`
}

// Yamaganda carries both Yamaganda periods plus the full span breakdowns.
type Yamaganda struct {
	DayPeriod     Period         `json:"dayPeriod"`
	NightPeriod   Period         `json:"nightPeriod"`
	DayGhatikas   [8]GhatikaView `json:"dayGhatikas"`
	NightGhatikas [8]GhatikaView `json:"nightGhatikas"`
}

// TimesResponse answers the auspicious-times operation.
type TimesResponse struct {
	Date          string    `json:"date"`
	City          string    `json:"city"`
	Sunrise       string    `json:"sunrise"`
	Sunset        string    `json:"sunset"`
	SunriseSource string    `json:"sunriseSource"`
	RahuKaal      RahuKaal  `json:"rahuKaal"`
	Yamaganda     Yamaganda `json:"yamaganda"`
	CalculatedAt  string    `json:"calculatedAt"`
}

// Slot is a Gowri segment with its quality label.
type Slot struct {
	Index     int    `json:"index"`
	Span      string `json:"span"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Quality   string `json:"quality"`
}

// GowriMeta explains which exclusions applied to the Nalla Neram list.
type GowriMeta struct {
	RahuKaalIndex     int      `json:"rahuKaalIndex"`
	YamagandaDayIndex int      `json:"yamagandaDayIndex"`
	Notes             []string `json:"notes"`
}

// GowriResponse answers the Gowri Nalla Neram operation.
type GowriResponse struct {
	Date         string    `json:"date"`
	City         string    `json:"city"`
	Day          string    `json:"day"`
	Sunrise      string    `json:"sunrise"`
	Sunset       string    `json:"sunset"`
	DaySlots     [8]Slot   `json:"daySlots"`
	NightSlots   [8]Slot   `json:"nightSlots"`
	NallaNeram   []Slot    `json:"nallaNeram"`
	Meta         GowriMeta `json:"meta"`
	CalculatedAt string    `json:"calculatedAt"`
}
